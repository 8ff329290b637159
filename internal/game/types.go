package game

import "fmt"

// CompanyID identifies a company in the world state.
type CompanyID uint8

// InvalidCompany marks the absence of a company reference.
const InvalidCompany CompanyID = 0xFF

// GroupID identifies a vehicle group.
type GroupID uint16

const (
	// RootGroup is the parent sentinel for top-level groups.
	RootGroup GroupID = 0xFFFF
	// InvalidGroup marks the absence of a group selection.
	InvalidGroup GroupID = 0xFFFE
)

// VehicleType enumerates the transport modes groups are partitioned by.
type VehicleType uint8

const (
	VehicleRail VehicleType = iota
	VehicleRoad
	VehicleShip
	VehicleAircraft

	NumVehicleTypes = iota
)

var vehicleTypeNames = [NumVehicleTypes]string{"rail", "road", "ship", "aircraft"}

func (v VehicleType) String() string {
	if int(v) < len(vehicleTypeNames) {
		return vehicleTypeNames[v]
	}
	return fmt.Sprintf("vehicle-type-%d", int(v))
}

// IsValid reports whether the vehicle type is a recognised value.
func (v VehicleType) IsValid() bool {
	return int(v) < NumVehicleTypes
}

// Colour is an index into the fixed company colour palette.
type Colour uint8

// NumColours is the size of the palette.
const NumColours = 16

// InvalidColour is the "inherit from parent scope" sentinel used in
// command requests: it clears the explicit colour instead of setting one.
const InvalidColour Colour = 0xFF

// IsValid reports whether the colour is a real palette index.
func (c Colour) IsValid() bool {
	return c < NumColours
}

// Livery slot bits for Livery.InUse.
const (
	LiveryPrimarySet   uint8 = 1 << 0
	LiverySecondarySet uint8 = 1 << 1
)

// Livery is a pair of palette colours plus flags recording whether each
// slot is explicitly set or inherited from the enclosing scope.
type Livery struct {
	Primary   Colour `json:"primary"`
	Secondary Colour `json:"secondary"`
	InUse     uint8  `json:"in_use"`
}

// PrimaryInUse reports whether the primary colour is explicitly set.
func (l Livery) PrimaryInUse() bool { return l.InUse&LiveryPrimarySet != 0 }

// SecondaryInUse reports whether the secondary colour is explicitly set.
func (l Livery) SecondaryInUse() bool { return l.InUse&LiverySecondarySet != 0 }

// Company is a read-only projection of an externally owned company record.
// Liveries is indexed by scheme; entry 0 is the default scheme every other
// scheme falls back to.
type Company struct {
	ID       CompanyID `json:"id"`
	Name     string    `json:"name"`
	Colour   Colour    `json:"colour"`
	Liveries []Livery  `json:"liveries"`
}

// SchemeLivery returns the livery stored for the given scheme index,
// falling back to a zero livery when the slice is short.
func (c Company) SchemeLivery(scheme int) Livery {
	if scheme >= 0 && scheme < len(c.Liveries) {
		return c.Liveries[scheme]
	}
	return Livery{}
}

// Group is a read-only projection of an externally owned vehicle group.
type Group struct {
	ID          GroupID     `json:"id"`
	Parent      GroupID     `json:"parent"`
	Owner       CompanyID   `json:"owner"`
	VehicleType VehicleType `json:"vehicle_type"`
	Name        string      `json:"name,omitempty"`
	Livery      Livery      `json:"livery"`
}

// Validate checks that a group record is internally consistent.
func (g Group) Validate() error {
	if g.ID == RootGroup || g.ID == InvalidGroup {
		return fmt.Errorf("group id %d is a reserved sentinel", g.ID)
	}
	if g.Parent == InvalidGroup {
		return fmt.Errorf("group %d: parent may not be the invalid sentinel", g.ID)
	}
	if g.Parent == g.ID {
		return fmt.Errorf("group %d: parent refers to itself", g.ID)
	}
	if !g.VehicleType.IsValid() {
		return fmt.Errorf("group %d: unknown vehicle type %d", g.ID, g.VehicleType)
	}
	return nil
}
