package livery

import (
	"math/bits"

	"github.com/atomicstack/livery-popup-control/internal/game"
)

// Scheme indexes a company livery scheme. Scheme 0 is the default every
// other scheme inherits from when its colours are not explicitly set.
type Scheme int

const (
	SchemeDefault Scheme = iota

	SchemeSteam
	SchemeDiesel
	SchemeElectric
	SchemeMonorail
	SchemeMaglev
	SchemeDMU
	SchemeEMU
	SchemePassengerWagonSteam
	SchemePassengerWagonDiesel
	SchemePassengerWagonElectric
	SchemePassengerWagonMonorail
	SchemePassengerWagonMaglev
	SchemeFreightWagon

	SchemeBus
	SchemeTruck

	SchemePassengerShip
	SchemeFreightShip

	SchemeHelicopter
	SchemeSmallPlane
	SchemeLargePlane

	SchemePassengerTram
	SchemeFreightTram

	NumSchemes = iota
)

var schemeNames = [NumSchemes]string{
	"Default",
	"Steam Engine",
	"Diesel Engine",
	"Electric Engine",
	"Monorail Engine",
	"Maglev Engine",
	"DMU",
	"EMU",
	"Passenger Coach (Steam)",
	"Passenger Coach (Diesel)",
	"Passenger Coach (Electric)",
	"Passenger Coach (Monorail)",
	"Passenger Coach (Maglev)",
	"Freight Wagon",
	"Bus",
	"Truck",
	"Passenger Ship",
	"Freight Ship",
	"Helicopter",
	"Small Aircraft",
	"Large Aircraft",
	"Passenger Tram",
	"Freight Tram",
}

func (s Scheme) String() string {
	if s >= 0 && int(s) < NumSchemes {
		return schemeNames[s]
	}
	return "Unknown Scheme"
}

// IsValid reports whether the scheme is a recognised index.
func (s Scheme) IsValid() bool {
	return s >= 0 && int(s) < NumSchemes
}

// SchemeSet is a bitmask over scheme indices.
type SchemeSet uint32

// AllSchemes has every scheme bit set.
const AllSchemes SchemeSet = 1<<NumSchemes - 1

// SetOf builds a set from individual schemes.
func SetOf(schemes ...Scheme) SchemeSet {
	var set SchemeSet
	for _, s := range schemes {
		set |= 1 << uint(s)
	}
	return set
}

// Has reports whether the scheme's bit is set.
func (set SchemeSet) Has(s Scheme) bool {
	return set&(1<<uint(s)) != 0
}

// With returns the set with the scheme's bit set.
func (set SchemeSet) With(s Scheme) SchemeSet {
	return set | 1<<uint(s)
}

// Toggle returns the set with the scheme's bit flipped.
func (set SchemeSet) Toggle(s Scheme) SchemeSet {
	return set ^ 1<<uint(s)
}

// IsEmpty reports whether no bit is set.
func (set SchemeSet) IsEmpty() bool {
	return set == 0
}

// Count returns the number of set bits.
func (set SchemeSet) Count() int {
	return bits.OnesCount32(uint32(set))
}

// Lowest returns the lowest set scheme, or SchemeDefault when empty.
func (set SchemeSet) Lowest() Scheme {
	if set == 0 {
		return SchemeDefault
	}
	return Scheme(bits.TrailingZeros32(uint32(set)))
}

// Class partitions the selectable livery surface: scheme classes group
// company schemes by transport mode, group classes expose the per-mode
// group hierarchies. Exactly one class is active at a time.
type Class int

const (
	ClassOther Class = iota
	ClassRail
	ClassRoad
	ClassShip
	ClassAircraft
	ClassGroupRail
	ClassGroupRoad
	ClassGroupShip
	ClassGroupAircraft

	NumClasses = iota
)

var classNames = [NumClasses]string{
	"General",
	"Rail",
	"Road",
	"Ship",
	"Aircraft",
	"Rail Groups",
	"Road Groups",
	"Ship Groups",
	"Aircraft Groups",
}

func (c Class) String() string {
	if c >= 0 && int(c) < NumClasses {
		return classNames[c]
	}
	return "Unknown Class"
}

// IsGroup reports whether the class selects from a group hierarchy rather
// than from company schemes.
func (c Class) IsGroup() bool {
	return c >= ClassGroupRail && c < NumClasses
}

// VehicleType returns the transport mode of a group class. Only meaningful
// when IsGroup reports true.
func (c Class) VehicleType() game.VehicleType {
	return game.VehicleType(c - ClassGroupRail)
}

// GroupClassFor returns the group class displaying the given vehicle type.
func GroupClassFor(vtype game.VehicleType) Class {
	return ClassGroupRail + Class(vtype)
}

// classOfScheme associates every scheme with the scheme class it appears
// under. Trams share the road class with buses and trucks.
var classOfScheme = [NumSchemes]Class{
	SchemeDefault: ClassOther,

	SchemeSteam:                  ClassRail,
	SchemeDiesel:                 ClassRail,
	SchemeElectric:               ClassRail,
	SchemeMonorail:               ClassRail,
	SchemeMaglev:                 ClassRail,
	SchemeDMU:                    ClassRail,
	SchemeEMU:                    ClassRail,
	SchemePassengerWagonSteam:    ClassRail,
	SchemePassengerWagonDiesel:   ClassRail,
	SchemePassengerWagonElectric: ClassRail,
	SchemePassengerWagonMonorail: ClassRail,
	SchemePassengerWagonMaglev:   ClassRail,
	SchemeFreightWagon:           ClassRail,

	SchemeBus:   ClassRoad,
	SchemeTruck: ClassRoad,

	SchemePassengerShip: ClassShip,
	SchemeFreightShip:   ClassShip,

	SchemeHelicopter: ClassAircraft,
	SchemeSmallPlane: ClassAircraft,
	SchemeLargePlane: ClassAircraft,

	SchemePassengerTram: ClassRoad,
	SchemeFreightTram:   ClassRoad,
}

// ClassOf returns the scheme class a scheme is listed under.
func ClassOf(s Scheme) Class {
	if s.IsValid() {
		return classOfScheme[s]
	}
	return ClassOther
}

// ActiveSchemes returns, in scheme order, the schemes belonging to the
// given class that the feature gate activates. The same walk backs both
// row generation and row-to-scheme mapping so the two can never disagree.
func ActiveSchemes(class Class, used SchemeSet) []Scheme {
	if class.IsGroup() {
		return nil
	}
	var out []Scheme
	for s := SchemeDefault; s < NumSchemes; s++ {
		if classOfScheme[s] == class && used.Has(s) {
			out = append(out, s)
		}
	}
	return out
}
