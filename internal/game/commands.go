package game

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// CommandKind tags a livery mutation request.
type CommandKind string

const (
	CmdSetCompanyLivery CommandKind = "set-company-livery"
	CmdSetGroupLivery   CommandKind = "set-group-livery"
)

// Slot selects the primary or secondary colour of a livery.
type Slot uint8

const (
	SlotPrimary Slot = iota
	SlotSecondary
)

func (s Slot) String() string {
	if s == SlotPrimary {
		return "primary"
	}
	return "secondary"
}

// Command is a fire-and-forget mutation request for the external command
// authority. Colour may be InvalidColour, meaning "clear the explicit
// colour and inherit".
type Command struct {
	Kind    CommandKind `json:"kind"`
	Company CompanyID   `json:"company"`
	Scheme  int         `json:"scheme,omitempty"`
	Group   GroupID     `json:"group,omitempty"`
	Slot    Slot        `json:"slot"`
	Colour  Colour      `json:"colour"`
	Time    time.Time   `json:"time"`
}

// SetCompanyLivery builds a request to change one scheme colour of a company.
func SetCompanyLivery(company CompanyID, scheme int, slot Slot, colour Colour) Command {
	return Command{Kind: CmdSetCompanyLivery, Company: company, Scheme: scheme, Slot: slot, Colour: colour}
}

// SetGroupLivery builds a request to change one colour of a group livery.
func SetGroupLivery(company CompanyID, group GroupID, slot Slot, colour Colour) Command {
	return Command{Kind: CmdSetGroupLivery, Company: company, Group: group, Slot: slot, Colour: colour}
}

// Outbox appends command requests to the file the game consumes. Requests
// do not mutate local state; their effect surfaces later as a world-file
// change.
type Outbox struct {
	path string
	now  func() time.Time
}

// NewOutbox creates an outbox writing to the given path.
func NewOutbox(path string) *Outbox {
	return &Outbox{path: path, now: time.Now}
}

// Path returns the outbox file path.
func (o *Outbox) Path() string {
	return o.path
}

// Dispatch appends the request as a JSON line. The write is best-effort;
// the caller decides whether the error is worth reporting.
func (o *Outbox) Dispatch(cmd Command) error {
	cmd.Time = o.now().UTC()
	data, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("encode command: %w", err)
	}
	f, err := os.OpenFile(o.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open command outbox: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append command: %w", err)
	}
	return nil
}
