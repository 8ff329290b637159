package livery

import "github.com/atomicstack/livery-popup-control/internal/game"

// ColourOption is one selectable entry of a colour dropdown. The
// synthetic "default" entry displays the colour it would inherit while
// committing the invalid sentinel; real palette entries commit their own
// index. Masked entries are rendered but must not be selectable.
type ColourOption struct {
	Label   string
	Display game.Colour // swatch colour shown next to the label
	Value   game.Colour // committed on selection; InvalidColour for the default entry
	Default bool
	Masked  bool
}

// BuildColourList constructs the dropdown contents for one colour slot of
// the current selection and returns the entries with the index to
// preselect.
//
// The representative livery is the lowest selected scheme's (or the
// default scheme's when nothing is selected) for scheme classes, and the
// selected group's own livery for group classes. The inherited reference
// is the default scheme unless the representative is itself the default
// scheme; a group inherits from its parent group, or from the company
// default when it is a root. When an inherited reference exists a
// synthetic default entry is prepended.
//
// Masking only applies when editing the default scheme's primary slot:
// colours already used as another company's identity colour are marked,
// keeping companies distinct at the top level without constraining
// sub-schemes or group overrides.
func (c *Controller) BuildColourList(slot game.Slot) ([]ColourOption, int) {
	company, ok := c.provider.Company(c.company)
	if !ok {
		return nil, 0
	}

	var (
		repr      game.Livery
		inherited *game.Livery
	)

	if set, isScheme := c.sel.Schemes(); isScheme {
		scheme := SchemeDefault
		if !set.IsEmpty() {
			scheme = set.Lowest()
		}
		repr = company.SchemeLivery(int(scheme))
		if scheme != SchemeDefault {
			def := company.SchemeLivery(int(SchemeDefault))
			inherited = &def
		}
	} else {
		id, _ := c.sel.Group()
		group, found := findGroup(c.provider.Groups(), id)
		if !found {
			return nil, 0
		}
		repr = group.Livery
		if parent, found := findGroup(c.provider.Groups(), group.Parent); found {
			inherited = &parent.Livery
		} else {
			def := company.SchemeLivery(int(SchemeDefault))
			inherited = &def
		}
	}

	var masked uint32
	if set, isScheme := c.sel.Schemes(); isScheme && set.Has(SchemeDefault) && slot == game.SlotPrimary {
		for _, other := range c.provider.Companies() {
			if other.ID == c.company {
				continue
			}
			if other.Colour.IsValid() {
				masked |= 1 << uint(other.Colour)
			}
		}
	}

	options := make([]ColourOption, 0, game.NumColours+1)
	if inherited != nil {
		options = append(options, ColourOption{
			Label:   "Default",
			Display: slotColour(*inherited, slot),
			Value:   game.InvalidColour,
			Default: true,
		})
	}
	for i := game.Colour(0); i < game.NumColours; i++ {
		options = append(options, ColourOption{
			Label:   ColourName(i),
			Display: i,
			Value:   i,
			Masked:  masked&(1<<uint(i)) != 0,
		})
	}

	preselect := 0
	if inherited == nil || slotInUse(repr, slot) {
		colour := slotColour(repr, slot)
		for i, opt := range options {
			if !opt.Default && opt.Value == colour {
				preselect = i
				break
			}
		}
	}
	return options, preselect
}

func slotColour(l game.Livery, slot game.Slot) game.Colour {
	if slot == game.SlotPrimary {
		return l.Primary
	}
	return l.Secondary
}

func slotInUse(l game.Livery, slot game.Slot) bool {
	if slot == game.SlotPrimary {
		return l.PrimaryInUse()
	}
	return l.SecondaryInUse()
}

func findGroup(groups []game.Group, id game.GroupID) (game.Group, bool) {
	if id == game.RootGroup || id == game.InvalidGroup {
		return game.Group{}, false
	}
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return game.Group{}, false
}
