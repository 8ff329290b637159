package livery

import "github.com/atomicstack/livery-popup-control/internal/game"

// ColourName returns the display label for a palette index, in the fixed
// canonical order the dropdown presents.
func ColourName(c game.Colour) string {
	if int(c) < len(colourNames) {
		return colourNames[c]
	}
	return "Default"
}

var colourNames = [game.NumColours]string{
	"Dark Blue",
	"Pale Green",
	"Pink",
	"Yellow",
	"Red",
	"Light Blue",
	"Green",
	"Dark Green",
	"Blue",
	"Cream",
	"Mauve",
	"Purple",
	"Orange",
	"Brown",
	"Grey",
	"White",
}
