package visual

// Glyph ramps ordered from empty to densest
// Index 0 is the background glyph written to missed cells
const (
	// RampClassic is the seventeen step reference ramp
	RampClassic = " .:!/r(l1Z4H9W8$@"

	// RampShort is the ten step ramp
	RampShort = " .:-=+*#%@"

	// RampCoarse is an eight step ramp for small terminals
	RampCoarse = " .-+oO#@"
)

// Ramps maps configuration names to ramp strings
var Ramps = map[string]string{
	"classic": RampClassic,
	"short":   RampShort,
	"coarse":  RampCoarse,
}

// BackgroundGlyph fills cells whose ray missed
const BackgroundGlyph = ' '
