package model

// Color names one of the fixed tag palette entries.
type Color string

const (
	ColorDefault Color = "DEFAULT"
	ColorGray    Color = "GRAY"
	ColorBrown   Color = "BROWN"
	ColorOrange  Color = "ORANGE"
	ColorYellow  Color = "YELLOW"
	ColorGreen   Color = "GREEN"
	ColorBlue    Color = "BLUE"
	ColorPurple  Color = "PURPLE"
	ColorPink    Color = "PINK"
	ColorRed     Color = "RED"
)

// DefaultColor is assigned to tags created without an explicit color.
const DefaultColor = ColorDefault

// Colors lists the palette in picker order.
var Colors = []Color{
	ColorDefault, ColorGray, ColorBrown, ColorOrange, ColorYellow,
	ColorGreen, ColorBlue, ColorPurple, ColorPink, ColorRed,
}

// ColorVariants holds the visual triple for a palette entry. The values are
// hex colors; they are cosmetic and carry no domain meaning.
type ColorVariants struct {
	Base   string
	Border string
	Accent string
}

var colorVariants = map[Color]ColorVariants{
	ColorDefault: {Base: "#FFFFFF", Border: "#E3E2E0", Accent: "#32302C"},
	ColorGray:    {Base: "#F8F8F7", Border: "#E3E2E0", Accent: "#787774"},
	ColorBrown:   {Base: "#F4EEEE", Border: "#E7D5CC", Accent: "#9F6B53"},
	ColorOrange:  {Base: "#FBECDD", Border: "#F3D1B3", Accent: "#D9730D"},
	ColorYellow:  {Base: "#FBF3DB", Border: "#F0DFA8", Accent: "#CB912F"},
	ColorGreen:   {Base: "#EDF3EC", Border: "#CCE0D0", Accent: "#448361"},
	ColorBlue:    {Base: "#E7F3F8", Border: "#C3DDEB", Accent: "#337EA9"},
	ColorPurple:  {Base: "#F8F3FC", Border: "#E2D2F0", Accent: "#9065B0"},
	ColorPink:    {Base: "#FCF1F6", Border: "#F2C7DC", Accent: "#C14C8A"},
	ColorRed:     {Base: "#FDEBEC", Border: "#F2B8B0", Accent: "#D44C47"},
}

// Valid reports whether c is one of the palette entries.
func (c Color) Valid() bool {
	_, ok := colorVariants[c]
	return ok
}

// Variants returns the visual triple for the color.
func (c Color) Variants() ColorVariants {
	return colorVariants[c]
}
