package model

// Color is a seat color drawn from the fixed six-color set.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorWhite  Color = "white"
	ColorOrange Color = "orange"
	ColorBrown  Color = "brown"
	ColorGreen  Color = "green"
)

// AllColors returns the valid colors in their canonical order
func AllColors() []Color {
	return []Color{ColorRed, ColorBlue, ColorWhite, ColorOrange, ColorBrown, ColorGreen}
}

// IsValid reports whether c is one of the six known colors
func (c Color) IsValid() bool {
	switch c {
	case ColorRed, ColorBlue, ColorWhite, ColorOrange, ColorBrown, ColorGreen:
		return true
	}
	return false
}
