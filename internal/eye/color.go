package eye

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Fixed colors shared by every eye.
var (
	ScleraColor = Color{R: 252, G: 245, B: 245}
	EyelidColor = Color{R: 0, G: 0, B: 0}
	PupilColor  = Color{R: 0, G: 0, B: 0}
)

// Palette holds the iris colors an eye can be assigned at creation.
var Palette = []Color{
	{R: 255, G: 102, B: 51},
	{R: 0, G: 153, B: 255},
	{R: 125, G: 114, B: 163},
	{R: 88, G: 148, B: 35},
	{R: 238, G: 42, B: 123},
	{R: 0, G: 167, B: 157},
	{R: 117, G: 76, B: 41},
	{R: 141, G: 198, B: 63},
	{R: 196, G: 154, B: 108},
	{R: 128, G: 130, B: 133},
}
