package domain

// TourPalette is the fixed ordered set of marker colors cycled across tours.
var TourPalette = []string{
	"#e6194b",
	"#3cb44b",
	"#4363d8",
	"#f58231",
	"#911eb4",
	"#46f0f0",
	"#f032e6",
	"#bcf60c",
	"#008080",
	"#9a6324",
}

// PaletteSlot maps a 1-based tour number onto a palette index.
// The assignment is cyclic and deterministic; no shared state is involved.
func PaletteSlot(tourNumber, paletteSize int) int {
	if paletteSize <= 0 || tourNumber < 1 {
		return 0
	}
	return (tourNumber - 1) % paletteSize
}
