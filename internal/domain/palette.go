package domain

// Palette holds the display colors cycled through for hire events and snapshots.
var Palette = []string{
	"#3AA99F", // teal
	"#4385BE", // blue
	"#8B7EC8", // purple
	"#DA702C", // orange
	"#D0A215", // yellow
	"#879A39", // green
	"#CE5D97", // magenta
	"#D14D41", // red
}

// PaletteColor returns the palette entry for index i, wrapping around.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
