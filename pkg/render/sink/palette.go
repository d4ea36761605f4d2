package sink

// Palette colors a rendering. Fills cycle by nesting depth.
type Palette struct {
	Background string
	Stroke     string
	Text       string
	Fills      []string
	Track      string
	Thumb      string
}

// Paper is the default light palette.
var Paper = Palette{
	Background: "#fdfcf8",
	Stroke:     "#333333",
	Text:       "#222222",
	Fills:      []string{"#e8f1fb", "#fbefe3", "#eaf6ea", "#f4e9f7"},
	Track:      "#eeeeee",
	Thumb:      "#9a9a9a",
}

// Blueprint is a dark palette.
var Blueprint = Palette{
	Background: "#0d2a4a",
	Stroke:     "#cfe3ff",
	Text:       "#ffffff",
	Fills:      []string{"#174070", "#1d4f86", "#235e9c", "#2a6db2"},
	Track:      "#0a2240",
	Thumb:      "#7fa8d9",
}

func (p Palette) fill(depth int) string {
	if len(p.Fills) == 0 {
		return "none"
	}
	return p.Fills[depth%len(p.Fills)]
}
