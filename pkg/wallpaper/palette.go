package wallpaper

import (
	"image"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// paletteSize is how many dominant colors the theme layer consumes.
const paletteSize = 5

// Palette is an ordered set of hex colors, dominant first.
type Palette struct {
	Colors []string `json:"colors"`
}

// Accent returns the i-th palette color, wrapping, so callers can pull as
// many accents as they like from however many the extraction found.
func (p Palette) Accent(i int) string {
	if len(p.Colors) == 0 {
		return "#7f7f7f"
	}
	return p.Colors[i%len(p.Colors)]
}

// Extract computes the n dominant colors of an image. Pixels are sampled on
// a stride and quantized into coarse RGB buckets; each winning bucket
// contributes its average color. Dominance is by bucket population.
func Extract(img image.Image, n int) Palette {
	if n <= 0 {
		n = paletteSize
	}
	bounds := img.Bounds()

	type bucket struct {
		count   int
		r, g, b float64
	}
	buckets := make(map[uint32]*bucket)

	stride := (bounds.Dx()*bounds.Dy())/20000 + 1
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i++
			if i%stride != 0 {
				continue
			}
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue // mostly transparent
			}
			// 4 bits per channel keeps similar shades together.
			key := (r>>12)<<8 | (g>>12)<<4 | (b >> 12)
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.count++
			bk.r += float64(r) / 0xffff
			bk.g += float64(g) / 0xffff
			bk.b += float64(b) / 0xffff
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, bk := range buckets {
		ordered = append(ordered, bk)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].count > ordered[j].count
	})

	pal := Palette{}
	for _, bk := range ordered {
		if len(pal.Colors) == n {
			break
		}
		c := colorful.Color{
			R: bk.r / float64(bk.count),
			G: bk.g / float64(bk.count),
			B: bk.b / float64(bk.count),
		}
		pal.Colors = append(pal.Colors, c.Clamped().Hex())
	}
	return pal
}

// BuiltinPalette looks up a shipped palette by name.
func BuiltinPalette(name string) (Palette, bool) {
	pal, ok := builtins[name]
	return pal, ok
}

// builtins are the shipped palettes, available without any image file.
var builtins = map[string]Palette{
	"slate": {Colors: []string{"#3b4252", "#81a1c1", "#88c0d0", "#e5e9f0", "#bf616a"}},
	"dusk":  {Colors: []string{"#2d2a4a", "#907aa9", "#c4a7e7", "#e0def4", "#eb6f92"}},
	"moss":  {Colors: []string{"#2b3328", "#7c9967", "#a7c080", "#d3c6aa", "#e67e80"}},
	"ember": {Colors: []string{"#32302f", "#d65d0e", "#fe8019", "#fbf1c7", "#fabd2f"}},
	"tide":  {Colors: []string{"#0f2536", "#1c7c8c", "#5fb3b3", "#d8dee9", "#ec5f67"}},
}
