// Package wallpaper manages the dashboard's backdrop selection and the
// color palette computed from it. The palette drives the reactive theme, so
// setting a wallpaper recomputes and persists both.
package wallpaper

import (
	"fmt"
	"image"
	"os"
	"sort"
	"strings"

	// Wallpaper files may be any of the common raster formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"tableflip.dev/tabletop/pkg/store"
)

// Kind discriminates wallpaper sources.
type Kind string

const (
	// KindBuiltin names one of the shipped palettes.
	KindBuiltin Kind = "builtin"
	// KindFile points at a local image file.
	KindFile Kind = "file"
	// KindURL references a remote image, e.g. one shared through the
	// upload host.
	KindURL Kind = "url"
)

// Wallpaper is the persisted backdrop reference.
type Wallpaper struct {
	Kind   Kind   `json:"kind"`
	Source string `json:"source"`
}

// DefaultName is the builtin palette used before the user picks anything.
const DefaultName = "slate"

// Default returns the out-of-the-box wallpaper.
func Default() Wallpaper {
	return Wallpaper{Kind: KindBuiltin, Source: DefaultName}
}

// Hydrate loads the persisted wallpaper and palette, falling back to the
// default builtin on absence or corruption.
func Hydrate(p store.Persistence) (Wallpaper, Palette) {
	w := Default()
	p.GetJSON(store.KeyWallpaper, &w)
	pal, ok := builtins[w.Source]
	if w.Kind != KindBuiltin || !ok {
		pal = builtins[DefaultName]
	}
	var stored Palette
	if p.GetJSON(store.KeyPalette, &stored) && len(stored.Colors) > 0 {
		pal = stored
	}
	return w, pal
}

// Set persists the wallpaper, computes its palette, and persists that too.
// File wallpapers have their palette extracted from pixels; URL wallpapers
// keep the previous palette since the bytes are not local.
func Set(p store.Persistence, w Wallpaper) (Palette, error) {
	var pal Palette
	switch w.Kind {
	case KindBuiltin:
		builtin, ok := builtins[w.Source]
		if !ok {
			return Palette{}, fmt.Errorf("wallpaper: unknown builtin %q", w.Source)
		}
		pal = builtin
	case KindFile:
		img, err := loadImage(w.Source)
		if err != nil {
			return Palette{}, err
		}
		pal = Extract(img, paletteSize)
	case KindURL:
		if !strings.HasPrefix(w.Source, "http://") && !strings.HasPrefix(w.Source, "https://") {
			return Palette{}, fmt.Errorf("wallpaper: %q is not a URL", w.Source)
		}
		_, pal = Hydrate(p)
	default:
		return Palette{}, fmt.Errorf("wallpaper: unknown kind %q", w.Kind)
	}

	if err := p.SetJSON(store.KeyWallpaper, w); err != nil {
		return Palette{}, err
	}
	if err := p.SetJSON(store.KeyPalette, pal); err != nil {
		return Palette{}, err
	}
	return pal, nil
}

// Builtins lists the shipped palette names, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: decode %s: %w", path, err)
	}
	return img, nil
}
