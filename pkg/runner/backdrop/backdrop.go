// Package backdrop backs the wallpaper CLI commands.
package backdrop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/upload"
	"tableflip.dev/tabletop/pkg/wallpaper"
)

// Backdrop manages the persisted wallpaper and its palette.
type Backdrop struct {
	Persistence store.Persistence
	Uploader    *upload.Client
}

// Show prints the current wallpaper and the palette derived from it.
func (b *Backdrop) Show(ctx context.Context) error {
	if b.Persistence == nil {
		return errors.New("can not reach wallpaper, no persistence")
	}

	w, pal := wallpaper.Hydrate(b.Persistence)
	bold := color.New(color.Bold)

	fmt.Println("")
	_, _ = bold.Printf("%s", w.Source)
	fmt.Printf("  (%s)\n", w.Kind)
	if len(pal.Colors) > 0 {
		fmt.Printf("palette %s\n", strings.Join(pal.Colors, " "))
	}

	faint := color.New(color.Faint)
	_, _ = faint.Printf("builtins: %s\n\n", strings.Join(wallpaper.Builtins(), ", "))
	return nil
}

// Set persists a new wallpaper. Source may be a builtin name, a file path,
// or an http(s) url.
func (b *Backdrop) Set(ctx context.Context, source string) error {
	if b.Persistence == nil {
		return errors.New("can not reach wallpaper, no persistence")
	}

	w := wallpaper.Wallpaper{Kind: wallpaper.KindFile, Source: source}
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		w.Kind = wallpaper.KindURL
	case isBuiltin(source):
		w.Kind = wallpaper.KindBuiltin
	}

	pal, err := wallpaper.Set(b.Persistence, w)
	if err != nil {
		return err
	}
	fmt.Printf("wallpaper set to %s, palette %s\n", source, strings.Join(pal.Colors, " "))
	return nil
}

// Share uploads a local wallpaper image to the image host and persists the
// returned url so other machines can use it.
func (b *Backdrop) Share(ctx context.Context, path string) error {
	if b.Persistence == nil {
		return errors.New("can not reach wallpaper, no persistence")
	}

	uploader := b.Uploader
	if uploader == nil {
		uploader = upload.NewClient()
	}

	url, err := uploader.UploadImage(ctx, path)
	if err != nil {
		return err
	}

	if _, err := wallpaper.Set(b.Persistence, wallpaper.Wallpaper{
		Kind:   wallpaper.KindURL,
		Source: url,
	}); err != nil {
		return err
	}
	fmt.Printf("uploaded, wallpaper set to %s\n", url)
	return nil
}

func isBuiltin(name string) bool {
	for _, b := range wallpaper.Builtins() {
		if b == name {
			return true
		}
	}
	return false
}
