// Package keys prints the widget legend and keyboard shortcut table.
package keys

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tabletop/pkg/glyph"
)

// Keys prints the dashboard legend to stdout.
type Keys struct{}

// Do renders the widget symbols and shortcuts.
func (k *Keys) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	all := glyph.DefaultGlyphs()

	widgets := make([]glyph.Glyph, 0, len(all))
	shortcuts := make([]glyph.Glyph, 0, len(all))
	for _, g := range all {
		if g.Widget {
			widgets = append(widgets, g)
		} else {
			shortcuts = append(shortcuts, g)
		}
	}

	k.table(widgets, false)
	_, _ = fmt.Fprintln(color.Output, "")
	k.table(shortcuts, true)

	fmt.Println("")
	return nil
}

func (k *Keys) table(glyfs []glyph.Glyph, shortcuts bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if shortcuts {
		tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
		for _, g := range glyfs {
			tbl.AddRow(g.Key, g.Meaning)
		}
	} else {
		tbl.AddRow(bold.Sprint("Widget"), bold.Sprint("Meaning"))
		for _, g := range glyfs {
			tbl.AddRow(g.Symbol, g.Meaning)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
