// Package printers renders dashboard data for the CLI surface.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tabletop/pkg/todo"
	"tableflip.dev/tabletop/pkg/weather"
)

// PrettyPrint writes colorized, human-first output to stdout.
type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Todos prints items in list order, striking through completed ones.
func (pp *PrettyPrint) Todos(items ...todo.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, item := range items {
		if pp.ShowID {
			pad := len(spacing) - len(item.ID)
			if pad < 1 {
				pad = 1
			}
			_, _ = y.Print(item.ID)
			_, _ = y.Print(strings.Repeat(" ", pad))
		}
		if item.Done {
			_, _ = done.Printf("☑ %s\n", item.Text)
		} else {
			_, _ = t.Printf("☐ %s\n", item.Text)
		}
	}
	_, _ = t.Println("")
}

// Weather prints one reading with its short hourly outlook.
func (pp *PrettyPrint) Weather(r weather.Reading) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = bold.Println(r.Place)
	fmt.Printf("%.0f° %s\n", r.Temperature, r.Description())
	_, _ = faint.Printf("H %.0f°  L %.0f°\n", r.High, r.Low)

	if len(r.Hourly) > 0 {
		parts := make([]string, 0, 3)
		for _, h := range r.Hourly {
			if len(parts) == 3 {
				break
			}
			parts = append(parts, fmt.Sprintf("%02dh %.0f°", h.Time.Hour(), h.Temperature))
		}
		_, _ = faint.Println(strings.Join(parts, "  "))
	}
}
