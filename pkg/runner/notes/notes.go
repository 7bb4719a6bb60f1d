// Package notes backs the notepad CLI commands.
package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tabletop/pkg/notepad"
	"tableflip.dev/tabletop/pkg/richtext"
	"tableflip.dev/tabletop/pkg/store"
)

// Notes reads and prints notepad tabs.
type Notes struct {
	Persistence store.Persistence
}

func (n *Notes) pad() (*notepad.Pad, error) {
	if n.Persistence == nil {
		return nil, errors.New("can not reach notes, no persistence")
	}
	return notepad.Hydrate(n.Persistence), nil
}

// List prints the tab names, marking the active one.
func (n *Notes) List(ctx context.Context) error {
	pad, err := n.pad()
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, active := pad.Active()
	fmt.Println("")
	for i, tab := range pad.Tabs() {
		marker := " "
		if i == active {
			marker = "*"
		}
		lines := 1 + countNewlines(tab.Content)
		_, _ = bold.Printf("%s %s", marker, tab.Name)
		_, _ = faint.Printf("  %d lines\n", lines)
	}
	fmt.Println("")
	return nil
}

// Show prints one tab's rendered content, plus its links.
func (n *Notes) Show(ctx context.Context, name string) error {
	pad, err := n.pad()
	if err != nil {
		return err
	}

	tab, ok := findTab(pad, name)
	if !ok {
		return fmt.Errorf("no tab named %q", name)
	}

	doc := richtext.Parse(tab.Content)
	fmt.Println(doc.RenderText())

	if links := doc.Links(); len(links) > 0 {
		faint := color.New(color.Faint)
		fmt.Println("")
		for i, link := range links {
			_, _ = faint.Printf("[%d] %s\n", i+1, link)
		}
	}
	return nil
}

func findTab(pad *notepad.Pad, name string) (notepad.Tab, bool) {
	if name == "" {
		tab, _ := pad.Active()
		return tab, true
	}
	for _, tab := range pad.Tabs() {
		if tab.Name == name {
			return tab, true
		}
	}
	return notepad.Tab{}, false
}

func countNewlines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
