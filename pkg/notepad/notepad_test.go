package notepad

import (
	"testing"

	"tableflip.dev/tabletop/pkg/richtext"
	"tableflip.dev/tabletop/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }

func loadStore(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p
}

func TestHydrateDefaultsToOneEmptyTab(t *testing.T) {
	pad := Hydrate(loadStore(t))
	if len(pad.Tabs()) != 1 {
		t.Fatalf("expected one default tab, got %d", len(pad.Tabs()))
	}
	tab, idx := pad.Active()
	if idx != 0 || tab.Content != "" {
		t.Fatalf("unexpected active tab: %d %+v", idx, tab)
	}
}

func TestPersistReloadKeepsTabsAndSelection(t *testing.T) {
	p := loadStore(t)

	pad := Hydrate(p)
	pad.SetContent("shopping [list](https://l.example)")
	doc := richtext.Parse("shopping [list](https://l.example)")
	snap, ok := doc.SnapshotAtOffset(4)
	if !ok {
		t.Fatal("snapshot failed")
	}
	pad.SetSelection(&snap)
	if _, err := pad.NewTab("ideas"); err != nil {
		t.Fatalf("new tab: %v", err)
	}
	if err := pad.Persist(p); err != nil {
		t.Fatalf("persist: %v", err)
	}

	reloaded := Hydrate(p)
	tabs := reloaded.Tabs()
	if len(tabs) != 2 {
		t.Fatalf("reloaded %d tabs, want 2", len(tabs))
	}
	if tabs[0].Selection == nil {
		t.Fatal("selection snapshot lost on reload")
	}
	if _, idx := reloaded.Active(); idx != 1 {
		t.Fatalf("active tab = %d, want 1", idx)
	}
	fresh := richtext.Parse(tabs[0].Content)
	if offset, ok := fresh.OffsetForSnapshot(*tabs[0].Selection); !ok || offset != 4 {
		t.Fatalf("restored cursor = %d, %v; want 4, true", offset, ok)
	}
}

func TestTabCap(t *testing.T) {
	pad := Hydrate(loadStore(t))
	for i := len(pad.Tabs()); i < MaxTabs; i++ {
		if _, err := pad.NewTab("extra"); err != nil {
			t.Fatalf("tab %d: %v", i, err)
		}
	}
	if _, err := pad.NewTab("overflow"); err != ErrTabLimit {
		t.Fatalf("expected ErrTabLimit, got %v", err)
	}
}

func TestCloseLastTabClearsInsteadOfRemoving(t *testing.T) {
	pad := Hydrate(loadStore(t))
	pad.SetContent("keep me? no.")
	tab, _ := pad.Active()

	if err := pad.CloseTab(tab.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	tabs := pad.Tabs()
	if len(tabs) != 1 {
		t.Fatalf("last tab removed; %d tabs left", len(tabs))
	}
	if tabs[0].Content != "" || tabs[0].Selection != nil {
		t.Fatalf("last tab not cleared: %+v", tabs[0])
	}
}

func TestCloseTabAdjustsActive(t *testing.T) {
	pad := Hydrate(loadStore(t))
	second, _ := pad.NewTab("second")
	pad.NewTab("third")

	pad.Activate(2)
	if err := pad.CloseTab(second.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	tab, idx := pad.Active()
	if idx != 1 || tab.Name != "third" {
		t.Fatalf("active = %d %q, want 1 %q", idx, tab.Name, "third")
	}
}

func TestCycleWraps(t *testing.T) {
	pad := Hydrate(loadStore(t))
	pad.NewTab("b")
	pad.NewTab("c")

	pad.Activate(0)
	pad.Cycle(-1)
	if _, idx := pad.Active(); idx != 2 {
		t.Fatalf("cycle -1 from 0 landed on %d, want 2", idx)
	}
	pad.Cycle(1)
	if _, idx := pad.Active(); idx != 0 {
		t.Fatalf("cycle +1 from 2 landed on %d, want 0", idx)
	}
}

func TestReorderFollowsActive(t *testing.T) {
	pad := Hydrate(loadStore(t))
	b, _ := pad.NewTab("b")
	pad.NewTab("c")

	pad.Activate(1) // b active
	if err := pad.Reorder(b.ID, 5); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	tab, idx := pad.Active()
	if tab.ID != b.ID || idx != 2 {
		t.Fatalf("active after reorder = %d %q", idx, tab.Name)
	}
}

func TestRenameMissingTab(t *testing.T) {
	pad := Hydrate(loadStore(t))
	if err := pad.Rename("nope", "name"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
