package options

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
)

func TestHandleErrorPassesThrough(t *testing.T) {
	oo := &OutputOptions{}
	err := errors.New("boom")
	if got := oo.HandleError(err); got != err {
		t.Fatalf("got %v, want %v", got, err)
	}
	if got := oo.HandleError(nil); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestHandleErrorJSONSwallows(t *testing.T) {
	oo := &OutputOptions{JSON: true}
	if got := oo.HandleError(errors.New("boom")); got != nil {
		t.Fatalf("got %v, want nil after JSON report", got)
	}
}

func TestAddOutputArgs(t *testing.T) {
	oo := &OutputOptions{}
	cmd := &cobra.Command{Use: "tabletop"}
	AddOutputArgs(cmd, oo)
	if err := cmd.PersistentFlags().Set("json", "true"); err != nil {
		t.Fatal(err)
	}
	if !oo.JSON {
		t.Fatal("--json flag not bound")
	}
}
