package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects how command failures are reported: the pretty
// printers by default, a machine-readable envelope with --json.
type OutputOptions struct {
	JSON bool
}

// AddOutputArgs wires the output flags onto the root command so every
// tabletop subcommand shares them.
func AddOutputArgs(cmd *cobra.Command, oo *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&oo.JSON, "json", false,
		"Print errors as JSON.")
}

// HandleError reports err in the selected output format. In JSON mode the
// error is printed as an {"error": ...} object and not returned.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil || !o.JSON {
		return err
	}
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
