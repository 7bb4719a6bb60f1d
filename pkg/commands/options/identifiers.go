package options

import "github.com/spf13/cobra"

// IDOptions toggles printing item identifiers.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the id flag on the provided command.
func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVar(&io.ShowID, "id", false,
		"Show item ids, for use with done, rm, and move.")
}

// ConfirmOptions skips interactive confirmation prompts.
type ConfirmOptions struct {
	Yes bool
}

// AddConfirmArgs wires the yes flag on the provided command.
func AddConfirmArgs(cmd *cobra.Command, co *ConfirmOptions) {
	cmd.Flags().BoolVarP(&co.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}
