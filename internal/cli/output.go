package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// render writes v as indented JSON or text as a line, depending on the
// configured output format.
func (a *app) render(cmd *cobra.Command, v any, text string) error {
	switch format := a.v.GetString(keyOutput); format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "text", "":
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
