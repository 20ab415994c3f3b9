package normalizecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rfcfacil/src/internal/names"
)

// New returns the normalize command which shows how text is reduced before
// letters are picked for a name code.
func New() *cobra.Command {
	var given bool
	cmd := &cobra.Command{
		Use:   "normalize <text>...",
		Short: "Print the normalized form of names (tab separated: input, normalized, given-name filtered)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				var err error
				if given {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), names.FilterGivenName(a))
				} else {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", a, names.Normalize(a), names.FilterGivenName(a))
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&given, "given", "g", false, "Only print the given-name filtered form")
	return cmd
}
