package batchcmd

import (
    "fmt"

    "github.com/spf13/cobra"

    "rfcfacil/src/internal/schema"
    "rfcfacil/src/internal/store"
    "rfcfacil/src/internal/stringsx"
)

// New returns the batch command which computes prefixes for every record of a
// YAML file. defaultFormat applies when --format is not given.
func New(defaultFormat string) *cobra.Command {
    var format string
    var keepGoing bool
    cmd := &cobra.Command{
        Use:          "batch [file|-]",
        Short:        "Compute prefixes for a YAML list of people (stdin when file is - or omitted)",
        Args:         cobra.MaximumNArgs(1),
        SilenceUsage: true,
        RunE: func(cmd *cobra.Command, args []string) error {
            f := stringsx.FirstNonEmpty(format, defaultFormat, store.FormatYAML)
            if !store.ValidFormat(f) {
                return fmt.Errorf("unknown format: %s (want yaml, json or text)", f)
            }
            path := store.Stdin
            if len(args) == 1 {
                path = args[0]
            }
            var (
                people []schema.Person
                err    error
            )
            if path == store.Stdin {
                people, err = store.ReadPeople(cmd.InOrStdin())
            } else {
                people, err = store.ReadPeopleFile(path)
            }
            if err != nil { return err }
            warn := func(i int, err error) {
                _, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: record %d: %v\n", i, err)
            }
            results, err := store.Compute(people, keepGoing, warn)
            if err != nil { return err }
            return store.WriteResults(cmd.OutOrStdout(), results, f)
        },
    }
    cmd.Flags().StringVarP(&format, "format", "o", "", "Output format: yaml, json or text (default $RFC_FORMAT or yaml)")
    cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Report failing records instead of aborting")
    return cmd
}
