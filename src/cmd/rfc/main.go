package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rfcfacil/src/cmd/rfc/batchcmd"
	"rfcfacil/src/cmd/rfc/calccmd"
	"rfcfacil/src/cmd/rfc/normalizecmd"
	"rfcfacil/src/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "rfc",
	Short: "Compute the first ten characters of a Mexican RFC for natural persons",
}

// getEnv returns the environment value for key or def if unset.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func execute() error {
	rootCmd.AddCommand(calccmd.New())
	rootCmd.AddCommand(batchcmd.New(getEnv("RFC_FORMAT", store.FormatYAML)))
	rootCmd.AddCommand(normalizecmd.New())
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
