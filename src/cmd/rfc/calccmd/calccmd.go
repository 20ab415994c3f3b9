package calccmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rfcfacil/src/internal/dates"
	"rfcfacil/src/internal/names"
	"rfcfacil/src/internal/rfc"
	"rfcfacil/src/internal/sanitize"
)

// New returns the calc command which prints the ten-character prefix for one person.
func New() *cobra.Command {
	var p rfc.Person
	var birthday string
	var verbose bool
	cmd := &cobra.Command{
		Use:          "calc",
		Short:        "Compute the name and birth date code for one person",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Name = sanitize.CleanString(p.Name, 256)
			p.FirstLastName = sanitize.CleanString(p.FirstLastName, 256)
			p.SecondLastName = sanitize.CleanString(p.SecondLastName, 256)
			switch {
			case birthday != "":
				d, m, y, err := dates.ParseBirthday(birthday)
				if err != nil {
					return err
				}
				p.Day, p.Month, p.Year = d, m, y
			case !cmd.Flags().Changed("year") || !cmd.Flags().Changed("month") || !cmd.Flags().Changed("day"):
				return errors.New("birthday is required (--birthday or --day, --month and --year)")
			}
			code, err := rfc.Compute(p)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !verbose {
				_, err = fmt.Fprintln(out, code.String())
				return err
			}
			lines := [][2]string{
				{"rfc", code.String()},
				{"name code", code.Name},
				{"date code", code.Date},
				{"name", names.FilterGivenName(p.Name)},
				{"first last name", names.Normalize(p.FirstLastName)},
				{"second last name", names.Normalize(p.SecondLastName)},
				{"birthday", dates.Format(p.Day, p.Month, p.Year)},
			}
			for _, l := range lines {
				if _, err := fmt.Fprintf(out, "%-17s %s\n", l[0]+":", l[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&p.Name, "name", "n", "", "Given name(s)")
	cmd.Flags().StringVarP(&p.FirstLastName, "first-last-name", "f", "", "First (paternal) surname")
	cmd.Flags().StringVarP(&p.SecondLastName, "second-last-name", "s", "", "Second (maternal) surname")
	cmd.Flags().StringVarP(&birthday, "birthday", "b", "", "Birth date (YYYY-MM-DD, DD/MM/YYYY or YYYYMMDD)")
	cmd.Flags().IntVar(&p.Day, "day", 0, "Birth day (with --month and --year)")
	cmd.Flags().IntVar(&p.Month, "month", 0, "Birth month (with --day and --year)")
	cmd.Flags().IntVar(&p.Year, "year", 0, "Birth year (with --day and --month)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the parts and normalized fields")
	return cmd
}
