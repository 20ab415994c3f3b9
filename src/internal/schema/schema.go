package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"rfcfacil/src/internal/dates"
	"rfcfacil/src/internal/names"
	"rfcfacil/src/internal/rfc"
)

// Person is one batch record as read from YAML.
type Person struct {
	ID             string    `yaml:"id,omitempty" json:"id,omitempty"`
	Name           string    `yaml:"name" json:"name"`
	FirstLastName  string    `yaml:"first_last_name" json:"first_last_name"`
	SecondLastName string    `yaml:"second_last_name" json:"second_last_name"`
	Birthday       *Birthday `yaml:"birthday" json:"birthday"`
}

// Result is the computed prefix for one record. Error is set instead of the
// codes when the record could not be computed.
type Result struct {
	ID       string `yaml:"id" json:"id"`
	Input    Person `yaml:"input" json:"input"`
	RFC      string `yaml:"rfc,omitempty" json:"rfc,omitempty"`
	NameCode string `yaml:"name_code,omitempty" json:"name_code,omitempty"`
	DateCode string `yaml:"date_code,omitempty" json:"date_code,omitempty"`
	Error    string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Birthday is a birth date that is never checked against the calendar.
type Birthday struct {
	Day   int `yaml:"day" json:"day"`
	Month int `yaml:"month" json:"month"`
	Year  int `yaml:"year" json:"year"`
}

func (b Birthday) String() string { return dates.Format(b.Day, b.Month, b.Year) }

// UnmarshalYAML accepts either shape:
// - a scalar date: 1970-05-24, 24/05/1970 or 19700524
// - a mapping with day, month and year keys
func (b *Birthday) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		d, m, y, err := dates.ParseBirthday(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*b = Birthday{Day: d, Month: m, Year: y}
		return nil
	case yaml.MappingNode:
		type plain Birthday
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*b = Birthday(p)
		return nil
	default:
		return fmt.Errorf("line %d: birthday must be a date string or a day/month/year mapping", value.Line)
	}
}

// MarshalYAML writes the scalar form so results round-trip as input.
func (b Birthday) MarshalYAML() (any, error) { return b.String(), nil }

// MarshalJSON writes the scalar form as well.
func (b Birthday) MarshalJSON() ([]byte, error) { return []byte(`"` + b.String() + `"`), nil }

// Validate applies basic record rules before calculation.
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.FirstLastName) == "" && strings.TrimSpace(p.SecondLastName) == "" {
		return errors.New("at least one of name, first_last_name or second_last_name is required")
	}
	if p.Birthday == nil {
		return errors.New("birthday is required")
	}
	return nil
}

// RFCPerson converts the record into calculator input.
func (p Person) RFCPerson() rfc.Person {
	out := rfc.Person{Name: p.Name, FirstLastName: p.FirstLastName, SecondLastName: p.SecondLastName}
	if p.Birthday != nil {
		out.Day, out.Month, out.Year = p.Birthday.Day, p.Birthday.Month, p.Birthday.Year
	}
	return out
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
var dashCollapse = regexp.MustCompile(`-+`)

// Slugify generates an id-friendly slug from name parts and an optional year.
// Accents are folded first so "María" becomes "maria".
func Slugify(parts []string, year *int) string {
	t := strings.ToLower(names.StripAccents(strings.TrimSpace(strings.Join(parts, " "))))
	t = nonAlnum.ReplaceAllString(t, "-")
	t = dashCollapse.ReplaceAllString(t, "-")
	t = strings.Trim(t, "-")
	if year != nil {
		return fmt.Sprintf("%s-%d", t, *year)
	}
	return t
}

// DefaultID derives an id from the surnames, name and birth year.
func (p Person) DefaultID() string {
	var year *int
	if p.Birthday != nil {
		year = &p.Birthday.Year
	}
	return Slugify([]string{p.FirstLastName, p.SecondLastName, p.Name}, year)
}
