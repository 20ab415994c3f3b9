// Package rfc computes the first ten characters of the Mexican RFC of a
// natural person: a four-letter name code followed by the YYMMDD birth date.
// The verification suffix (homoclave) is left to the caller.
package rfc

import (
	"errors"
	"fmt"
	"strings"

	"rfcfacil/src/internal/dates"
	"rfcfacil/src/internal/names"
	"rfcfacil/src/internal/stringsx"
)

// ErrEmptyField is returned when a surname needed for an initial normalizes
// to nothing.
var ErrEmptyField = errors.New("empty field")

// Person holds the inputs of the calculation. Dates are taken as given.
type Person struct {
	Name           string
	FirstLastName  string
	SecondLastName string
	Day            int
	Month          int
	Year           int
}

// Code is the ten-character prefix split into its two parts.
type Code struct {
	Name string
	Date string
}

func (c Code) String() string { return c.Name + c.Date }

// Calculate returns the ten-character RFC prefix for p.
func Calculate(p Person) (string, error) {
	c, err := Compute(p)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Compute builds the name code, strips its accents, masks forbidden words and
// appends the date code.
func Compute(p Person) (Code, error) {
	nc, err := NameCode(p)
	if err != nil {
		return Code{}, err
	}
	return Code{
		Name: Obfuscate(names.StripAccents(nc)),
		Date: dates.Code(p.Day, p.Month, p.Year),
	}, nil
}

// NameCode picks the rule for the four-letter name code. The result still
// carries Ñ; Compute folds it.
func NameCode(p Person) (string, error) {
	first := names.Normalize(p.FirstLastName)
	second := names.Normalize(p.SecondLastName)
	given := names.FilterGivenName(p.Name)

	switch {
	case first == "":
		return firstTwoLetters(p.SecondLastName) + firstTwoLetters(given), nil
	case second == "":
		return firstTwoLetters(p.FirstLastName) + firstTwoLetters(given), nil
	case len([]rune(first)) <= 2:
		ini, err := initials(
			letter{"first last name", p.FirstLastName, firstLetter},
			letter{"second last name", p.SecondLastName, firstLetter},
		)
		if err != nil {
			return "", err
		}
		return ini + firstTwoLetters(given), nil
	default:
		return initials(
			letter{"first last name", p.FirstLastName, firstLetter},
			letter{"first last name", p.FirstLastName, firstVowelAfterFirstLetter},
			letter{"second last name", p.SecondLastName, firstLetter},
			letter{"name", given, firstLetter},
		)
	}
}

// letter is one extraction step of a name code.
type letter struct {
	field string
	word  string
	pick  func(string) (string, bool)
}

func initials(steps ...letter) (string, error) {
	var b strings.Builder
	for _, s := range steps {
		l, ok := s.pick(s.word)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrEmptyField, s.field)
		}
		b.WriteString(l)
	}
	return b.String(), nil
}

// firstTwoLetters ignores inner spaces and pads short words with X.
func firstTwoLetters(word string) string {
	w := strings.ReplaceAll(names.Normalize(word), " ", "")
	return stringsx.PadRight(stringsx.Take(w, 2), 2, 'X')
}

func firstLetter(word string) (string, bool) {
	w := names.Normalize(word)
	if w == "" {
		return "", false
	}
	return stringsx.Take(w, 1), true
}

// firstVowelAfterFirstLetter returns X when no vowel follows the first letter.
func firstVowelAfterFirstLetter(word string) (string, bool) {
	w := []rune(names.Normalize(word))
	if len(w) == 0 {
		return "", false
	}
	for _, r := range w[1:] {
		if strings.ContainsRune("AEIOU", r) {
			return string(r), true
		}
	}
	return "X", true
}
