package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// particles are connective words dropped wherever they appear as a whole word.
var particles = map[string]bool{
	"DAS": true, "DA": true, "DEL": true, "DER": true, "DE": true, "DIE": true,
	"DI": true, "DD": true, "EL": true, "LES": true, "LA": true, "LOS": true,
	"LAS": true, "LE": true, "MAC": true, "MC": true, "VAN": true, "VON": true,
	"Y": true,
}

// givenPrefixes are skipped when they lead a given name ("MARIA LUISA" -> "LUISA").
// Dotted forms never survive Normalize but are kept so the set reads like the
// official table.
var givenPrefixes = map[string]bool{
	"MARIA": true, "MA.": true, "MA": true, "M.": true, "M": true,
	"JOSE": true, "J": true, "J.": true,
	"DA": true, "DAS": true, "DE": true, "DEL": true, "DER": true, "DI": true,
	"DIE": true, "DD": true, "EL": true, "LA": true, "LAS": true, "LOS": true,
	"LE": true, "LES": true, "MAC": true, "MC": true, "VAN": true, "VON": true,
	"Y": true,
}

var punctuation = strings.NewReplacer(
	"-", "", ".", "", ",", "", "'", "", "´", "", "`", "", "’", "", `\`, "", "/", "",
)

// ntildeSentinel stands in for Ñ while the other marks are stripped.
const ntildeSentinel = '\uE000'

// Normalize reduces free text to the uppercase alphabet used for RFC name codes:
// punctuation removed, accents stripped except for Ñ, anything outside
// A-Z, 0-9, &, Ñ and space deleted, and particles removed as whole words.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	cleaned := punctuation.Replace(text)
	if cleaned == "" {
		return cleaned
	}
	return removeParticles(keepAlphabet(StripAccentsExceptNTilde(strings.ToUpper(cleaned))))
}

// stroked letters carry no combining mark, so NFD leaves them intact.
var stroked = strings.NewReplacer("Ł", "L", "ł", "l")

// StripAccents removes every combining mark, including the tilde of Ñ.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, stroked.Replace(s))
	if err != nil {
		return s
	}
	return out
}

// StripAccentsExceptNTilde behaves like StripAccents but keeps Ñ as a letter.
func StripAccentsExceptNTilde(s string) string {
	s = strings.ReplaceAll(norm.NFC.String(s), string(ntildeSentinel), "")
	s = strings.ReplaceAll(s, "Ñ", string(ntildeSentinel))
	s = StripAccents(s)
	return strings.ReplaceAll(s, string(ntildeSentinel), "Ñ")
}

func keepAlphabet(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) || r == '&' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == 'Ñ'
}

// removeParticles replaces every particle found as a whole word with a single
// space. Words are maximal runs of letters and digits, so "&" and spaces both
// delimit them and "ATLAS" keeps its "LAS".
func removeParticles(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := s[start:end]
		if particles[word] {
			b.WriteByte(' ')
		} else {
			b.WriteString(word)
		}
		start = -1
	}
	for i, r := range s {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		b.WriteRune(r)
	}
	flush(len(s))
	return strings.Trim(b.String(), " ")
}

// FilterGivenName normalizes a given name and drops at most one leading
// ceremonial token such as MARIA or JOSE, so "JOSE ANTONIO" yields "ANTONIO".
// A lone token is kept as is.
func FilterGivenName(text string) string {
	s := strings.TrimSpace(Normalize(text))
	i := strings.IndexByte(s, ' ')
	if i <= 0 || !givenPrefixes[s[:i]] {
		return s
	}
	return strings.TrimLeft(s[i:], " ")
}
