package sanitize

import (
    "strings"

    "rfcfacil/src/internal/schema"
)

// maxField bounds free-text fields; real names are far shorter.
const maxField = 256

// CleanString trims and removes control characters, tabs and newlines included,
// up to max bytes (if max <= 0, no truncation). Truncation never splits a rune.
func CleanString(s string, max int) string {
    s = strings.TrimSpace(s)
    if s == "" {
        return s
    }
    var b strings.Builder
    for _, r := range s {
        if r == '\t' || r == '\n' || r == '\r' {
            r = ' '
        }
        if r < 0x20 || r == 0x7f {
            continue
        }
        if max > 0 && b.Len()+len(string(r)) > max {
            break
        }
        b.WriteRune(r)
    }
    return strings.TrimSpace(b.String())
}

// CleanPerson applies conservative sanitization to all strings in the record.
func CleanPerson(p *schema.Person) {
    if p == nil { return }
    p.ID = CleanString(p.ID, 64)
    p.Name = CleanString(p.Name, maxField)
    p.FirstLastName = CleanString(p.FirstLastName, maxField)
    p.SecondLastName = CleanString(p.SecondLastName, maxField)
}
