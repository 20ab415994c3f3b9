package store

import (
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "os"
    "strings"

    "gopkg.in/yaml.v3"

    "rfcfacil/src/internal/rfc"
    "rfcfacil/src/internal/sanitize"
    "rfcfacil/src/internal/schema"
)

// Output formats understood by WriteResults.
const (
    FormatYAML = "yaml"
    FormatJSON = "json"
    FormatText = "text"
)

// Stdin is the path that makes ReadPeopleFile read standard input.
const Stdin = "-"

// ReadPeopleFile reads batch records from path, or from stdin when path is "-".
func ReadPeopleFile(path string) ([]schema.Person, error) {
    if path == Stdin {
        return ReadPeople(os.Stdin)
    }
    f, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer f.Close()
    people, err := ReadPeople(f)
    if err != nil {
        return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
    }
    return people, nil
}

// ReadPeople decodes every YAML document in r. A document may be a sequence of
// records, a mapping with a "people" sequence, or a single record mapping.
func ReadPeople(r io.Reader) ([]schema.Person, error) {
    var people []schema.Person
    dec := yaml.NewDecoder(r)
    for {
        var doc yaml.Node
        err := dec.Decode(&doc)
        if errors.Is(err, io.EOF) {
            return people, nil
        }
        if err != nil {
            return nil, err
        }
        batch, err := decodeDocument(&doc)
        if err != nil {
            return nil, err
        }
        people = append(people, batch...)
    }
}

func decodeDocument(doc *yaml.Node) ([]schema.Person, error) {
    root := doc
    if root.Kind == yaml.DocumentNode {
        if len(root.Content) == 0 {
            return nil, nil
        }
        root = root.Content[0]
    }
    switch root.Kind {
    case yaml.SequenceNode:
        var out []schema.Person
        if err := root.Decode(&out); err != nil {
            return nil, err
        }
        return out, nil
    case yaml.MappingNode:
        if hasKey(root, "people") {
            var wrapped struct {
                People []schema.Person `yaml:"people"`
            }
            if err := root.Decode(&wrapped); err != nil {
                return nil, err
            }
            return wrapped.People, nil
        }
        var p schema.Person
        if err := root.Decode(&p); err != nil {
            return nil, err
        }
        return []schema.Person{p}, nil
    case yaml.ScalarNode:
        if root.Tag == "!!null" {
            return nil, nil
        }
    }
    return nil, fmt.Errorf("line %d: expected a record, a list of records or a people: list", root.Line)
}

func hasKey(m *yaml.Node, key string) bool {
    for i := 0; i+1 < len(m.Content); i += 2 {
        if m.Content[i].Value == key {
            return true
        }
    }
    return false
}

// Compute cleans, validates and calculates every record. Without keepGoing the
// first failing record aborts the batch; with it the failure is kept in the
// record's Error field and reported through warn.
func Compute(people []schema.Person, keepGoing bool, warn func(index int, err error)) ([]schema.Result, error) {
    results := make([]schema.Result, 0, len(people))
    for i, p := range people {
        sanitize.CleanPerson(&p)
        if p.ID == "" {
            p.ID = p.DefaultID()
        }
        res := schema.Result{ID: p.ID, Input: p}
        err := p.Validate()
        var code rfc.Code
        if err == nil {
            code, err = rfc.Compute(p.RFCPerson())
        }
        if err != nil {
            if !keepGoing {
                return nil, fmt.Errorf("record %d (%s): %w", i, p.ID, err)
            }
            if warn != nil {
                warn(i, err)
            }
            res.Error = err.Error()
            results = append(results, res)
            continue
        }
        res.RFC = code.String()
        res.NameCode = code.Name
        res.DateCode = code.Date
        results = append(results, res)
    }
    return results, nil
}

// ValidFormat reports whether f is an output format WriteResults understands.
func ValidFormat(f string) bool {
    switch f {
    case FormatYAML, FormatJSON, FormatText:
        return true
    }
    return false
}

// WriteResults encodes results to w in the given format.
func WriteResults(w io.Writer, results []schema.Result, format string) error {
    switch strings.ToLower(format) {
    case FormatYAML, "":
        enc := yaml.NewEncoder(w)
        enc.SetIndent(2)
        if err := enc.Encode(results); err != nil {
            return err
        }
        return enc.Close()
    case FormatJSON:
        b, err := json.MarshalIndent(results, "", "  ")
        if err != nil { return err }
        _, err = fmt.Fprintf(w, "%s\n", b)
        return err
    case FormatText:
        for _, r := range results {
            code := r.RFC
            if r.Error != "" {
                code = "ERROR"
            }
            if _, err := fmt.Fprintf(w, "%s\t%s\n", code, r.ID); err != nil {
                return err
            }
        }
        return nil
    default:
        return fmt.Errorf("unknown format: %s (want yaml, json or text)", format)
    }
}
