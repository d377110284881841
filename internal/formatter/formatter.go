package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rail44/kata/internal/kata"
)

// Supported output formats
const (
	Text     = "text"
	JSON     = "json"
	YAML     = "yaml"
	Markdown = "markdown"
)

type formatFunc func(w io.Writer, r kata.Result) error

var formats = map[string]formatFunc{
	Text:     formatText,
	JSON:     formatJSON,
	YAML:     formatYAML,
	Markdown: formatMarkdown,
}

// Names returns the supported format names in sorted order
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether name is a known format
func Supported(name string) bool {
	_, ok := formats[name]
	return ok
}

// Format writes r to w in the named format
func Format(w io.Writer, format string, r kata.Result) error {
	f, ok := formats[format]
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}
	r.Value = normalize(r.Value)
	return f(w, r)
}

// normalize turns big integers that fit in int64 into plain numbers so every
// encoder renders them the same way.
func normalize(v any) any {
	switch v := v.(type) {
	case *big.Int:
		return normalizeBig(v)
	case []*big.Int:
		out := make([]any, len(v))
		for i, b := range v {
			out[i] = normalizeBig(b)
		}
		return out
	}
	return v
}

// Values beyond int64 stay exact as decimal strings.
func normalizeBig(b *big.Int) any {
	if b.IsInt64() {
		return b.Int64()
	}
	return b.String()
}

func formatText(w io.Writer, r kata.Result) error {
	_, err := fmt.Fprintln(w, textValue(r.Value, " "))
	return err
}

// textValue renders slices as sep-joined elements, string slices one per line.
func textValue(v any, sep string) string {
	switch v := v.(type) {
	case []string:
		return strings.Join(v, "\n")
	case kata.MaxMin:
		return fmt.Sprintf("%d %d", v.Max, v.Min)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return fmt.Sprint(v)
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return strings.Join(parts, sep)
}

func formatJSON(w io.Writer, r kata.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatYAML(w io.Writer, r kata.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func formatMarkdown(w io.Writer, r kata.Result) error {
	var formatted strings.Builder

	formatted.WriteString(fmt.Sprintf("### %s\n\n", r.Exercise))
	if len(r.Args) > 0 {
		formatted.WriteString("**Arguments:**\n")
		for _, arg := range r.Args {
			formatted.WriteString(fmt.Sprintf("- `%s`\n", arg))
		}
		formatted.WriteString("\n")
	}

	formatted.WriteString("**Result:**\n")
	switch v := r.Value.(type) {
	case []string:
		formatted.WriteString(fmt.Sprintf("```\n%s\n```\n", strings.Join(v, "\n")))
	case kata.MaxMin:
		formatted.WriteString(fmt.Sprintf("- max: `%d`\n- min: `%d`\n", v.Max, v.Min))
	default:
		formatted.WriteString(fmt.Sprintf("`%s`\n", textValue(v, ", ")))
	}

	_, err := io.WriteString(w, formatted.String())
	return err
}
