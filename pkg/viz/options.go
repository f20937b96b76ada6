package viz

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Options configures a single render.
type Options struct {
	// Label is printed before an array as "Label: ". Other renderers ignore it.
	Label string

	// MaxDepth caps recursion for tree-shaped renderers and the number of
	// nodes followed in a linked list. Zero means unlimited.
	MaxDepth int
}

// Renderer is implemented by every shape in this package.
type Renderer interface {
	Render(opts Options) string
}

// allows reports whether a node at depth (or list position) is emitted.
func (o Options) allows(depth int) bool {
	return o.MaxDepth <= 0 || depth < o.MaxDepth
}

// FormatValue prints v the way every renderer does: floats in their shortest
// decimal form without exponent, nil as null, slices and arrays as their
// elements joined by commas, anything else with fmt.Sprint.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case []byte:
		return string(x)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// bracketed renders values as "[a]<sep>[b]<sep>...".
func bracketed(values []any, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "[" + FormatValue(v) + "]"
	}
	return strings.Join(parts, sep)
}

// writeIndented writes indent spaces, s and a newline.
func writeIndented(b *strings.Builder, indent int, s string) {
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString(s)
	b.WriteByte('\n')
}
