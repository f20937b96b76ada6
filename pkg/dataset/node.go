package dataset

import (
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/asciiviz/pkg/errors"
)

type pair struct {
	key, value *yaml.Node
}

// pairs returns the entries of a mapping node in document order.
func pairs(n *yaml.Node) []pair {
	out := make([]pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out = append(out, pair{key: deref(n.Content[i]), value: deref(n.Content[i+1])})
	}
	return out
}

// field looks up key in a mapping node.
func field(n *yaml.Node, key string) (*yaml.Node, bool) {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, false
	}
	for _, p := range pairs(n) {
		if p.key.Kind == yaml.ScalarNode && p.key.Value == key {
			return p.value, true
		}
	}
	return nil, false
}

// unwrap returns the value under key when present, n otherwise.
func unwrap(n *yaml.Node, key string) *yaml.Node {
	if inner, ok := field(n, key); ok {
		return inner
	}
	return n
}

// nodeValue decodes the "val" field of a tree or list node. A missing val is nil.
func nodeValue(n *yaml.Node) (any, error) {
	v, ok := field(n, "val")
	if !ok {
		return nil, nil
	}
	return scalar(v)
}

func fieldValue(n *yaml.Node, key string) (any, error) {
	v, ok := field(n, key)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidShape, "line %d: missing %q", n.Line, key)
	}
	return scalar(v)
}

func scalar(n *yaml.Node) (any, error) {
	if err := expect(n, yaml.ScalarNode); err != nil {
		return nil, err
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "line %d", n.Line)
	}
	return v, nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func expect(n *yaml.Node, kind yaml.Kind) error {
	if n == nil {
		return errors.New(errors.ErrCodeInvalidShape, "expected %s, got nothing", kindName(kind))
	}
	if n.Kind != kind {
		return errors.New(errors.ErrCodeInvalidShape, "line %d: expected %s, got %s", n.Line, kindName(kind), kindName(n.Kind))
	}
	return nil
}

func tooDeep(n *yaml.Node) error {
	return errors.New(errors.ErrCodeInvalidShape, "line %d: nesting deeper than %d levels", n.Line, maxNesting)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown node"
}
