package dataset

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/asciiviz/pkg/errors"
	"github.com/matzehuels/asciiviz/pkg/viz"
)

// maxNesting bounds tree depth in documents. Deeper input is almost certainly
// generated by mistake and would only produce unreadable output.
const maxNesting = 4096

// Load reads the file at path and decodes it as t.
func Load(t viz.Type, path string) (viz.Renderer, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Decode(t, src)
}

// Decode parses a YAML or JSON document into the shape rendered for t.
func Decode(t viz.Type, src []byte) (viz.Renderer, error) {
	if _, err := viz.ParseType(string(t)); err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse document")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidShape, "empty document")
	}
	root := deref(doc.Content[0])

	switch t {
	case viz.TypeLinkedList:
		return decodeLinkedList(root)
	case viz.TypeArray:
		return decodeSequence[viz.Array](root)
	case viz.TypeStack:
		return decodeSequence[viz.Stack](root)
	case viz.TypeQueue:
		return decodeSequence[viz.Queue](root)
	case viz.TypeHeap:
		return decodeSequence[viz.Heap](root)
	case viz.TypeBinaryTree:
		return decodeBinaryTree(root)
	case viz.TypeTernaryTree:
		return decodeTernaryTree(root)
	case viz.TypeGraph:
		return decodeGraph(root)
	case viz.TypeHashTable:
		return decodeHashTable(root)
	case viz.TypeTrie:
		return decodeTrie(root)
	case viz.TypeDPMatrix:
		return decodeMatrix(root)
	case viz.TypeDisjointSet:
		return decodeDisjointSet(root)
	}
	return nil, errors.New(errors.ErrCodeInternal, "no decoder for %s", t)
}

func decodeLinkedList(n *yaml.Node) (viz.Renderer, error) {
	if n.Kind == yaml.SequenceNode {
		values, err := decodeValues(n)
		if err != nil {
			return nil, err
		}
		return viz.NewLinkedList(values...), nil
	}
	if err := expect(n, yaml.MappingNode); err != nil {
		return nil, err
	}

	node := n
	if head, ok := field(n, "head"); ok {
		node = head
	}

	var list viz.LinkedList
	for count := 0; !isNull(node); count++ {
		if count >= maxNesting {
			return nil, tooDeep(node)
		}
		if err := expect(node, yaml.MappingNode); err != nil {
			return nil, err
		}
		val, err := nodeValue(node)
		if err != nil {
			return nil, err
		}
		list.Add(val)
		node, _ = field(node, "next")
	}
	return list, nil
}

func decodeBinaryTree(n *yaml.Node) (viz.Renderer, error) {
	root, err := binaryNode(unwrap(n, "root"), 0)
	if err != nil {
		return nil, err
	}
	return viz.BinaryTree{Root: root}, nil
}

func binaryNode(n *yaml.Node, depth int) (*viz.TreeNode, error) {
	if isNull(n) {
		return nil, nil
	}
	if depth >= maxNesting {
		return nil, tooDeep(n)
	}
	if err := expect(n, yaml.MappingNode); err != nil {
		return nil, err
	}
	val, err := nodeValue(n)
	if err != nil {
		return nil, err
	}
	node := &viz.TreeNode{Val: val}
	left, _ := field(n, "left")
	if node.Left, err = binaryNode(left, depth+1); err != nil {
		return nil, err
	}
	right, _ := field(n, "right")
	if node.Right, err = binaryNode(right, depth+1); err != nil {
		return nil, err
	}
	return node, nil
}

func decodeTernaryTree(n *yaml.Node) (viz.Renderer, error) {
	root, err := ternaryNode(unwrap(n, "root"), 0)
	if err != nil {
		return nil, err
	}
	return viz.TernaryTree{Root: root}, nil
}

func ternaryNode(n *yaml.Node, depth int) (*viz.TernaryNode, error) {
	if isNull(n) {
		return nil, nil
	}
	if depth >= maxNesting {
		return nil, tooDeep(n)
	}
	if err := expect(n, yaml.MappingNode); err != nil {
		return nil, err
	}
	val, err := nodeValue(n)
	if err != nil {
		return nil, err
	}
	node := &viz.TernaryNode{Val: val}
	children := []struct {
		key  string
		dest **viz.TernaryNode
	}{
		{"left", &node.Left},
		{"middle", &node.Middle},
		{"right", &node.Right},
	}
	for _, c := range children {
		child, _ := field(n, c.key)
		if *c.dest, err = ternaryNode(child, depth+1); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func decodeGraph(n *yaml.Node) (viz.Renderer, error) {
	if err := expect(n, yaml.MappingNode); err != nil {
		return nil, err
	}
	var g viz.Graph
	for _, p := range pairs(n) {
		if err := expect(p.key, yaml.ScalarNode); err != nil {
			return nil, err
		}
		adj := viz.Adjacency{Node: p.key.Value}
		if !isNull(p.value) {
			if err := expect(p.value, yaml.SequenceNode); err != nil {
				return nil, err
			}
			for _, item := range p.value.Content {
				item = deref(item)
				if err := expect(item, yaml.ScalarNode); err != nil {
					return nil, err
				}
				adj.Neighbors = append(adj.Neighbors, item.Value)
			}
		}
		g = append(g, adj)
	}
	return g, nil
}

func decodeHashTable(n *yaml.Node) (viz.Renderer, error) {
	if err := expect(n, yaml.MappingNode); err != nil {
		return nil, err
	}
	var h viz.HashTable
	for _, p := range pairs(n) {
		index, err := strconv.Atoi(p.key.Value)
		if err != nil || p.key.Kind != yaml.ScalarNode {
			return nil, errors.New(errors.ErrCodeInvalidShape, "line %d: bucket index %q is not an integer", p.key.Line, p.key.Value)
		}
		slot := viz.Slot{Index: index}
		if !isNull(p.value) {
			if err := expect(p.value, yaml.MappingNode); err != nil {
				return nil, err
			}
			key, err := fieldValue(p.value, "key")
			if err != nil {
				return nil, err
			}
			value, err := fieldValue(p.value, "value")
			if err != nil {
				return nil, err
			}
			slot.Entry = &viz.Entry{Key: key, Value: value}
		}
		h = append(h, slot)
	}
	return h, nil
}

func decodeTrie(n *yaml.Node) (viz.Renderer, error) {
	root, err := trieNode(unwrap(n, "root"), 0)
	if err != nil {
		return nil, err
	}
	return viz.Trie{Root: root}, nil
}

func trieNode(n *yaml.Node, depth int) (*viz.TrieNode, error) {
	if isNull(n) {
		return nil, nil
	}
	if depth >= maxNesting {
		return nil, tooDeep(n)
	}
	if err := expect(n, yaml.MappingNode); err != nil {
		return nil, err
	}
	node := &viz.TrieNode{}
	children, ok := field(n, "children")
	if !ok || isNull(children) {
		return node, nil
	}
	if err := expect(children, yaml.MappingNode); err != nil {
		return nil, err
	}
	for _, p := range pairs(children) {
		if err := expect(p.key, yaml.ScalarNode); err != nil {
			return nil, err
		}
		child, err := trieNode(p.value, depth+1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, viz.TrieEdge{Char: p.key.Value, Child: child})
	}
	return node, nil
}

func decodeMatrix(n *yaml.Node) (viz.Renderer, error) {
	if err := expect(n, yaml.SequenceNode); err != nil {
		return nil, err
	}
	m := make(viz.Matrix, 0, len(n.Content))
	for _, row := range n.Content {
		cells, err := decodeValues(deref(row))
		if err != nil {
			return nil, err
		}
		m = append(m, cells)
	}
	return m, nil
}

func decodeDisjointSet(n *yaml.Node) (viz.Renderer, error) {
	if err := expect(n, yaml.MappingNode); err != nil {
		return nil, err
	}
	if parents, ok := field(n, "parents"); ok && len(n.Content) == 2 {
		n = parents
		if err := expect(n, yaml.MappingNode); err != nil {
			return nil, err
		}
	}
	var d viz.DisjointSet
	for _, p := range pairs(n) {
		elem, err := scalar(p.key)
		if err != nil {
			return nil, err
		}
		parent, err := scalar(p.value)
		if err != nil {
			return nil, err
		}
		d = append(d, viz.Link{Element: elem, Parent: parent})
	}
	return d, nil
}

// decodeSequence decodes a sequence of scalars into one of the slice shapes.
func decodeSequence[S interface {
	~[]any
	viz.Renderer
}](n *yaml.Node) (viz.Renderer, error) {
	values, err := decodeValues(n)
	if err != nil {
		return nil, err
	}
	return S(values), nil
}

func decodeValues(n *yaml.Node) ([]any, error) {
	if err := expect(n, yaml.SequenceNode); err != nil {
		return nil, err
	}
	values := make([]any, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := scalar(deref(item))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
