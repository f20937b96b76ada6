package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/asciiviz/pkg/errors"
	"github.com/matzehuels/asciiviz/pkg/viz"
)

// ToDOT converts data of type t into a Graphviz digraph.
// opts.MaxDepth bounds tree recursion and list length the same way it does
// for the ASCII renderers.
func ToDOT(t viz.Type, data any, opts viz.Options) (string, error) {
	if t.Valid() && !Supports(t) {
		return "", errors.New(errors.ErrCodeUnsupported, "%s has no node-link form", t)
	}
	r, err := viz.Resolve(t, data)
	if err != nil {
		return "", err
	}

	w := newWriter(t)
	switch s := r.(type) {
	case viz.LinkedList:
		w.linkedList(s, opts)
	case viz.BinaryTree:
		w.binary(s.Root, 0, opts)
	case viz.Heap:
		w.heap(s, 0, 0, opts)
	case viz.Graph:
		w.graph(s)
	case viz.Trie:
		w.trie(s, opts)
	case viz.TernaryTree:
		w.ternary(s.Root, 0, opts)
	case viz.DisjointSet:
		w.disjointSet(s)
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "%s has no node-link form", t)
	}
	return w.String(), nil
}

// Supports reports whether t can be exported with ToDOT.
func Supports(t viz.Type) bool {
	switch t {
	case viz.TypeLinkedList, viz.TypeBinaryTree, viz.TypeHeap, viz.TypeGraph,
		viz.TypeTrie, viz.TypeTernaryTree, viz.TypeDisjointSet:
		return true
	}
	return false
}

type writer struct {
	nodes bytes.Buffer
	edges bytes.Buffer
	next  int
	t     viz.Type
}

func newWriter(t viz.Type) *writer {
	return &writer{t: t}
}

// node declares an anonymous node and returns its id.
func (w *writer) node(label string, attrs ...string) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++
	w.named(id, label, attrs...)
	return id
}

// named declares a node with an explicit id.
func (w *writer) named(id, label string, attrs ...string) {
	all := append([]string{fmt.Sprintf("label=%q", label)}, attrs...)
	fmt.Fprintf(&w.nodes, "  %q [%s];\n", id, strings.Join(all, ", "))
}

func (w *writer) edge(from, to string, attrs ...string) {
	if len(attrs) == 0 {
		fmt.Fprintf(&w.edges, "  %q -> %q;\n", from, to)
		return
	}
	fmt.Fprintf(&w.edges, "  %q -> %q [%s];\n", from, to, strings.Join(attrs, ", "))
}

func (w *writer) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", string(w.t))
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir(w.t))
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("\n")
	buf.Write(w.nodes.Bytes())
	if w.edges.Len() > 0 {
		buf.WriteString("\n")
		buf.Write(w.edges.Bytes())
	}
	buf.WriteString("}\n")
	return buf.String()
}

func rankdir(t viz.Type) string {
	switch t {
	case viz.TypeLinkedList, viz.TypeGraph:
		return "LR"
	case viz.TypeDisjointSet:
		return "BT"
	}
	return "TB"
}

func within(opts viz.Options, depth int) bool {
	return opts.MaxDepth <= 0 || depth < opts.MaxDepth
}
