package dot

import (
	"fmt"

	"github.com/matzehuels/asciiviz/pkg/viz"
)

func (w *writer) linkedList(l viz.LinkedList, opts viz.Options) {
	prev := ""
	for i, n := 0, l.Head; n != nil && within(opts, i); i, n = i+1, n.Next {
		id := w.node(fmt.Sprintf("%d: %s", i, viz.FormatValue(n.Val)))
		if prev != "" {
			w.edge(prev, id)
		}
		prev = id
	}
	null := w.node("null", "shape=plaintext", "style=\"\"")
	if prev != "" {
		w.edge(prev, null)
	}
}

func (w *writer) binary(n *viz.TreeNode, depth int, opts viz.Options) string {
	if n == nil || !within(opts, depth) {
		return ""
	}
	id := w.node(viz.FormatValue(n.Val))
	if left := w.binary(n.Left, depth+1, opts); left != "" {
		w.edge(id, left, `label="L"`)
	}
	if right := w.binary(n.Right, depth+1, opts); right != "" {
		w.edge(id, right, `label="R"`)
	}
	return id
}

func (w *writer) heap(h viz.Heap, index, depth int, opts viz.Options) string {
	if index >= len(h) || !within(opts, depth) {
		return ""
	}
	id := fmt.Sprintf("h%d", index)
	w.named(id, viz.FormatValue(h[index]), fmt.Sprintf("xlabel=%q", fmt.Sprint(index)))
	if left := w.heap(h, 2*index+1, depth+1, opts); left != "" {
		w.edge(id, left, `label="L"`)
	}
	if right := w.heap(h, 2*index+2, depth+1, opts); right != "" {
		w.edge(id, right, `label="R"`)
	}
	return id
}

func (w *writer) graph(g viz.Graph) {
	for _, a := range g {
		w.named(a.Node, a.Node)
	}
	for _, a := range g {
		for _, n := range a.Neighbors {
			w.edge(a.Node, n)
		}
	}
}

func (w *writer) trie(t viz.Trie, opts viz.Options) {
	root := w.node("", "shape=point")
	w.trieChildren(root, t.Root, 0, opts)
}

func (w *writer) trieChildren(parent string, n *viz.TrieNode, depth int, opts viz.Options) {
	if n == nil || !within(opts, depth) {
		return
	}
	for _, e := range n.Children {
		id := w.node(e.Char)
		w.edge(parent, id)
		w.trieChildren(id, e.Child, depth+1, opts)
	}
}

func (w *writer) ternary(n *viz.TernaryNode, depth int, opts viz.Options) string {
	if n == nil || !within(opts, depth) {
		return ""
	}
	id := w.node(viz.FormatValue(n.Val))
	branches := []struct {
		child *viz.TernaryNode
		label string
	}{
		{n.Left, "L"},
		{n.Middle, "M"},
		{n.Right, "R"},
	}
	for _, b := range branches {
		if child := w.ternary(b.child, depth+1, opts); child != "" {
			w.edge(id, child, fmt.Sprintf("label=%q", b.label))
		}
	}
	return id
}

func (w *writer) disjointSet(d viz.DisjointSet) {
	for _, l := range d {
		elem := viz.FormatValue(l.Element)
		parent := viz.FormatValue(l.Parent)
		if elem == parent {
			w.named(elem, elem, "peripheries=2")
			continue
		}
		w.named(elem, elem)
		w.edge(elem, parent)
	}
}
