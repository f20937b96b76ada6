package dataset

import "github.com/matzehuels/asciiviz/pkg/viz"

// Sample is a ready-made structure for one visualization type.
type Sample struct {
	Type    viz.Type
	Title   string
	Data    viz.Renderer
	Options viz.Options
}

// Render renders the sample with its own options.
func (s Sample) Render() (string, error) {
	return viz.Render(s.Type, s.Data, s.Options)
}

// Samples returns one sample per type in canonical type order.
// Every call builds fresh values, so callers may modify them.
func Samples() []Sample {
	out := make([]Sample, 0, len(viz.Types()))
	for _, t := range viz.Types() {
		out = append(out, sampleBuilders[t]())
	}
	return out
}

// SampleFor returns the sample for t.
func SampleFor(t viz.Type) (Sample, bool) {
	build, ok := sampleBuilders[t]
	if !ok {
		return Sample{}, false
	}
	return build(), true
}

var sampleBuilders = map[viz.Type]func() Sample{
	viz.TypeLinkedList: func() Sample {
		var l viz.LinkedList
		l.Add(1)
		l.Add(2)
		l.Add(3)
		return Sample{Type: viz.TypeLinkedList, Title: "Linked List", Data: l}
	},
	viz.TypeArray: func() Sample {
		return Sample{
			Type:    viz.TypeArray,
			Title:   "Array",
			Data:    viz.Array{5, 3, 8, 1, 2},
			Options: viz.Options{Label: "Initial Array"},
		}
	},
	viz.TypeBinaryTree: func() Sample {
		return Sample{Type: viz.TypeBinaryTree, Title: "Binary Tree", Data: viz.BinaryTree{
			Root: &viz.TreeNode{Val: 5, Left: &viz.TreeNode{Val: 3}, Right: &viz.TreeNode{Val: 8}},
		}}
	},
	viz.TypeGraph: func() Sample {
		return Sample{Type: viz.TypeGraph, Title: "Graph", Data: viz.Graph{
			{Node: "A", Neighbors: []string{"B", "C"}},
			{Node: "B", Neighbors: []string{"D"}},
			{Node: "C", Neighbors: []string{"D"}},
			{Node: "D"},
		}}
	},
	viz.TypeStack: func() Sample {
		return Sample{Type: viz.TypeStack, Title: "Stack", Data: viz.Stack{1, 2, 3}}
	},
	viz.TypeQueue: func() Sample {
		return Sample{Type: viz.TypeQueue, Title: "Queue", Data: viz.Queue{1, 2, 3}}
	},
	viz.TypeHeap: func() Sample {
		return Sample{Type: viz.TypeHeap, Title: "Heap", Data: viz.Heap{10, 5, 7, 1, 2, 3}}
	},
	viz.TypeHashTable: func() Sample {
		return Sample{Type: viz.TypeHashTable, Title: "Hash Table", Data: viz.HashTable{
			{Index: 0, Entry: &viz.Entry{Key: "key1", Value: "value1"}},
			{Index: 1, Entry: &viz.Entry{Key: "key2", Value: "value2"}},
			{Index: 2},
			{Index: 3, Entry: &viz.Entry{Key: "key3", Value: "value3"}},
		}}
	},
	viz.TypeTrie: func() Sample {
		var t viz.Trie
		t.Insert("apple")
		t.Insert("program")
		return Sample{Type: viz.TypeTrie, Title: "Trie", Data: t}
	},
	viz.TypeDPMatrix: func() Sample {
		return Sample{Type: viz.TypeDPMatrix, Title: "DP Matrix", Data: viz.Matrix{
			{0, 0, 0, 0, 0},
			{0, 1, 1, 1, 1},
			{0, 1, 2, 2, 2},
		}}
	},
	viz.TypeTernaryTree: func() Sample {
		return Sample{Type: viz.TypeTernaryTree, Title: "Ternary Search Tree", Data: viz.TernaryTree{
			Root: &viz.TernaryNode{
				Val:    "g",
				Left:   &viz.TernaryNode{Val: "c"},
				Middle: &viz.TernaryNode{Val: "h"},
				Right:  &viz.TernaryNode{Val: "t"},
			},
		}}
	},
	viz.TypeDisjointSet: func() Sample {
		return Sample{Type: viz.TypeDisjointSet, Title: "Disjoint Set", Data: viz.DisjointSet{
			{Element: 1, Parent: 2},
			{Element: 2, Parent: 2},
			{Element: 3, Parent: 3},
			{Element: 4, Parent: 3},
			{Element: 5, Parent: 3},
		}}
	},
}
