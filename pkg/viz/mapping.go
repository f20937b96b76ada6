package viz

import (
	"strconv"
	"strings"
)

// Adjacency is one graph node with its neighbors in order.
type Adjacency struct {
	Node      string
	Neighbors []string
}

// Graph is an adjacency list in insertion order.
type Graph []Adjacency

// Render prints "node -> n1, n2" per node.
func (g Graph) Render(Options) string {
	var b strings.Builder
	for _, a := range g {
		b.WriteString(a.Node)
		b.WriteString(" -> ")
		b.WriteString(strings.Join(a.Neighbors, ", "))
		b.WriteByte('\n')
	}
	return b.String()
}

func (g Graph) String() string { return g.Render(Options{}) }

// Entry is a key/value pair stored in a hash table bucket.
type Entry struct {
	Key   any
	Value any
}

// Slot is a hash table bucket. A nil Entry is an empty bucket.
type Slot struct {
	Index int
	Entry *Entry
}

// HashTable lists buckets in insertion order. Buckets may be sparse.
type HashTable []Slot

// Render prints "[i]: {key: value}" per bucket, or "[i]: null" when empty.
func (h HashTable) Render(Options) string {
	var b strings.Builder
	for _, s := range h {
		b.WriteString("[")
		b.WriteString(strconv.Itoa(s.Index))
		b.WriteString("]: ")
		if s.Entry == nil {
			b.WriteString("null")
		} else {
			b.WriteString("{" + FormatValue(s.Entry.Key) + ": " + FormatValue(s.Entry.Value) + "}")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (h HashTable) String() string { return h.Render(Options{}) }

// Link records the parent of one element. An element that is its own parent
// is a set representative.
type Link struct {
	Element any
	Parent  any
}

// DisjointSet is the raw parent mapping of a union-find structure.
type DisjointSet []Link

// Render prints "element -> parent" per link. No find or path compression
// is applied.
func (d DisjointSet) Render(Options) string {
	var b strings.Builder
	for _, l := range d {
		b.WriteString(FormatValue(l.Element))
		b.WriteString(" -> ")
		b.WriteString(FormatValue(l.Parent))
		b.WriteByte('\n')
	}
	return b.String()
}

func (d DisjointSet) String() string { return d.Render(Options{}) }
