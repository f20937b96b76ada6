package viz

import (
	"slices"

	"github.com/matzehuels/asciiviz/pkg/errors"
)

// Type is the tag that selects a renderer.
type Type string

// Supported visualization types.
const (
	TypeLinkedList  Type = "linkedList"
	TypeArray       Type = "array"
	TypeBinaryTree  Type = "binaryTree"
	TypeGraph       Type = "graph"
	TypeStack       Type = "stack"
	TypeQueue       Type = "queue"
	TypeHeap        Type = "heap"
	TypeHashTable   Type = "hashTable"
	TypeTrie        Type = "trie"
	TypeDPMatrix    Type = "dpMatrix"
	TypeTernaryTree Type = "ternaryTree"
	TypeDisjointSet Type = "disjointSet"
)

// types is the single source of truth for the tag order used by listings.
var types = []Type{
	TypeLinkedList,
	TypeArray,
	TypeBinaryTree,
	TypeGraph,
	TypeStack,
	TypeQueue,
	TypeHeap,
	TypeHashTable,
	TypeTrie,
	TypeDPMatrix,
	TypeTernaryTree,
	TypeDisjointSet,
}

type typeInfo struct {
	shape       string
	description string
}

var typeInfos = map[Type]typeInfo{
	TypeLinkedList:  {"LinkedList", "Nodes chained by next references, printed head to null"},
	TypeArray:       {"Array", "Values joined by arrows, with an optional label"},
	TypeBinaryTree:  {"BinaryTree", "Rotated tree, right subtree above, 4 spaces per level"},
	TypeGraph:       {"Graph", "Adjacency list, one node per line"},
	TypeStack:       {"Stack", "Top of stack first, closed by a footer"},
	TypeQueue:       {"Queue", "Front to back on a single line"},
	TypeHeap:        {"Heap", "Array-backed binary tree, rotated like a binary tree"},
	TypeHashTable:   {"HashTable", "One bucket per line, empty buckets as null"},
	TypeTrie:        {"Trie", "One character per line, 2 spaces per level"},
	TypeDPMatrix:    {"Matrix", "Rows of right-aligned 3-character cells"},
	TypeTernaryTree: {"TernaryTree", "Rotated tree, right, node, middle, left; 2 spaces per level"},
	TypeDisjointSet: {"DisjointSet", "Raw element -> parent dump"},
}

// Types returns every supported type in canonical order.
func Types() []Type {
	return slices.Clone(types)
}

// ParseType validates s and returns it as a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", unknownType(t)
	}
	return t, nil
}

// Valid reports whether t names a renderer.
func (t Type) Valid() bool {
	_, ok := typeInfos[t]
	return ok
}

// Shape returns the name of the Go type the renderer for t consumes.
func (t Type) Shape() string {
	return typeInfos[t].shape
}

// Description returns a one-line summary of the renderer for t.
func (t Type) Description() string {
	return typeInfos[t].description
}

func (t Type) String() string {
	return string(t)
}

func unknownType(t Type) error {
	return errors.New(errors.ErrCodeUnknownType, "unknown visualization type %q", string(t))
}
