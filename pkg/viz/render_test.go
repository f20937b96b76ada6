package viz

import (
	"strings"
	"testing"

	"github.com/matzehuels/asciiviz/pkg/errors"
)

// validSamples holds one well-formed value per type.
var validSamples = map[Type]any{
	TypeLinkedList:  NewLinkedList(1, 2, 3),
	TypeArray:       []int{5, 3, 8, 1, 2},
	TypeBinaryTree:  BinaryTree{Root: &TreeNode{Val: 5, Left: &TreeNode{Val: 3}, Right: &TreeNode{Val: 8}}},
	TypeGraph:       Graph{{Node: "A", Neighbors: []string{"B"}}},
	TypeStack:       []int{1, 2, 3},
	TypeQueue:       []int{1, 2, 3},
	TypeHeap:        []int{10, 5, 7},
	TypeHashTable:   HashTable{{Index: 0, Entry: &Entry{Key: "k", Value: "v"}}, {Index: 1}},
	TypeTrie:        &TrieNode{Children: []TrieEdge{{Char: "a", Child: &TrieNode{}}}},
	TypeDPMatrix:    [][]int{{0, 1}, {1, 2}},
	TypeTernaryTree: &TernaryNode{Val: "g"},
	TypeDisjointSet: []Link{{Element: 1, Parent: 1}},
}

func TestRenderAllTypes(t *testing.T) {
	suffixes := map[Type]string{
		TypeLinkedList: "null\n",
		TypeStack:      "-----\n",
		TypeQueue:      " Back\n",
	}

	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			data, ok := validSamples[typ]
			if !ok {
				t.Fatalf("no sample for %s", typ)
			}

			got, err := Render(typ, data, Options{})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got == "" {
				t.Fatal("Render() returned empty text")
			}

			suffix := suffixes[typ]
			if suffix == "" {
				suffix = "\n"
			}
			if !strings.HasSuffix(got, suffix) {
				t.Errorf("Render() = %q, want suffix %q", got, suffix)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			first, err := Render(typ, validSamples[typ], Options{Label: "L"})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			second, _ := Render(typ, validSamples[typ], Options{Label: "L"})
			if first != second {
				t.Errorf("second Render() = %q, want %q", second, first)
			}
		})
	}
}

func TestRenderExamples(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		data any
		opts Options
		want string
	}{
		{
			name: "labeled array",
			typ:  TypeArray,
			data: []int{5, 3, 8, 1, 2},
			opts: Options{Label: "Initial Array"},
			want: "Initial Array: [5] -> [3] -> [8] -> [1] -> [2]\n",
		},
		{
			name: "stack",
			typ:  TypeStack,
			data: []int{1, 2, 3},
			want: "| 3 |\n| 2 |\n| 1 |\n-----\n",
		},
		{
			name: "queue",
			typ:  TypeQueue,
			data: []int{1, 2, 3},
			want: "Front [1] -> [2] -> [3] Back\n",
		},
		{
			name: "linked list",
			typ:  TypeLinkedList,
			data: NewLinkedList(1, 2, 3),
			want: "['IDX: 0: 1'] -> ['IDX: 1: 2'] -> ['IDX: 2: 3'] -> null\n",
		},
		{
			name: "linked list head",
			typ:  TypeLinkedList,
			data: &ListNode{Val: "x"},
			want: "['IDX: 0: x'] -> null\n",
		},
		{
			name: "binary tree pointer",
			typ:  TypeBinaryTree,
			data: &BinaryTree{Root: &TreeNode{Val: 5, Left: &TreeNode{Val: 3}, Right: &TreeNode{Val: 8}}},
			want: "    [8]\n[5]\n    [3]\n",
		},
		{
			name: "heap from named type",
			typ:  TypeHeap,
			data: Heap{2, 1},
			want: "[2]\n    [1]\n",
		},
		{
			name: "array of strings",
			typ:  TypeArray,
			data: [2]string{"x", "y"},
			want: "[x] -> [y]\n",
		},
		{
			name: "matrix of floats",
			typ:  TypeDPMatrix,
			data: [][]float64{{0.5, 1}},
			want: "0.5   1\n",
		},
		{
			name: "matrix named type",
			typ:  TypeDPMatrix,
			data: Matrix{{7}},
			want: "  7\n",
		},
		{
			name: "label ignored outside arrays",
			typ:  TypeQueue,
			data: []string{"a"},
			opts: Options{Label: "Q"},
			want: "Front [a] Back\n",
		},
		{
			name: "empty array",
			typ:  TypeArray,
			data: []int{},
			want: "\n",
		},
		{
			name: "empty stack",
			typ:  TypeStack,
			data: []any(nil),
			want: "-----\n",
		},
		{
			name: "empty matrix",
			typ:  TypeDPMatrix,
			data: [][]int{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.typ, tt.data, tt.opts)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderUnknownType(t *testing.T) {
	got, err := Render("unknownTag", []int{1}, Options{})
	if err == nil {
		t.Fatal("Render() error = nil, want unknown type error")
	}
	if got != "" {
		t.Errorf("Render() = %q, want empty text", got)
	}
	if !errors.Is(err, errors.ErrCodeUnknownType) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownType)
	}
	if !strings.Contains(err.Error(), "unknownTag") {
		t.Errorf("error %q should name the tag", err)
	}
}

func TestRenderInvalidShape(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		data any
	}{
		{"array from string", TypeArray, "not a slice"},
		{"array from nil", TypeArray, nil},
		{"tree from slice", TypeBinaryTree, []int{1}},
		{"nil tree pointer", TypeBinaryTree, (*BinaryTree)(nil)},
		{"graph from map", TypeGraph, map[string][]string{"a": nil}},
		{"matrix with scalar row", TypeDPMatrix, []any{[]int{1}, 2}},
		{"trie from tree", TypeTrie, BinaryTree{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.typ, tt.data, Options{})
			if !errors.Is(err, errors.ErrCodeInvalidShape) {
				t.Errorf("Render() error = %v, want %v", err, errors.ErrCodeInvalidShape)
			}
		})
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	stack := []int{1, 2, 3}
	if _, err := Render(TypeStack, stack, Options{}); err != nil {
		t.Fatal(err)
	}
	if stack[0] != 1 || stack[2] != 3 {
		t.Errorf("input mutated: %v", stack)
	}
}
