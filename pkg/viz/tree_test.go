package viz

import "testing"

func TestBinaryTreeRender(t *testing.T) {
	tests := []struct {
		name string
		tree BinaryTree
		opts Options
		want string
	}{
		{
			name: "root with two children",
			tree: BinaryTree{Root: &TreeNode{Val: 5, Left: &TreeNode{Val: 3}, Right: &TreeNode{Val: 8}}},
			want: "    [8]\n[5]\n    [3]\n",
		},
		{
			name: "left chain",
			tree: BinaryTree{Root: &TreeNode{Val: 3, Left: &TreeNode{Val: 2, Left: &TreeNode{Val: 1}}}},
			want: "[3]\n    [2]\n        [1]\n",
		},
		{
			name: "empty",
			tree: BinaryTree{},
			want: "",
		},
		{
			name: "max depth",
			tree: BinaryTree{Root: &TreeNode{Val: 5, Left: &TreeNode{Val: 3}, Right: &TreeNode{Val: 8}}},
			opts: Options{MaxDepth: 1},
			want: "[5]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tree.Render(tt.opts); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeapRender(t *testing.T) {
	tests := []struct {
		name string
		heap Heap
		opts Options
		want string
	}{
		{
			name: "six elements",
			heap: Heap{10, 5, 7, 1, 2, 3},
			want: "    [7]\n        [3]\n[10]\n        [2]\n    [5]\n        [1]\n",
		},
		{
			name: "single",
			heap: Heap{1},
			want: "[1]\n",
		},
		{
			name: "empty",
			heap: nil,
			want: "",
		},
		{
			name: "max depth",
			heap: Heap{10, 5, 7, 1, 2, 3},
			opts: Options{MaxDepth: 2},
			want: "    [7]\n[10]\n    [5]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.heap.Render(tt.opts); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrieRender(t *testing.T) {
	var trie Trie
	trie.Insert("apple")
	trie.Insert("program")

	want := "a\n  p\n    p\n      l\n        e\n" +
		"p\n  r\n    o\n      g\n        r\n          a\n            m\n"
	if got := trie.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTrieInsertSharesPrefixes(t *testing.T) {
	var trie Trie
	trie.Insert("to")
	trie.Insert("tea")
	trie.Insert("ten")

	want := "t\n  o\n  e\n    a\n    n\n"
	if got := trie.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if len(trie.Root.Children) != 1 {
		t.Errorf("root children = %d, want 1", len(trie.Root.Children))
	}
}

func TestTrieRenderEdges(t *testing.T) {
	tests := []struct {
		name string
		trie Trie
		opts Options
		want string
	}{
		{"nil root", Trie{}, Options{}, ""},
		{"root without children", Trie{Root: &TrieNode{}}, Options{}, ""},
		{
			name: "nil child",
			trie: Trie{Root: &TrieNode{Children: []TrieEdge{{Char: "x"}}}},
			want: "x\n",
		},
		{
			name: "max depth",
			trie: func() Trie { var t Trie; t.Insert("ab"); t.Insert("c"); return t }(),
			opts: Options{MaxDepth: 1},
			want: "a\nc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trie.Render(tt.opts); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrieNodeChild(t *testing.T) {
	var nilNode *TrieNode
	if nilNode.Child("a") != nil {
		t.Error("Child() on nil node should return nil")
	}

	var trie Trie
	trie.Insert("ab")
	if trie.Root.Child("a") == nil {
		t.Fatal("Child(a) = nil, want node")
	}
	if trie.Root.Child("b") != nil {
		t.Error("Child(b) should be nil at the root")
	}
}

func TestTernaryTreeRender(t *testing.T) {
	tests := []struct {
		name string
		tree TernaryTree
		opts Options
		want string
	}{
		{
			name: "three children",
			tree: TernaryTree{Root: &TernaryNode{
				Val:    "g",
				Left:   &TernaryNode{Val: "c"},
				Middle: &TernaryNode{Val: "h"},
				Right:  &TernaryNode{Val: "t"},
			}},
			want: "  [t]\n[g]\n  [h]\n  [c]\n",
		},
		{
			name: "middle chain",
			tree: TernaryTree{Root: &TernaryNode{Val: "a", Middle: &TernaryNode{Val: "b", Middle: &TernaryNode{Val: "c"}}}},
			want: "[a]\n  [b]\n    [c]\n",
		},
		{
			name: "empty",
			tree: TernaryTree{},
			want: "",
		},
		{
			name: "max depth",
			tree: TernaryTree{Root: &TernaryNode{Val: "g", Right: &TernaryNode{Val: "t"}}},
			opts: Options{MaxDepth: 1},
			want: "[g]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tree.Render(tt.opts); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
