package viz

import "strings"

// Indentation per depth level.
const (
	binaryIndent  = 4
	trieIndent    = 2
	ternaryIndent = 2
)

// TreeNode is a binary tree node. Nil children are absent.
type TreeNode struct {
	Val         any
	Left, Right *TreeNode
}

// BinaryTree holds the root of a binary tree. A nil Root renders as empty text.
type BinaryTree struct {
	Root *TreeNode
}

// Render prints the right subtree, the node at 4*depth spaces, then the left subtree.
func (t BinaryTree) Render(opts Options) string {
	var b strings.Builder
	writeBinary(&b, t.Root, 0, opts)
	return b.String()
}

func (t BinaryTree) String() string { return t.Render(Options{}) }

func writeBinary(b *strings.Builder, n *TreeNode, depth int, opts Options) {
	if n == nil || !opts.allows(depth) {
		return
	}
	writeBinary(b, n.Right, depth+1, opts)
	writeIndented(b, binaryIndent*depth, "["+FormatValue(n.Val)+"]")
	writeBinary(b, n.Left, depth+1, opts)
}

// Heap is a binary tree stored in an array: the children of i are 2i+1 and 2i+2.
type Heap []any

// Render prints the heap with the same rotated layout as a binary tree.
func (h Heap) Render(opts Options) string {
	var b strings.Builder
	h.write(&b, 0, 0, opts)
	return b.String()
}

func (h Heap) String() string { return h.Render(Options{}) }

func (h Heap) write(b *strings.Builder, index, depth int, opts Options) {
	if index >= len(h) || !opts.allows(depth) {
		return
	}
	h.write(b, 2*index+2, depth+1, opts)
	writeIndented(b, binaryIndent*depth, "["+FormatValue(h[index])+"]")
	h.write(b, 2*index+1, depth+1, opts)
}

// TrieEdge labels the link from a node to one of its children.
type TrieEdge struct {
	Char  string
	Child *TrieNode
}

// TrieNode holds its outgoing edges in insertion order.
type TrieNode struct {
	Children []TrieEdge
}

// Child returns the child reached through char, or nil.
func (n *TrieNode) Child(char string) *TrieNode {
	if n == nil {
		return nil
	}
	for _, e := range n.Children {
		if e.Char == char {
			return e.Child
		}
	}
	return nil
}

// Trie holds an unlabeled root node.
type Trie struct {
	Root *TrieNode
}

// Insert adds word one rune per level, reusing existing prefixes.
func (t *Trie) Insert(word string) {
	if t.Root == nil {
		t.Root = &TrieNode{}
	}
	node := t.Root
	for _, r := range word {
		char := string(r)
		next := node.Child(char)
		if next == nil {
			next = &TrieNode{}
			node.Children = append(node.Children, TrieEdge{Char: char, Child: next})
		}
		node = next
	}
}

// Render prints every edge character at 2*depth spaces followed by its subtree.
// The root itself is never printed.
func (t Trie) Render(opts Options) string {
	var b strings.Builder
	writeTrie(&b, t.Root, 0, opts)
	return b.String()
}

func (t Trie) String() string { return t.Render(Options{}) }

func writeTrie(b *strings.Builder, n *TrieNode, depth int, opts Options) {
	if n == nil || !opts.allows(depth) {
		return
	}
	for _, e := range n.Children {
		writeIndented(b, trieIndent*depth, e.Char)
		writeTrie(b, e.Child, depth+1, opts)
	}
}

// TernaryNode is a ternary search tree node. Nil children are absent.
type TernaryNode struct {
	Val                 any
	Left, Middle, Right *TernaryNode
}

// TernaryTree holds the root of a ternary search tree.
type TernaryTree struct {
	Root *TernaryNode
}

// Render prints right, the node at 2*depth spaces, middle, then left.
func (t TernaryTree) Render(opts Options) string {
	var b strings.Builder
	writeTernary(&b, t.Root, 0, opts)
	return b.String()
}

func (t TernaryTree) String() string { return t.Render(Options{}) }

func writeTernary(b *strings.Builder, n *TernaryNode, depth int, opts Options) {
	if n == nil || !opts.allows(depth) {
		return
	}
	writeTernary(b, n.Right, depth+1, opts)
	writeIndented(b, ternaryIndent*depth, "["+FormatValue(n.Val)+"]")
	writeTernary(b, n.Middle, depth+1, opts)
	writeTernary(b, n.Left, depth+1, opts)
}
