// Package viz renders in-memory data structures as ASCII art.
//
// # Overview
//
// Twelve structure shapes are supported, each identified by a [Type] tag:
//
//   - Linear: [Array], [Stack], [Queue], [LinkedList], [Matrix]
//   - Tree-shaped: [BinaryTree], [Heap], [Trie], [TernaryTree]
//   - Mappings: [Graph], [HashTable], [DisjointSet]
//
// Every shape implements [Renderer]. Rendering is a pure function of the
// input and [Options]: the input is never mutated and two calls on the same
// value produce the same text.
//
// # Dispatch
//
// [Render] selects the renderer for a tag and returns the text, so callers
// can assert on it or print it themselves:
//
//	text, err := viz.Render(viz.TypeStack, []int{1, 2, 3}, viz.Options{})
//	// | 3 |
//	// | 2 |
//	// | 1 |
//	// -----
//
// [Printer] is the fire-and-forget variant. It writes the text to its sink
// and logs a diagnostic instead of failing when the tag is unknown:
//
//	p := viz.NewPrinter(os.Stdout, logger)
//	p.Visualize("array", []int{5, 3, 8}, viz.Options{Label: "Initial Array"})
//
// # Tree Layout
//
// Trees are printed rotated by 90 degrees: the root sits on the left margin,
// the right (greater) subtree is printed above a node and the left (lesser)
// subtree below it. Binary trees and heaps indent four spaces per level,
// tries and ternary trees two.
//
// # Cycles
//
// Renderers assume well-formed, acyclic input. A cyclic list or tree recurses
// without bound unless [Options.MaxDepth] is set.
package viz
