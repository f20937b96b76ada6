// Package pkg provides the core libraries for asciiviz data structure visualization.
//
// # Overview
//
// asciiviz turns in-memory data structures into plain text: arrays and lists
// become arrow chains, trees are printed rotated 90 degrees with the right
// subtree on top, and mappings become one line per key. The pkg directory is
// organized into these areas:
//
//  1. [viz] - Shapes, renderers and the type-tag dispatcher
//  2. [viz/dot] - Graphviz DOT and SVG export for node-link shapes
//  3. [dataset] - YAML/JSON decoding and built-in samples
//  4. [config] - TOML user defaults
//  5. [errors] - Structured error codes and input validation
//
// # Architecture
//
// The typical data flow through asciiviz:
//
//	YAML/JSON file or Go value
//	         ↓
//	    [dataset] package (decode into a shape, keeping key order)
//	         ↓
//	    [viz] package (dispatch on type tag, render text)
//	         ↓
//	    plain text, or DOT/SVG via [viz/dot]
//
// # Quick Start
//
// Render a value directly:
//
//	import "github.com/matzehuels/asciiviz/pkg/viz"
//
//	out, err := viz.Render(viz.TypeHeap, []int{10, 5, 7, 1, 2, 3}, viz.Options{})
//
// Or decode a document first:
//
//	import "github.com/matzehuels/asciiviz/pkg/dataset"
//
//	shape, err := dataset.Load(viz.TypeBinaryTree, "tree.yaml")
//	out, err := viz.Render(viz.TypeBinaryTree, shape, viz.Options{MaxDepth: 8})
//
// # Main Packages
//
// [viz] - Twelve renderers (linkedList, array, binaryTree, graph, stack,
// queue, heap, hashTable, trie, dpMatrix, ternaryTree, disjointSet). Mappings
// are ordered slices so output follows insertion order. [viz.Printer] is the
// fire-and-forget entry point: it writes the text and logs unknown types
// instead of failing.
//
// [viz/dot] - DOT source for the node-link types, rendered to SVG with an
// embedded Graphviz.
//
// [dataset] - Decodes documents with gopkg.in/yaml.v3 node trees, so JSON
// and YAML mapping keys keep their order.
//
// [config] - Reads $XDG_CONFIG_HOME/asciiviz/config.toml.
//
// [errors] - Error codes shared by every package and the CLI.
//
// [viz]: https://pkg.go.dev/github.com/matzehuels/asciiviz/pkg/viz
// [viz/dot]: https://pkg.go.dev/github.com/matzehuels/asciiviz/pkg/viz/dot
// [dataset]: https://pkg.go.dev/github.com/matzehuels/asciiviz/pkg/dataset
// [config]: https://pkg.go.dev/github.com/matzehuels/asciiviz/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/asciiviz/pkg/errors
package pkg
