// Package dot exports node-link shaped visualizations as Graphviz DOT and SVG.
//
// Only types that have nodes and edges have a DOT form: linked lists, binary
// trees, heaps, graphs, tries, ternary trees and disjoint sets. Arrays,
// stacks, queues, hash tables and DP matrices return an
// [errors.ErrCodeUnsupported] error.
//
//	src, err := dot.ToDOT(viz.TypeBinaryTree, tree, viz.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// Tree edges are labeled by the branch they follow (L, M, R) so the rotated
// ASCII layout and the drawn diagram can be compared side by side.
//
// [errors.ErrCodeUnsupported]: github.com/matzehuels/asciiviz/pkg/errors
package dot
