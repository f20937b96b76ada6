// Package dataset decodes visualization input from YAML or JSON documents and
// provides the built-in sample structures.
//
// Go maps are unordered, so documents are decoded through [yaml.Node] trees:
// mapping keys keep the order in which they appear in the file, which is the
// order the graph, hash table, trie and disjoint set renderers print them in.
// JSON is a subset of YAML and is read by the same decoder.
//
// # Document Shapes
//
//	linkedList   [1, 2, 3]  or  {head: {val: 1, next: {val: 2}}}
//	array        [5, 3, 8]            (also stack, queue, heap)
//	binaryTree   {root: {val: 5, left: {val: 3}, right: {val: 8}}}
//	ternaryTree  {root: {val: g, left: ..., middle: ..., right: ...}}
//	graph        {A: [B, C], B: [D]}
//	hashTable    {0: {key: k1, value: v1}, 1: null}
//	trie         {root: {children: {a: {children: {}}}}}
//	dpMatrix     [[0, 0], [0, 1]]
//	disjointSet  {parents: {1: 2, 2: 2}}
//
// The root/head/parents wrappers are optional.
//
// [yaml.Node]: https://pkg.go.dev/gopkg.in/yaml.v3#Node
package dataset
