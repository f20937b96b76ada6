package viz

import (
	"reflect"

	"github.com/matzehuels/asciiviz/pkg/errors"
)

// Render selects the renderer for t and returns the visualization of data.
//
// An unrecognized t returns an [errors.ErrCodeUnknownType] error and no text.
// Data of the wrong Go type returns [errors.ErrCodeInvalidShape]. The content
// of well-typed data is not validated: cyclic lists and trees are the caller's
// responsibility unless opts.MaxDepth is set.
func Render(t Type, data any, opts Options) (string, error) {
	r, err := Resolve(t, data)
	if err != nil {
		return "", err
	}
	return r.Render(opts), nil
}

// Resolve converts data into the shape rendered for t.
//
// Besides the named shape and a pointer to it, these forms are accepted:
//   - sequence types (array, stack, queue, heap): any Go slice or array
//   - dpMatrix: any slice of slices
//   - linkedList, binaryTree, trie, ternaryTree: the root node pointer
//   - graph, hashTable, disjointSet: the unnamed entry slice
func Resolve(t Type, data any) (Renderer, error) {
	switch t {
	case TypeLinkedList:
		if head, ok := data.(*ListNode); ok {
			return LinkedList{Head: head}, nil
		}
		return shapeOf[LinkedList](t, data)
	case TypeArray:
		values, err := sequence(t, data)
		if err != nil {
			return nil, err
		}
		return Array(values), nil
	case TypeBinaryTree:
		if root, ok := data.(*TreeNode); ok {
			return BinaryTree{Root: root}, nil
		}
		return shapeOf[BinaryTree](t, data)
	case TypeGraph:
		if adj, ok := data.([]Adjacency); ok {
			return Graph(adj), nil
		}
		return shapeOf[Graph](t, data)
	case TypeStack:
		values, err := sequence(t, data)
		if err != nil {
			return nil, err
		}
		return Stack(values), nil
	case TypeQueue:
		values, err := sequence(t, data)
		if err != nil {
			return nil, err
		}
		return Queue(values), nil
	case TypeHeap:
		values, err := sequence(t, data)
		if err != nil {
			return nil, err
		}
		return Heap(values), nil
	case TypeHashTable:
		if slots, ok := data.([]Slot); ok {
			return HashTable(slots), nil
		}
		return shapeOf[HashTable](t, data)
	case TypeTrie:
		if root, ok := data.(*TrieNode); ok {
			return Trie{Root: root}, nil
		}
		return shapeOf[Trie](t, data)
	case TypeDPMatrix:
		return matrix(t, data)
	case TypeTernaryTree:
		if root, ok := data.(*TernaryNode); ok {
			return TernaryTree{Root: root}, nil
		}
		return shapeOf[TernaryTree](t, data)
	case TypeDisjointSet:
		if links, ok := data.([]Link); ok {
			return DisjointSet(links), nil
		}
		return shapeOf[DisjointSet](t, data)
	default:
		return nil, unknownType(t)
	}
}

func shapeOf[S Renderer](t Type, data any) (Renderer, error) {
	switch v := data.(type) {
	case S:
		return v, nil
	case *S:
		if v != nil {
			return *v, nil
		}
	}
	return nil, invalidShape(t, data)
}

// sequence flattens any slice or array into []any.
func sequence(t Type, data any) ([]any, error) {
	if values, ok := data.([]any); ok {
		return values, nil
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, invalidShape(t, data)
	}
	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return values, nil
}

func matrix(t Type, data any) (Renderer, error) {
	if m, ok := data.(Matrix); ok {
		return m, nil
	}
	rows, err := sequence(t, data)
	if err != nil {
		return nil, err
	}
	m := make(Matrix, len(rows))
	for i, row := range rows {
		cells, err := sequence(t, row)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "row %d", i)
		}
		m[i] = cells
	}
	return m, nil
}

func invalidShape(t Type, data any) error {
	return errors.New(errors.ErrCodeInvalidShape, "%s expects %s, got %T", t, t.Shape(), data)
}
