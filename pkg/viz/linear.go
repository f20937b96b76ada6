package viz

import (
	"fmt"
	"strings"
)

// Array is an ordered sequence of values.
type Array []any

// Render prints "[v] -> [v] -> ...", prefixed by "label: " when opts.Label is set.
func (a Array) Render(opts Options) string {
	var b strings.Builder
	if opts.Label != "" {
		b.WriteString(opts.Label)
		b.WriteString(": ")
	}
	b.WriteString(bracketed(a, " -> "))
	b.WriteByte('\n')
	return b.String()
}

func (a Array) String() string { return a.Render(Options{}) }

// Stack is an ordered sequence whose top is the highest index.
type Stack []any

// Render prints one "| v |" line per element from top to bottom, then a footer.
func (s Stack) Render(Options) string {
	var b strings.Builder
	for i := len(s) - 1; i >= 0; i-- {
		b.WriteString("| ")
		b.WriteString(FormatValue(s[i]))
		b.WriteString(" |\n")
	}
	b.WriteString("-----\n")
	return b.String()
}

func (s Stack) String() string { return s.Render(Options{}) }

// Queue is an ordered sequence whose front is the lowest index.
type Queue []any

// Render prints "Front [v] -> [v] Back" on a single line.
func (q Queue) Render(Options) string {
	return "Front " + bracketed(q, " -> ") + " Back\n"
}

func (q Queue) String() string { return q.Render(Options{}) }

// ListNode is a singly linked list node.
type ListNode struct {
	Val  any
	Next *ListNode
}

// LinkedList holds the head of a chain of nodes. A nil Head is an empty list.
type LinkedList struct {
	Head *ListNode
}

// NewLinkedList builds a list holding values in order.
func NewLinkedList(values ...any) LinkedList {
	var l LinkedList
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add appends v at the tail.
func (l *LinkedList) Add(v any) {
	node := &ListNode{Val: v}
	if l.Head == nil {
		l.Head = node
		return
	}
	tail := l.Head
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = node
}

// Len returns the number of nodes reachable from Head.
func (l LinkedList) Len() int {
	n := 0
	for node := l.Head; node != nil; node = node.Next {
		n++
	}
	return n
}

// Render prints every node as "['IDX: i: v'] -> " and terminates with "null".
func (l LinkedList) Render(opts Options) string {
	var b strings.Builder
	for i, node := 0, l.Head; node != nil && opts.allows(i); i, node = i+1, node.Next {
		fmt.Fprintf(&b, "['IDX: %d: %s'] -> ", i, FormatValue(node.Val))
	}
	b.WriteString("null\n")
	return b.String()
}

func (l LinkedList) String() string { return l.Render(Options{}) }

// matrixCellWidth is the left-padded width of a DP matrix cell.
const matrixCellWidth = 3

// Matrix is a rectangular grid of numeric values, e.g. a DP table.
type Matrix [][]any

// Render prints one line per row with cells padded to three characters.
func (m Matrix) Render(Options) string {
	var b strings.Builder
	for _, row := range m {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprintf("%*s", matrixCellWidth, FormatValue(v))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Matrix) String() string { return m.Render(Options{}) }
