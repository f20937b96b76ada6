package viz_test

import (
	"fmt"

	"github.com/matzehuels/asciiviz/pkg/viz"
)

func ExampleRender() {
	text, err := viz.Render(viz.TypeArray, []int{5, 3, 8, 1, 2}, viz.Options{Label: "Initial Array"})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Print(text)
	// Output:
	// Initial Array: [5] -> [3] -> [8] -> [1] -> [2]
}

func ExampleRender_unknownType() {
	_, err := viz.Render("tree", nil, viz.Options{})
	fmt.Println(err)
	// Output:
	// UNKNOWN_TYPE: unknown visualization type "tree"
}

func ExampleBinaryTree() {
	tree := viz.BinaryTree{Root: &viz.TreeNode{
		Val:   5,
		Left:  &viz.TreeNode{Val: 3},
		Right: &viz.TreeNode{Val: 8, Right: &viz.TreeNode{Val: 9}},
	}}
	fmt.Print(tree)
	// Output:
	//         [9]
	//     [8]
	// [5]
	//     [3]
}

func ExampleHeap() {
	fmt.Print(viz.Heap{10, 5, 7, 1, 2, 3})
	// Output:
	//     [7]
	//         [3]
	// [10]
	//         [2]
	//     [5]
	//         [1]
}

func ExampleTrie_Insert() {
	var trie viz.Trie
	trie.Insert("cat")
	trie.Insert("car")
	fmt.Print(trie)
	// Output:
	// c
	//   a
	//     t
	//     r
}

func ExampleStack() {
	fmt.Print(viz.Stack{1, 2, 3})
	// Output:
	// | 3 |
	// | 2 |
	// | 1 |
	// -----
}
