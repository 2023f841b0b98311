// Package tree renders the recursion of the solver as a Graphviz diagram.
//
// Every call of the recursive solver becomes a box labelled with its disk
// count and pegs. Its children, left to right, are the call that clears the
// smaller disks out of the way, the move the call emits, and the call that
// stacks the smaller disks back on top. Reading the move leaves left to right
// yields the solution in order.
//
//	root := hanoi.CallTree(3, hanoi.Source, hanoi.Destination, hanoi.Auxiliary)
//	dot := tree.ToDOT(root, tree.Options{})
//	svg, err := tree.RenderSVG(ctx, dot)
package tree
