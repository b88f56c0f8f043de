package bst_test

import (
	"fmt"

	"github.com/npillmayer/bst/order"
	"github.com/npillmayer/bst/persistent/bst"
)

func ExampleTree() {
	t1 := bst.Ordered[int]()
	for _, v := range []int{5, 3, 7, 1, 9} {
		t1 = t1.Insert(v)
	}
	t2 := t1.Delete(5)
	fmt.Println(t1.Lookup(5), t2.Lookup(5), t2.Lookup(7))
	fmt.Println(t1.Height(), t2.Height())
	// Output:
	// true false true
	// 3 3
}

func ExampleNew() {
	tree := bst.New(order.ByDistance())
	tree = tree.Insert(order.Point2{X: 3, Y: 4})
	// (5,0) has the same distance from the origin as (3,4)
	fmt.Println(tree.Lookup(order.Point2{X: 5, Y: 0}))
	fmt.Println(tree.Lookup(order.Point2{X: 1, Y: 1}))
	// Output:
	// true
	// false
}

func ExampleTree_Min() {
	tree := bst.Ordered[string]().Insert("dog").Insert("cat").Insert("elephant")
	fmt.Println(tree.Min().WithDefault("none"))
	fmt.Println(bst.Ordered[string]().Min().WithDefault("none"))
	// Output:
	// cat
	// none
}
