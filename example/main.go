package main

import (
	"fmt"

	"github.com/aglyzov/patricia"
)

func main() {
	tr := patricia.NewTrie()
	tr.Set("foo", 1)
	tr.Set("baar", 2)
	tr.Set("baarhus", 3)
	tr.Set("bazar", 4)

	fmt.Printf("%v\n", tr)
	fmt.Printf("len    -> %v\n", tr.Len())
	fmt.Printf("keys   -> %v\n", tr.Keys())

	val, err := tr.Get("baar")
	fmt.Printf("get(baar)       -> %v, %v\n", val, err)

	_, err = tr.Get("ba")
	fmt.Printf("get(ba)         -> error: %v\n", err)

	fmt.Printf("isPrefix(ba)    -> %v\n", tr.IsPrefix("ba"))
	fmt.Printf("isPrefix(fools) -> %v\n", tr.IsPrefix("fools"))

	println("------")

	it := tr.IterPrefix("baar")
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%s = %v\n", item.Key, item.Val)
	}

	println("------")

	txt := "The fool baal baarhus in the bazar!"
	for i := 0; i < len(txt); i++ {
		m, err := tr.LongestMatch(txt, i, len(txt))
		if err != nil {
			continue
		}
		fmt.Printf("%2d: %-8s = %v\n", i, m.Key, m.Val)
	}

	println("------")

	matches := tr.Matches(txt, 14, len(txt))
	for {
		m, ok := matches.Next()
		if !ok {
			break
		}
		fmt.Printf("%s = %v\n", m.Key, m.Val)
	}
}
