package vec_test

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Iaggelis/vecor/vec"
)

func ExampleNew() {
	v := vec.New(1, 2, 3, 4, 5)
	fmt.Println(v.Len(), v)
	// Output: 5 { 1, 2, 3, 4, 5 }
}

func ExampleVec_Filter() {
	v := vec.Empty[int]()
	for _, n := range []int{0, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12} {
		v.PushBack(n)
	}

	evens := v.Filter(func(n int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: { 0, 4, 6, 8, 10, 12 }
}

func ExampleVec_AtOr() {
	v := vec.New(10, 20, 30)
	fmt.Println(v.AtOr(1, -1), v.AtOr(7, -1))

	_, err := v.At(7)
	fmt.Println(errors.Is(err, vec.ErrOutOfRange))
	// Output:
	// 20 -1
	// true
}

func ExampleVec_Mask() {
	v := vec.New("a", "b", "c", "d")
	picked, _ := v.Mask(vec.Slice[bool]{true, false, true, false})
	fmt.Println(picked)

	_, err := v.Mask(vec.Slice[bool]{true})
	fmt.Println(err)
	// Output:
	// { a, c }
	// vec: length mismatch: mask has 1 entries, vector has 4
}

func ExampleVec_Gather() {
	v := vec.New(10, 20, 30)
	out, _ := v.Gather(vec.New(2, 2, 0))
	fmt.Println(out)
	// Output: { 30, 30, 10 }
}

func ExampleVec_Take() {
	v := vec.New(0, 1, 3, 4, 5)
	first, _ := v.Take(3)
	fmt.Println(first)

	_, err := v.Take(10)
	fmt.Println(err)
	// Output:
	// { 0, 1, 3 }
	// vec: position out of range: take 10 of 5
}

func ExampleVec_WriteTo() {
	_, _ = vec.New(7).WriteTo(os.Stdout)
	fmt.Println()
	_, _ = vec.Empty[int]().WriteTo(os.Stdout)
	fmt.Println()
	// Output:
	// { 7 }
	// {  }
}

func ExampleVec_Cursor() {
	v := vec.New(1, 2, 3, 4, 5, 6)
	for c := v.Cursor(0); c.Valid(); {
		n, _ := c.Get()
		if n%3 == 0 {
			c, _ = c.Erase()
			continue
		}
		c = c.Next()
	}
	fmt.Println(v)
	// Output: { 1, 2, 4, 5 }
}

func ExampleMap() {
	labels := vec.Map(vec.New(1, 2, 3), func(n int) string { return "#" + strconv.Itoa(n) })
	fmt.Println(labels)
	// Output: { #1, #2, #3 }
}

func ExampleMinIndex() {
	v := vec.New(5, 3, 9, 1)
	lo, _ := vec.Min(v)
	i, n, _ := vec.MinIndex(v)
	j, m, _ := vec.MaxIndex(v)
	fmt.Println(lo, i, n, j, m)
	// Output: 1 3 1 2 9
}

func ExampleSort() {
	fmt.Println(vec.Sort(vec.New(5, 3, 1, 4, 2)))
	// Output: { 1, 2, 3, 4, 5 }
}

func ExampleVec_SortFunc() {
	desc := vec.New(5, 3, 1, 4, 2).SortFunc(func(a, b int) bool { return a > b })
	fmt.Println(desc)
	// Output: { 5, 4, 3, 2, 1 }
}
