package rop_test

import (
	"errors"
	"fmt"

	"github.com/ib-77/ropresult/pkg/rop"
)

func divide(x, y int) rop.Result[int, string] {
	if y == 0 {
		return rop.Fail[int]("cannot divide by zero")
	}
	return rop.Success[int, string](x / y)
}

func Example() {
	fmt.Println(divide(1, 0).UnwrapOr(-1))
	fmt.Println(divide(10, 2).Unwrap())
	fmt.Println(divide(10, 0))
	// Output:
	// -1
	// 5
	// Failure(cannot divide by zero)
}

func ExampleAndThen() {
	half := func(v int) rop.Result[int, string] { return divide(v, 2) }

	fmt.Println(rop.AndThen(divide(100, 5), half))
	fmt.Println(rop.AndThen(divide(100, 0), half))
	// Output:
	// Success(10)
	// Failure(cannot divide by zero)
}

func ExampleCatch() {
	err := rop.Catch(func() {
		divide(1, 0).Unwrap()
	})

	fmt.Println(errors.Is(err, rop.ErrIllegalCall))
	fmt.Println(err)
	// Output:
	// true
	// cannot call Unwrap on a Result of type Failure
}
