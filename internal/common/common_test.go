package common_test

import (
	"fmt"
	"reflect"
	"time"

	"fixture-generator/internal/common"
)

type Sample struct{}

func ExampleTypeName() {
	fmt.Println(common.TypeName(reflect.TypeOf(Sample{})))
	fmt.Println(common.TypeName(reflect.TypeOf(time.Time{})))
	fmt.Println(common.TypeName(reflect.TypeOf([]int{})))
	fmt.Println(common.TypeName(nil))
	// Output:
	// common_test.Sample
	// time.Time
	// []int
	// unknown
}

func ExampleFirst() {
	v, ok := common.First([]string{"a", "b"})
	_, none := common.First([]int(nil))
	fmt.Println(v, ok, none, common.IsEmpty([]int(nil)))
	// Output:
	// a true false true
}
