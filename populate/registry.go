package populate

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/samber/lo"

	"fixture-generator/primitive"
)

type collectionFactory struct {
	elem  reflect.Type
	build reflect.Value // func([]E) C
}

var registry = struct {
	sync.RWMutex
	enums       map[reflect.Type][]any
	collections map[reflect.Type]collectionFactory
}{
	enums:       make(map[reflect.Type][]any),
	collections: make(map[reflect.Type]collectionFactory),
}

// RegisterEnum declares the members of enumeration type E in declaration order. Fields of type E
// then receive a uniformly chosen member. Registering E again replaces its members.
func RegisterEnum[E comparable](members ...E) error {
	t := reflect.TypeFor[E]()
	if primitive.Underlying(t) == 0 {
		return fmt.Errorf("%w: enumeration %s must be a named basic type", ErrInvalidArgument, t)
	}

	if len(members) == 0 {
		return fmt.Errorf("%w: enumeration %s has no members", ErrInvalidArgument, t)
	}

	registry.Lock()
	defer registry.Unlock()
	registry.enums[t] = lo.ToAnySlice(lo.Uniq(members))

	return nil
}

// RegisterCollection teaches the engine to build collection type C (a stack, queue, set or any
// container) from a staging slice of its elements. C may be a pointer type such as *list.List;
// fields of that exact type then receive the constructor's result.
func RegisterCollection[C any, E any](build func([]E) C) error {
	t := reflect.TypeFor[C]()
	if build == nil {
		return fmt.Errorf("%w: nil constructor for collection %s", ErrInvalidArgument, t)
	}

	registry.Lock()
	defer registry.Unlock()
	registry.collections[t] = collectionFactory{elem: reflect.TypeFor[E](), build: reflect.ValueOf(build)}

	return nil
}

// EnumMembers returns the registered members of E, or nil.
func EnumMembers[E comparable]() []E {
	members, _ := lookupEnum(reflect.TypeFor[E]())

	out := make([]E, 0, len(members))
	for _, m := range members {
		out = append(out, m.(E))
	}

	return out
}

func lookupEnum(t reflect.Type) ([]any, bool) {
	registry.RLock()
	defer registry.RUnlock()

	members, ok := registry.enums[t]
	return members, ok
}

func lookupCollection(t reflect.Type) (collectionFactory, bool) {
	registry.RLock()
	defer registry.RUnlock()

	f, ok := registry.collections[t]
	return f, ok
}
