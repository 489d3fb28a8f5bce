package populate

import "reflect"

// ancestry is the set of struct types under construction on the current recursion path.
// A type re-entering the set is where a cycle gets cut.
type ancestry struct {
	open map[reflect.Type]int
}

func (a *ancestry) Enter(t reflect.Type) {
	if a.open == nil {
		a.open = make(map[reflect.Type]int)
	}

	a.open[t]++
}

func (a *ancestry) Leave(t reflect.Type) {
	if a.open[t] <= 1 {
		delete(a.open, t)
		return
	}

	a.open[t]--
}

func (a *ancestry) Has(t reflect.Type) bool {
	_, ok := a.open[t]
	return ok
}

// Cyclic reports whether t, with pointers stripped, is a struct type already under construction.
func (a *ancestry) Cyclic(t reflect.Type) bool {
	b := base(t)

	return b.Kind() == reflect.Struct && a.Has(b)
}
