package populate

import (
	"reflect"

	"fixture-generator/internal/diagnostic"
)

// sequence fills a slice with n elements, or every slot of an array. Elements whose type is under
// construction or abstract are not generated: slices stay empty, arrays stay zero.
func (s *session) sequence(t reflect.Type, path diagnostic.FieldPath, n int) (reflect.Value, error) {
	elem := t.Elem()

	out := reflect.New(t).Elem()
	if t.Kind() == reflect.Slice {
		out = reflect.MakeSlice(t, 0, 0)
	}

	if !s.generable(elem, path) {
		return out, nil
	}

	if t.Kind() == reflect.Slice {
		out = reflect.MakeSlice(t, n, n)
	}

	for i := range out.Len() {
		v, err := s.fill(elem, path.Elem(), true)
		if err != nil {
			return reflect.Value{}, err
		}

		if v.IsValid() {
			out.Index(i).Set(v)
		}
	}

	return out, nil
}

// generable reports whether elements of type t can be produced on the current path.
func (s *session) generable(t reflect.Type, path diagnostic.FieldPath) bool {
	if s.guard.Cyclic(t) {
		s.note(diagnostic.CodeCycleCut, "element type is already under construction", base(t), path)
		return false
	}

	if base(t).Kind() == reflect.Interface {
		s.warn(diagnostic.CodeAbstractElem, "interface elements cannot be constructed", base(t), path)
		return false
	}

	return true
}

// collection builds channels, iter.Seq and iter.Seq2 sequences, and registered collection types
// from a staging slice of n elements.
func (s *session) collection(t reflect.Type, path diagnostic.FieldPath, n int) (reflect.Value, error) {
	if f, ok := lookupCollection(t); ok {
		staged, err := s.sequence(reflect.SliceOf(f.elem), path, n)
		if err != nil {
			return reflect.Value{}, err
		}

		return f.build.Call([]reflect.Value{staged})[0], nil
	}

	switch t.Kind() {
	case reflect.Chan:
		return s.channel(t, path, n)
	case reflect.Func:
		return s.seq(t, path, n)
	default:
		s.warn(diagnostic.CodeUnsupported, "unknown collection shape", t, path)
		return reflect.Value{}, nil
	}
}

// channel returns a buffered channel holding n elements, closed so that ranging over it ends.
func (s *session) channel(t reflect.Type, path diagnostic.FieldPath, n int) (reflect.Value, error) {
	if t.ChanDir() == reflect.SendDir {
		s.warn(diagnostic.CodeUnsupported, "send-only channels are left at zero", t, path)
		return reflect.Value{}, nil
	}

	staged, err := s.sequence(reflect.SliceOf(t.Elem()), path, n)
	if err != nil {
		return reflect.Value{}, err
	}

	ch := reflect.MakeChan(reflect.ChanOf(reflect.BothDir, t.Elem()), staged.Len())
	for i := range staged.Len() {
		ch.Send(staged.Index(i))
	}
	ch.Close()

	return ch.Convert(t), nil
}

// seq returns a function of type t (iter.Seq or iter.Seq2 shaped) yielding n staged elements.
// Every call replays the same elements.
func (s *session) seq(t reflect.Type, path diagnostic.FieldPath, n int) (reflect.Value, error) {
	yield := t.In(0)

	staged := make([]reflect.Value, yield.NumIn())
	for i := range staged {
		var err error
		staged[i], err = s.sequence(reflect.SliceOf(yield.In(i)), path, n)
		if err != nil {
			return reflect.Value{}, err
		}
	}

	// a pair sequence yields only as many pairs as its shorter side
	length := n
	for _, st := range staged {
		length = min(length, st.Len())
	}

	return reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		call := make([]reflect.Value, len(staged))
		for i := range length {
			for j, st := range staged {
				call[j] = st.Index(i)
			}

			if !args[0].Call(call)[0].Bool() {
				break
			}
		}

		return nil
	}), nil
}
