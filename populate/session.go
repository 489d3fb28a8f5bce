package populate

import (
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"

	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
)

// session is the state of one population call: the cycle guard and what was decided along the way.
type session struct {
	g     *Generator
	guard ancestry
	diags diagnostic.Diagnostics
}

func (g *Generator) session() *session {
	return &session{g: g}
}

func (s *session) stringLength() int { return s.g.StringLength().Draw() }
func (s *session) count() int        { return s.g.CollectionCount().Draw() }

// note records an informational decision and logs it at Debug.
func (s *session) note(code, message string, t reflect.Type, path diagnostic.FieldPath) {
	s.diags.AddInfo(code, message, common.TypeName(t), path.String())

	s.g.log.WithFields(logrus.Fields{
		"code":  code,
		"type":  common.TypeName(t),
		"path":  path.String(),
		"depth": path.Depth(),
	}).Debug(message)
}

// warn records a shape the engine leaves at zero and logs it at Debug.
func (s *session) warn(code, message string, t reflect.Type, path diagnostic.FieldPath) {
	s.diags.AddWarning(code, message, common.TypeName(t), path.String())

	s.g.log.WithFields(logrus.Fields{
		"code":  code,
		"type":  common.TypeName(t),
		"path":  path.String(),
		"depth": path.Depth(),
	}).Debug(message)
}

// fail records err against path and returns it. Suggestions are kept apart from the message.
func (s *session) fail(code string, err error, t reflect.Type, path diagnostic.FieldPath, suggestions ...string) error {
	message := strings.TrimSuffix(err.Error(), didYouMean(suggestions))
	s.diags.AddError(code, message, common.TypeName(t), path.String(), suggestions...)

	return err
}

// done logs a summary of the call.
func (s *session) done(root reflect.Type, err error) {
	entry := s.g.log.WithFields(logrus.Fields{
		"type":       common.TypeName(root),
		"cycle_cuts": s.diags.Count(diagnostic.CodeCycleCut),
		"skipped":    s.diags.Count(diagnostic.CodeSkipped),
		"warnings":   len(s.diags.Warnings),
	})

	if s.diags.HasErrors() {
		entry.WithField("diagnostic", s.diags.Errors[0].String()).Debug("population failed")
		return
	}

	if err != nil {
		entry.WithError(err).Debug("population failed")
		return
	}

	entry.Debug("populated")
}

// fill produces a value of type t, which may be a pointer. An invalid result leaves the
// destination at its zero value. elem is set for collection elements, map entries and roots,
// where struct values are populated instead of left at zero.
func (s *session) fill(t reflect.Type, path diagnostic.FieldPath, elem bool) (reflect.Value, error) {
	depth, b := ptrDepthAndBase(t)

	// A collection registered as a pointer type is built at its own level.
	for level, cur := 0, t; level < depth; level, cur = level+1, cur.Elem() {
		if _, ok := lookupCollection(cur); !ok {
			continue
		}

		v, err := s.collection(cur, path, s.count())
		if err != nil || !v.IsValid() {
			return reflect.Value{}, err
		}

		return wrap(v, level, t), nil
	}

	var (
		v   reflect.Value
		err error
	)

	switch Dispatch(b) {
	case DispatcherPrimitive:
		v = s.primitive(b, path)
	case DispatcherEnumeration:
		v = s.enum(b, path)
	case DispatcherSlice:
		v, err = s.sequence(b, path, s.count())
	case DispatcherMap:
		v, err = s.mapping(b, path, s.count())
	case DispatcherCollection:
		v, err = s.collection(b, path, s.count())
	case DispatcherStruct:
		switch {
		case s.guard.Has(b):
			s.note(diagnostic.CodeCycleCut, "type is already under construction", b, path)
			return reflect.Value{}, nil
		case depth == 0 && !elem:
			s.note(diagnostic.CodeValueStruct, "struct value fields are left at zero", b, path)
			return reflect.Value{}, nil
		}

		v, err = s.object(b, path, nil)
	case DispatcherInterface:
		s.warn(diagnostic.CodeUnsupported, "interface fields are left at zero", b, path)
		return reflect.Value{}, nil
	default:
		s.warn(diagnostic.CodeUnsupported, b.Kind().String()+" fields are left at zero", b, path)
		return reflect.Value{}, nil
	}

	if err != nil || !v.IsValid() {
		return reflect.Value{}, err
	}

	return wrap(v, depth, t), nil
}
