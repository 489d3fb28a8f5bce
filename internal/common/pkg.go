package common

import (
	"path"
	"reflect"
)

const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// TypeName returns "alias.Name" for named types and the reflect spelling for everything else.
func TypeName(t reflect.Type) string {
	if t == nil {
		return UnknownStr
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return PkgAlias(t.PkgPath()) + "." + t.Name()
}
