package diagnostic

import (
	"fmt"
	"strings"

	"fixture-generator/internal/common"
)

// Codes of the diagnostics the populate engine emits.
const (
	CodeCycleCut       = "cycle-cut"
	CodeValueStruct    = "value-struct"
	CodeUnsupported    = "unsupported"
	CodeSkipped        = "skipped"
	CodeBadOverride    = "bad-override"
	CodeUnknownTag     = "unknown-generator"
	CodeAbstractElem   = "abstract-element"
	CodeInvalidKeyType = "invalid-key"
)

// Diagnostics holds all diagnostic information from one population call.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code    string
	Message string
	// Type is the struct type being populated (if any).
	Type string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Suggestions are names the caller may have meant.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(severity DiagnosticSeverity, code, message, typ, fieldPath string, suggestions []string) {
	entry := Diagnostic{
		Severity:    severity,
		Code:        code,
		Message:     message,
		Type:        typ,
		FieldPath:   fieldPath,
		Suggestions: suggestions,
	}

	switch severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, entry)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, entry)
	default:
		d.Infos = append(d.Infos, entry)
	}
}

// AddError adds an error diagnostic with optional suggestions.
func (d *Diagnostics) AddError(code, message, typ, fieldPath string, suggestions ...string) {
	d.add(DiagnosticError, code, message, typ, fieldPath, suggestions)
}

func (d *Diagnostics) AddWarning(code, message, typ, fieldPath string) {
	d.add(DiagnosticWarning, code, message, typ, fieldPath, nil)
}

func (d *Diagnostics) AddInfo(code, message, typ, fieldPath string) {
	d.add(DiagnosticInfo, code, message, typ, fieldPath, nil)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Count returns how many diagnostics carry code.
func (d *Diagnostics) Count(code string) int {
	n := 0
	for _, e := range d.All() {
		if e.Code == code {
			n++
		}
	}

	return n
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
