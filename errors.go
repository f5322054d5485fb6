package llfschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeExpectedMapping       = "expected_mapping"
	CodeExpectedSequence      = "expected_sequence"
	CodeTypeMismatch          = "type_mismatch"
	CodeLiteralMismatch       = "literal_mismatch"
	CodeMissingField          = "missing_field"
	CodeCustomFailed          = "custom_failed"
	CodeUnknownParameterGroup = "unknown_parameter_group"
	CodeUnknownKey            = "unknown_key"
	CodeTooDeep               = "too_deep"
	// Raised at the decoder boundary, never by the engine itself.
	CodeSourceUnreadable = "source_unreadable"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    Path   // Location from the document root.
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error, e.g. a custom validator's reason.
	// Params carries structured parameters (e.g. {"expected":"integer"}) for
	// i18n and diagnostics.
	Params map[string]any
}

// String renders "code at /path: message".
func (it Issue) String() string {
	if it.Message == "" {
		return fmt.Sprintf("%s at %s", it.Code, it.Path)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// First returns the first issue, or the zero Issue when empty.
func (iss Issues) First() Issue {
	if len(iss) == 0 {
		return Issue{}
	}
	return iss[0]
}

// Rebase prefixes every issue path with base.
func (iss Issues) Rebase(base Path) Issues {
	if len(base) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = base.Join(it.Path)
		out[i] = it
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// IssueAt creates a single-issue error at p.
func IssueAt(p Path, code, msg string, params map[string]any) Issues {
	return Issues{{Path: p, Code: code, Message: msg, Params: params}}
}
