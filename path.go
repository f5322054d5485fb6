package llfschema

import (
	"strconv"
	"strings"
)

// Step is one element of a Path: a field name or a sequence index.
type Step struct {
	Name  string
	Index int
	IsIdx bool
}

// Path locates a value from the document root. It is used only for
// diagnostics.
type Path []Step

// Field returns a copy of p extended with a field step.
func (p Path) Field(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Step{Name: name})
}

// Index returns a copy of p extended with an index step.
func (p Path) Index(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Step{Index: i, IsIdx: true})
}

// Join returns p followed by rel.
func (p Path) Join(rel Path) Path {
	out := make(Path, 0, len(p)+len(rel))
	out = append(out, p...)
	return append(out, rel...)
}

// Pointer renders p as an RFC 6901 JSON Pointer ("/" for the root).
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.IsIdx {
			b.WriteString(strconv.Itoa(s.Index))
			continue
		}
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.Name, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }

// ParsePointer converts a JSON Pointer back into a Path. Numeric segments
// become index steps.
func ParsePointer(ptr string) Path {
	if ptr == "" || ptr == "/" {
		return nil
	}
	var p Path
	for _, seg := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		if i, err := strconv.Atoi(seg); err == nil && i >= 0 {
			p = append(p, Step{Index: i, IsIdx: true})
			continue
		}
		p = append(p, Step{Name: strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")})
	}
	return p
}
