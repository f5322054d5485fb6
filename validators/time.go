package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/metno/llfschema"
)

// Time pattern tokens. Anything else in a pattern is matched literally.
//
//	YYYY four-digit year    YY two-digit year
//	MM   month              DD day
//	HH   hour (00-23)       mm minute
//	ss   second             SSS milliseconds
//	Z    zone designator ("Z" or ±hh:mm)
const (
	PatternHour      = "HH"
	PatternShortDate = "YYMMDD"
	PatternISO       = "YYYY-MM-DDTHH:mm:ss.SSSZ"
)

var patternTokens = []struct {
	token, layout string
	digits        int
}{
	{"YYYY", "2006", 4},
	{"SSS", "000", 3},
	{"YY", "06", 2},
	{"MM", "01", 2},
	{"DD", "02", 2},
	{"HH", "15", 2},
	{"mm", "04", 2},
	{"ss", "05", 2},
	{"Z", "Z07:00", 0},
}

// segment is one element of a compiled pattern: a run of digits, a zone
// designator or a literal byte.
type segment struct {
	digits int
	zone   bool
	lit    byte
}

func compile(pattern string) (string, []segment, error) {
	b := &strings.Builder{}
	var segs []segment
	rest := pattern
next:
	for rest != "" {
		for _, tk := range patternTokens {
			if strings.HasPrefix(rest, tk.token) {
				b.WriteString(tk.layout)
				segs = append(segs, segment{digits: tk.digits, zone: tk.digits == 0})
				rest = rest[len(tk.token):]
				continue next
			}
		}
		c := rest[0]
		if c >= '0' && c <= '9' {
			return "", nil, fmt.Errorf("validators: digit %q in time pattern %q", c, pattern)
		}
		b.WriteByte(c)
		segs = append(segs, segment{lit: c})
		rest = rest[1:]
	}
	return b.String(), segs, nil
}

// Layout translates a pattern into a Go time layout.
func Layout(pattern string) (string, error) {
	layout, _, err := compile(pattern)
	return layout, err
}

// ParseTime parses s against pattern and returns the time in UTC. Numeric
// fields must be zero-padded to their full width.
func ParseTime(pattern, s string) (time.Time, error) {
	layout, segs, err := compile(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return parseLayout(layout, segs, pattern, s)
}

// fixedWidth reports whether s has exactly the digit counts and literals of
// segs. time.Parse alone accepts "6" for an "HH" field.
func fixedWidth(segs []segment, s string) bool {
	i := 0
	for _, sg := range segs {
		switch {
		case sg.zone:
			if i < len(s) && s[i] == 'Z' {
				i++
			} else {
				i += len("+07:00")
			}
		case sg.digits > 0:
			for j := 0; j < sg.digits; j++ {
				if i >= len(s) || s[i] < '0' || s[i] > '9' {
					return false
				}
				i++
			}
		default:
			if i >= len(s) || s[i] != sg.lit {
				return false
			}
			i++
		}
	}
	return i == len(s)
}

func parseLayout(layout string, segs []segment, pattern, s string) (time.Time, error) {
	if !fixedWidth(segs, s) {
		return time.Time{}, fmt.Errorf("%w %s: %q", ErrFormat, pattern, s)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %s: %q", ErrFormat, pattern, s)
	}
	return t.UTC(), nil
}

type timeValidator struct {
	pattern string
	layout  string
	segs    []segment
}

func newTimeValidator(pattern string) timeValidator {
	layout, segs, err := compile(pattern)
	if err != nil {
		panic(err)
	}
	return timeValidator{pattern: pattern, layout: layout, segs: segs}
}

func (tv timeValidator) parse(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: expected text, got %T", ErrWrongType, v)
	}
	return parseLayout(tv.layout, tv.segs, tv.pattern, s)
}

func (tv timeValidator) Validate(_ context.Context, v any) (any, error) { return tv.parse(v) }

// Time parses a string against pattern into a time.Time (UTC). It panics on
// an invalid pattern.
func Time(pattern string) llfschema.Custom {
	return llfschema.Custom{Name: "time(" + pattern + ")", Validator: newTimeValidator(pattern)}
}

// ISODate parses full timestamps such as "2015-01-01T06:00:00.000Z".
func ISODate() llfschema.Custom { return Time(PatternISO) }

type shortDate struct{ timeValidator }

func (sd shortDate) Validate(_ context.Context, v any) (any, error) {
	t, err := sd.parse(v)
	if err != nil {
		return nil, err
	}
	return t.AddDate(2000+t.Year()%100-t.Year(), 0, 0), nil
}

// ShortDate parses YYMMDD into a time.Time. Every two-digit year is taken to
// be in the 2000s.
func ShortDate() llfschema.Custom {
	return llfschema.Custom{Name: "shortdate", Validator: shortDate{newTimeValidator(PatternShortDate)}}
}

type hour struct{ timeValidator }

func (h hour) Validate(_ context.Context, v any) (any, error) {
	t, err := h.parse(v)
	if err != nil {
		return nil, err
	}
	return t.Hour(), nil
}

// Hour parses a two-digit hour and returns it as an int in 0..23.
func Hour() llfschema.Custom {
	return llfschema.Custom{Name: "hour", Validator: hour{newTimeValidator(PatternHour)}}
}
