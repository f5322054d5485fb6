package llfschema

import "context"

// UnknownPolicy controls how keys that a Mapping does not declare are handled.
type UnknownPolicy int

const (
	UnknownIgnore UnknownPolicy = iota // Drop undeclared keys silently.
	UnknownStrict                      // Reject undeclared keys with an issue.
)

// DefaultMaxDepth bounds recursion when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// Options bundles validation options. The zero value fails fast, ignores
// unknown keys and uses DefaultMaxDepth.
type Options struct {
	CollectAll bool // Keep validating siblings after an issue and report all of them.
	Unknown    UnknownPolicy
	MaxDepth   int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

type contextKey int

const (
	_ctxKeyOptions contextKey = iota
	_ctxKeyDepth
)

// WithOptions returns a child context carrying opt. Validate installs its
// options this way so that nested Validate calls made by custom validators
// inherit them.
func WithOptions(ctx context.Context, opt Options) context.Context {
	return context.WithValue(ctx, _ctxKeyOptions, opt)
}

// OptionsFrom returns the options carried by ctx, or the zero Options.
func OptionsFrom(ctx context.Context) Options {
	opt, _ := ctx.Value(_ctxKeyOptions).(Options)
	return opt
}

// IsFailFast reports whether validation under ctx stops at the first issue.
func IsFailFast(ctx context.Context) bool { return !OptionsFrom(ctx).CollectAll }

func withDepth(ctx context.Context, depth int) context.Context {
	return context.WithValue(ctx, _ctxKeyDepth, depth)
}

func depthFrom(ctx context.Context) int {
	d, _ := ctx.Value(_ctxKeyDepth).(int)
	return d
}
