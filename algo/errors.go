package algo

import "errors"

// ErrOptionUnknown indicates a builder received an implementation selector
// it does not recognize (spec.md Design Notes §9).
var ErrOptionUnknown = errors.New("algo: unknown option")
