// Package listmode resolves the presentation variant used for listing results.
// The listing setting names a mode; screens may let the user cycle through the
// others.
package listmode

import "github.com/goliatone/go-listing/pkg/coerce"

// Mode is a list presentation variant.
type Mode string

const (
	List  Mode = "list"
	Grid  Mode = "grid"
	Block Mode = "block"
)

var order = []Mode{List, Grid, Block}

// Modes returns the known modes in cycling order.
func Modes() []Mode {
	return append([]Mode(nil), order...)
}

// Resolve reads a configured list_mode value. Unknown or missing values give
// List.
func Resolve(v any) Mode {
	return coerce.Enum(v, order, List)
}

// Next returns the mode after m in the cycle list → grid → block → list.
func Next(m Mode) Mode {
	for i, mode := range order {
		if mode == m {
			return order[(i+1)%len(order)]
		}
	}
	return List
}

// Columns is the number of items laid out per row.
func (m Mode) Columns() int {
	if m == Grid {
		return 2
	}
	return 1
}
