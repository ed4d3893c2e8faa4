// Package calc implements the material quantity and cost calculations:
// area to purchasable units with a configurable reserve margin, room
// geometry derivation, an in-memory calculation history, and multi-material
// cost comparison.
package calc

import "errors"

// ErrInvalidArgument is returned for every validation failure: numeric
// bounds violated, unknown surface type, empty material list, or an invalid
// material. Wrap with fmt.Errorf("%w: ...") so callers can use errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
