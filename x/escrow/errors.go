package escrow

import "github.com/lockbox-labs/lockbox/errors"

// Reserved codes 1010-1019 for the escrow extension.
var (
	// ErrZeroBalance is returned when funding an escrow with no assets.
	ErrZeroBalance = errors.Register(1010, "zero balance")
)
