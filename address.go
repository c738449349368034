package lockbox

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/lockbox-labs/lockbox/errors"
)

// MaxAddressLength is the longest address we accept. Addresses are opaque
// identifiers provided by the host environment, we only bound their size.
const MaxAddressLength = 64

// Address identifies a party of an escrow agreement. It is an opaque,
// host-provided identifier. The engine never derives or verifies addresses,
// it only compares them.
type Address []byte

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Validate returns an error if the address is not well formed. A nil
// address is not valid.
func (a Address) Validate() error {
	if len(a) == 0 {
		return errors.Wrap(errors.ErrEmpty, "address")
	}
	if len(a) > MaxAddressLength {
		return errors.Wrapf(errors.ErrInvalidInput, "address too long: %d bytes", len(a))
	}
	return nil
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON parses JSON in hex representation, to override the standard
// base64 []byte encoding.
func (a *Address) UnmarshalJSON(src []byte) error {
	var enc string
	if err := json.Unmarshal(src, &enc); err != nil {
		return err
	}
	if enc == "" {
		*a = nil
		return nil
	}
	raw, err := hex.DecodeString(enc)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, "address must be hex encoded")
	}
	*a = raw
	return nil
}

// String returns a human readable string. Currently hex.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// ParseAddress decodes a hex encoded address into its binary form.
func ParseAddress(enc string) (Address, error) {
	raw, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "address must be hex encoded")
	}
	addr := Address(raw)
	return addr, addr.Validate()
}
