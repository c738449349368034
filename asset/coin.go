package asset

import (
	"fmt"
	"regexp"

	"github.com/lockbox-labs/lockbox/errors"
)

// IsDenom is the RegExp to ensure valid native denomination names.
var IsDenom = regexp.MustCompile(`^[a-z]{3,10}$`).MatchString

// MaxAmount is the largest amount a single balance entry can hold.
const MaxAmount int64 = 1<<63 - 1

// Coin is a non-negative amount of a single native denomination.
type Coin struct {
	Denom  string `json:"denom"`
	Amount int64  `json:"amount"`
}

// NewCoin creates a new coin object.
func NewCoin(denom string, amount int64) Coin {
	return Coin{
		Denom:  denom,
		Amount: amount,
	}
}

// ID returns the merge key of this coin.
func (c Coin) ID() string {
	return c.Denom
}

// IsZero returns true if the amount is 0.
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// Add combines two coins of the same denomination. Addition is overflow
// checked; an overflowing result is a fatal ErrOverflow, never silently
// wrapped.
func (c Coin) Add(o Coin) (Coin, error) {
	if c.Denom != o.Denom {
		return Coin{}, errors.Wrapf(errors.ErrInvalidInput, "adding %s to %s", o.Denom, c.Denom)
	}
	sum, err := addChecked(c.Amount, o.Amount)
	if err != nil {
		return Coin{}, errors.Wrapf(err, "%s amount", c.Denom)
	}
	c.Amount = sum
	return c, nil
}

// Equals returns true if all fields are identical.
func (c Coin) Equals(o Coin) bool {
	return c.Denom == o.Denom && c.Amount == o.Amount
}

// Validate ensures the coin has a valid denomination and a positive amount.
// Zero amounts are not valid as they carry no value.
func (c Coin) Validate() error {
	if !IsDenom(c.Denom) {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid denomination: %s", c.Denom)
	}
	if c.Amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "%s amount: %d", c.Denom, c.Amount)
	}
	return nil
}

// String provides a human readable representation of the coin. This is
// meant mostly for testing and debugging.
func (c Coin) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Denom)
}

// addChecked adds two non-negative int64 values. If the result overflows
// the int64 range the ErrOverflow is returned.
func addChecked(a, b int64) (int64, error) {
	sum := a + b
	if sum < a {
		return 0, errors.ErrOverflow
	}
	return sum, nil
}
