package asset

import (
	"fmt"

	"github.com/lockbox-labs/lockbox/errors"
)

// MaxTokenIDLength bounds the size of a token contract identifier.
const MaxTokenIDLength = 128

// Token is a non-negative amount of an asset tracked by an external token
// contract, identified by the contract identifier. Tokens are moved via a
// transfer instruction issued to that contract, never by a native ledger
// update.
type Token struct {
	Contract string `json:"contract"`
	Amount   int64  `json:"amount"`
}

// NewToken creates a new external token amount.
func NewToken(contract string, amount int64) Token {
	return Token{
		Contract: contract,
		Amount:   amount,
	}
}

// ID returns the merge key of this token.
func (t Token) ID() string {
	return t.Contract
}

// IsZero returns true if the amount is 0.
func (t Token) IsZero() bool {
	return t.Amount == 0
}

// Add combines two amounts of the same token contract with overflow checked
// arithmetic.
func (t Token) Add(o Token) (Token, error) {
	if t.Contract != o.Contract {
		return Token{}, errors.Wrapf(errors.ErrInvalidInput, "adding %s to %s", o.Contract, t.Contract)
	}
	sum, err := addChecked(t.Amount, o.Amount)
	if err != nil {
		return Token{}, errors.Wrapf(err, "%s amount", t.Contract)
	}
	t.Amount = sum
	return t, nil
}

// Equals returns true if all fields are identical.
func (t Token) Equals(o Token) bool {
	return t.Contract == o.Contract && t.Amount == o.Amount
}

// Validate ensures the token has a contract identifier and a positive
// amount. Zero amounts are not valid as they carry no value.
func (t Token) Validate() error {
	if t.Contract == "" {
		return errors.Wrap(errors.ErrEmpty, "token contract")
	}
	if len(t.Contract) > MaxTokenIDLength {
		return errors.Wrapf(errors.ErrInvalidInput, "token contract too long: %d", len(t.Contract))
	}
	if t.Amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "%s amount: %d", t.Contract, t.Amount)
	}
	return nil
}

// String provides a human readable representation of the token amount.
func (t Token) String() string {
	return fmt.Sprintf("%d %s", t.Amount, t.Contract)
}

// Balance is a mixed bag of native currency amounts and external token
// amounts. Both collections are keyed: native by denomination, external by
// token contract identifier, with no duplicate entries. Entries keep their
// insertion order, which is also the order outbound transfers are emitted
// in. A Balance only ever grows until the owning record is destroyed
// wholesale, so there is no removal operation.
type Balance struct {
	Native []Coin  `json:"native,omitempty"`
	Tokens []Token `json:"tokens,omitempty"`
}

// NewBalance creates a balance out of the given entries.
func NewBalance(native []Coin, tokens []Token) Balance {
	return Balance{
		Native: native,
		Tokens: tokens,
	}
}

// IsEmpty returns true iff both collections hold no entries.
func (b Balance) IsEmpty() bool {
	return len(b.Native) == 0 && len(b.Tokens) == 0
}

// Clone returns a copy that can be safely modified.
func (b Balance) Clone() Balance {
	var cpy Balance
	if b.Native != nil {
		cpy.Native = make([]Coin, len(b.Native))
		copy(cpy.Native, b.Native)
	}
	if b.Tokens != nil {
		cpy.Tokens = make([]Token, len(b.Tokens))
		copy(cpy.Tokens, b.Tokens)
	}
	return cpy
}

// Add increases the native holdings by the given coin. An existing entry
// with the same denomination is summed in place, otherwise the coin is
// appended at the end.
func (b *Balance) Add(c Coin) error {
	if c.IsZero() {
		return nil
	}
	for i, have := range b.Native {
		if have.Denom != c.Denom {
			continue
		}
		sum, err := have.Add(c)
		if err != nil {
			return err
		}
		b.Native[i] = sum
		return nil
	}
	b.Native = append(b.Native, c)
	return nil
}

// AddToken increases the external token holdings by the given amount. An
// existing entry with the same contract identifier is summed in place,
// otherwise the token is appended at the end.
func (b *Balance) AddToken(t Token) error {
	if t.IsZero() {
		return nil
	}
	for i, have := range b.Tokens {
		if have.Contract != t.Contract {
			continue
		}
		sum, err := have.Add(t)
		if err != nil {
			return err
		}
		b.Tokens[i] = sum
		return nil
	}
	b.Tokens = append(b.Tokens, t)
	return nil
}

// Merge folds all entries of the other balance into this one, summing
// amounts per matching key and appending the rest. Per key the operation
// is commutative and associative. Addition is overflow checked; on error
// the receiver may be partially updated and must be discarded.
func (b *Balance) Merge(o Balance) error {
	for _, c := range o.Native {
		if err := b.Add(c); err != nil {
			return err
		}
	}
	for _, t := range o.Tokens {
		if err := b.AddToken(t); err != nil {
			return err
		}
	}
	return nil
}

// Equals returns true if both balances contain the same entries in the
// same order.
func (b Balance) Equals(o Balance) bool {
	if len(b.Native) != len(o.Native) || len(b.Tokens) != len(o.Tokens) {
		return false
	}
	for i := range b.Native {
		if !b.Native[i].Equals(o.Native[i]) {
			return false
		}
	}
	for i := range b.Tokens {
		if !b.Tokens[i].Equals(o.Tokens[i]) {
			return false
		}
	}
	return true
}

// Validate requires that every entry is valid in its own right and that no
// denomination or token contract appears twice.
func (b Balance) Validate() error {
	seenDenoms := make(map[string]struct{}, len(b.Native))
	for _, c := range b.Native {
		if err := c.Validate(); err != nil {
			return errors.Wrap(err, "native")
		}
		if _, ok := seenDenoms[c.Denom]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "denomination %s", c.Denom)
		}
		seenDenoms[c.Denom] = struct{}{}
	}
	seenTokens := make(map[string]struct{}, len(b.Tokens))
	for _, t := range b.Tokens {
		if err := t.Validate(); err != nil {
			return errors.Wrap(err, "tokens")
		}
		if _, ok := seenTokens[t.Contract]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "token contract %s", t.Contract)
		}
		seenTokens[t.Contract] = struct{}{}
	}
	return nil
}

// String provides a human readable representation of the balance.
func (b Balance) String() string {
	if b.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("native=%v tokens=%v", b.Native, b.Tokens)
}
