// Package payout defines the outbound transfer instructions that handlers
// emit for the host environment to execute. A released balance becomes at
// most one native send followed by one token contract call per held token,
// in the order the entries were first deposited.
package payout

import (
	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/asset"
	"github.com/lockbox-labs/lockbox/errors"
)

// NativeSend instructs the host to move native coins from the engine to the
// recipient.
type NativeSend struct {
	Recipient lockbox.Address `json:"recipient"`
	Amounts   []asset.Coin    `json:"amounts"`
}

var _ lockbox.Instruction = NativeSend{}

// Validate ensures the send has a destination and at least one coin.
func (s NativeSend) Validate() error {
	if err := s.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if len(s.Amounts) == 0 {
		return errors.Wrap(errors.ErrEmpty, "amounts")
	}
	for _, c := range s.Amounts {
		if err := c.Validate(); err != nil {
			return errors.Wrap(err, "amounts")
		}
	}
	return nil
}

// TokenCall instructs the host to invoke a transfer on an external token
// contract, moving the amount from the engine to the recipient.
type TokenCall struct {
	Contract  string          `json:"contract"`
	Recipient lockbox.Address `json:"recipient"`
	Amount    int64           `json:"amount"`
}

var _ lockbox.Instruction = TokenCall{}

// Validate ensures the call targets a contract and moves a positive amount.
func (c TokenCall) Validate() error {
	if c.Contract == "" {
		return errors.Wrap(errors.ErrEmpty, "contract")
	}
	if err := c.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if c.Amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "%s amount: %d", c.Contract, c.Amount)
	}
	return nil
}

// SendBalance converts a balance into the ordered instructions that pay it
// out to the recipient. Native coins come first as a single send, then one
// contract call per token, both in deposit order. An empty balance produces
// no instructions.
func SendBalance(rcpt lockbox.Address, balance asset.Balance) []lockbox.Instruction {
	var out []lockbox.Instruction
	if len(balance.Native) > 0 {
		out = append(out, NativeSend{
			Recipient: rcpt,
			Amounts:   balance.Native,
		})
	}
	for _, tok := range balance.Tokens {
		out = append(out, TokenCall{
			Contract:  tok.Contract,
			Recipient: rcpt,
			Amount:    tok.Amount,
		})
	}
	return out
}
