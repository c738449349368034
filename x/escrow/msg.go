package escrow

import (
	"encoding/json"

	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/asset"
	"github.com/lockbox-labs/lockbox/errors"
)

const (
	pathCreateEscrow  = "escrow/create"
	pathTopUpEscrow   = "escrow/topup"
	pathApproveEscrow = "escrow/approve"
	pathRefundEscrow  = "escrow/refund"
)

var _ lockbox.Msg = (*CreateMsg)(nil)
var _ lockbox.Msg = (*TopUpMsg)(nil)
var _ lockbox.Msg = (*ApproveMsg)(nil)
var _ lockbox.Msg = (*RefundMsg)(nil)

// CreateMsg opens a new escrow under a caller chosen id. The attached funds
// become the initial balance and the caller is recorded as the source.
type CreateMsg struct {
	EscrowID  string           `json:"id"`
	Arbiter   lockbox.Address  `json:"arbiter"`
	Recipient lockbox.Address  `json:"recipient"`
	EndHeight int64            `json:"end_height,omitempty"`
	EndTime   lockbox.UnixTime `json:"end_time,omitempty"`
	Funds     asset.Balance    `json:"funds"`
}

// TopUpMsg adds the attached funds to an existing escrow. Anyone may top up
// any open escrow.
type TopUpMsg struct {
	EscrowID string        `json:"id"`
	Funds    asset.Balance `json:"funds"`
}

// ApproveMsg releases the full balance of the escrow to the recipient.
// Only the arbiter may approve, and only before expiry.
type ApproveMsg struct {
	EscrowID string `json:"id"`
}

// RefundMsg closes the escrow and pays out its balance. Only the arbiter
// may refund, expiry does not apply.
type RefundMsg struct {
	EscrowID string `json:"id"`
}

// ROUTING, Path method fulfills lockbox.Msg interface to allow routing

func (CreateMsg) Path() string {
	return pathCreateEscrow
}

func (TopUpMsg) Path() string {
	return pathTopUpEscrow
}

func (ApproveMsg) Path() string {
	return pathApproveEscrow
}

func (RefundMsg) Path() string {
	return pathRefundEscrow
}

// PERSISTENCE, all messages are stored in their JSON serialized form

func (m *CreateMsg) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *CreateMsg) Unmarshal(b []byte) error { return json.Unmarshal(b, m) }

func (m *TopUpMsg) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *TopUpMsg) Unmarshal(b []byte) error { return json.Unmarshal(b, m) }

func (m *ApproveMsg) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *ApproveMsg) Unmarshal(b []byte) error { return json.Unmarshal(b, m) }

func (m *RefundMsg) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *RefundMsg) Unmarshal(b []byte) error { return json.Unmarshal(b, m) }

// VALIDATION, Validate makes sure basic rules are enforced upon input data

func (m *CreateMsg) Validate() error {
	if err := validateEscrowID(m.EscrowID); err != nil {
		return err
	}
	if err := m.Arbiter.Validate(); err != nil {
		return errors.Wrap(err, "arbiter")
	}
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.EndHeight < 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "negative end height: %d", m.EndHeight)
	}
	if err := m.EndTime.Validate(); err != nil {
		return errors.Wrap(err, "end time")
	}
	return validateFunds(m.Funds)
}

func (m *TopUpMsg) Validate() error {
	if err := validateEscrowID(m.EscrowID); err != nil {
		return err
	}
	return validateFunds(m.Funds)
}

func (m *ApproveMsg) Validate() error {
	return validateEscrowID(m.EscrowID)
}

func (m *RefundMsg) Validate() error {
	return validateEscrowID(m.EscrowID)
}

func validateEscrowID(id string) error {
	if id == "" {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if len(id) > maxIDSize {
		return errors.Wrapf(errors.ErrInvalidInput, "escrow id too long: %d", len(id))
	}
	return nil
}

// validateFunds makes sure the attached balance carries value and is of
// valid format. Attaching no assets is rejected up front.
func validateFunds(funds asset.Balance) error {
	if funds.IsEmpty() {
		return errors.Wrap(ErrZeroBalance, "funds")
	}
	return errors.Wrap(funds.Validate(), "funds")
}
