package escrow

import (
	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/errors"
	"github.com/lockbox-labs/lockbox/x"
	"github.com/lockbox-labs/lockbox/x/payout"
)

const (
	// pay escrow cost up-front
	createEscrowCost  int64 = 300
	topUpEscrowCost   int64 = 100
	approveEscrowCost int64 = 0
	refundEscrowCost  int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r lockbox.Registry, auth x.Authenticator) {
	bucket := NewBucket()

	r.Handle(pathCreateEscrow, CreateEscrowHandler{auth, bucket})
	r.Handle(pathTopUpEscrow, TopUpEscrowHandler{auth, bucket})
	r.Handle(pathApproveEscrow, ApproveEscrowHandler{auth, bucket})
	r.Handle(pathRefundEscrow, RefundEscrowHandler{auth, bucket})
}

//---- create

// CreateEscrowHandler opens a new escrow
type CreateEscrowHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ lockbox.Handler = CreateEscrowHandler{}

// Check does the validation and sets the cost of the transaction
func (h CreateEscrowHandler) Check(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	res := &lockbox.CheckResult{
		GasAllocated: createEscrowCost,
	}
	return res, nil
}

// Deliver writes the new escrow if the id is still free. The attached funds
// are captured in the same step, there is no state where funds arrived but
// no record exists.
func (h CreateEscrowHandler) Deliver(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	escrow := &Escrow{
		Arbiter:   msg.Arbiter,
		Recipient: msg.Recipient,
		Source:    x.MainSigner(ctx, h.auth),
		EndHeight: msg.EndHeight,
		EndTime:   msg.EndTime,
		Balance:   msg.Funds.Clone(),
	}

	if err := h.bucket.Create(db, []byte(msg.EscrowID), escrow); err != nil {
		return nil, err
	}

	res := &lockbox.DeliverResult{
		Data: []byte(msg.EscrowID),
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
// Anyone may create an escrow, the caller becomes the source.
func (h CreateEscrowHandler) validate(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := lockbox.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "no signer")
	}

	return &msg, nil
}

//---- top up

// TopUpEscrowHandler grows the balance of an existing escrow.
type TopUpEscrowHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ lockbox.Handler = TopUpEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h TopUpEscrowHandler) Check(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	return &lockbox.CheckResult{GasAllocated: topUpEscrowCost}, nil
}

// Deliver merges the attached funds into the stored balance. Top up is
// permissionless and ignores expiry, the record exists until acted upon.
func (h TopUpEscrowHandler) Deliver(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := escrow.Balance.Merge(msg.Funds); err != nil {
		return nil, err
	}
	if err := h.bucket.Save(db, []byte(msg.EscrowID), escrow); err != nil {
		return nil, err
	}

	return &lockbox.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h TopUpEscrowHandler) validate(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*TopUpMsg, *Escrow, error) {
	var msg TopUpMsg
	if err := lockbox.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	escrow, err := loadEscrow(h.bucket, db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}

	return &msg, escrow, nil
}

//---- approve

// ApproveEscrowHandler releases the balance to the recipient.
type ApproveEscrowHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ lockbox.Handler = ApproveEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ApproveEscrowHandler) Check(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	return &lockbox.CheckResult{GasAllocated: approveEscrowCost}, nil
}

// Deliver removes the escrow and emits the transfer instructions paying
// the balance out to the recipient. Record deletion and instruction
// computation are one atomic step.
func (h ApproveEscrowHandler) Deliver(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.bucket.Delete(db, []byte(msg.EscrowID)); err != nil {
		return nil, err
	}

	return &lockbox.DeliverResult{
		Instructions: payout.SendBalance(escrow.Recipient, escrow.Balance),
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
// Authorization is checked strictly before expiry, a non arbiter always
// gets ErrUnauthorized regardless of the expiry state.
func (h ApproveEscrowHandler) validate(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*ApproveMsg, *Escrow, error) {
	var msg ApproveMsg
	if err := lockbox.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	escrow, err := loadEscrow(h.bucket, db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}

	if !h.auth.HasAddress(ctx, escrow.Arbiter) {
		return nil, nil, errors.ErrUnauthorized
	}
	if escrow.IsExpired(ctx) {
		return nil, nil, errors.Wrapf(errors.ErrExpired,
			"end_height=%d end_time=%d", escrow.EndHeight, escrow.EndTime)
	}

	return &msg, escrow, nil
}

//---- refund

// RefundEscrowHandler closes the escrow and pays out its balance. The
// payout targets the recipient, same as approve. The source address is
// never paid.
type RefundEscrowHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ lockbox.Handler = RefundEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h RefundEscrowHandler) Check(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	return &lockbox.CheckResult{GasAllocated: refundEscrowCost}, nil
}

// Deliver removes the escrow and emits the transfer instructions. Refund
// stays available to the arbiter past any deadline.
func (h RefundEscrowHandler) Deliver(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.bucket.Delete(db, []byte(msg.EscrowID)); err != nil {
		return nil, err
	}

	return &lockbox.DeliverResult{
		Instructions: payout.SendBalance(escrow.Recipient, escrow.Balance),
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h RefundEscrowHandler) validate(ctx lockbox.Context, db lockbox.KVStore, tx lockbox.Tx) (*RefundMsg, *Escrow, error) {
	var msg RefundMsg
	if err := lockbox.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	escrow, err := loadEscrow(h.bucket, db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}

	if !h.auth.HasAddress(ctx, escrow.Arbiter) {
		return nil, nil, errors.ErrUnauthorized
	}

	return &msg, escrow, nil
}

// loadEscrow loads an escrow and casts it, returns ErrNotFound if not present.
func loadEscrow(bucket Bucket, db lockbox.KVStore, escrowID string) (*Escrow, error) {
	escrow, err := bucket.GetEscrow(db, []byte(escrowID))
	if err != nil {
		return nil, err
	}
	if escrow == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "escrow %s", escrowID)
	}
	return escrow, nil
}
