package escrow

import (
	"encoding/json"

	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/asset"
	"github.com/lockbox-labs/lockbox/errors"
	"github.com/lockbox-labs/lockbox/orm"
)

const (
	// BucketName is where we store the escrows
	BucketName = "esc"

	// maxIDSize bounds the caller chosen escrow identifier.
	maxIDSize = 128
)

// Escrow is the persisted agreement entity. Created with a non-empty
// balance, grown by top ups and destroyed wholesale by approve or refund.
type Escrow struct {
	// Arbiter is the only address that may approve or refund.
	Arbiter lockbox.Address `json:"arbiter"`
	// Recipient receives the balance when the escrow is released.
	Recipient lockbox.Address `json:"recipient"`
	// Source funded the escrow. Informational only, the payout always
	// targets the recipient.
	Source lockbox.Address `json:"source"`
	// EndHeight is an optional chain height deadline, zero means unset.
	EndHeight int64 `json:"end_height,omitempty"`
	// EndTime is an optional wall clock deadline, zero means unset.
	EndTime lockbox.UnixTime `json:"end_time,omitempty"`
	// Balance are the held assets.
	Balance asset.Balance `json:"balance"`
}

var _ orm.CloneableData = (*Escrow)(nil)

func (e *Escrow) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Escrow) Unmarshal(data []byte) error {
	return json.Unmarshal(data, e)
}

// Validate ensures the Escrow is valid
func (e *Escrow) Validate() error {
	if err := e.Arbiter.Validate(); err != nil {
		return errors.Wrap(err, "arbiter")
	}
	if err := e.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if err := e.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if e.EndHeight < 0 {
		return errors.Wrapf(errors.ErrInvalidState, "negative end height: %d", e.EndHeight)
	}
	if err := e.EndTime.Validate(); err != nil {
		return errors.Wrap(err, "end time")
	}
	if e.Balance.IsEmpty() {
		return errors.Wrap(ErrZeroBalance, "balance")
	}
	return errors.Wrap(e.Balance.Validate(), "balance")
}

// Copy makes a new escrow
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Arbiter:   e.Arbiter,
		Recipient: e.Recipient,
		Source:    e.Source,
		EndHeight: e.EndHeight,
		EndTime:   e.EndTime,
		Balance:   e.Balance.Clone(),
	}
}

// IsExpired returns true if either deadline of the escrow has passed
// relative to the block declared in the context. An unset deadline never
// contributes. The time comparison is strict and done with the full
// resolution of the block time.
//
// Panics if a set deadline cannot be compared because the block
// information is missing from the context.
func (e *Escrow) IsExpired(ctx lockbox.Context) bool {
	if e.EndHeight > 0 {
		height, ok := lockbox.GetHeight(ctx)
		if !ok {
			panic("block height is not present")
		}
		if height > e.EndHeight {
			return true
		}
	}
	if e.EndTime > 0 && lockbox.IsExpired(ctx, e.EndTime) {
		return true
	}
	return false
}

// AsEscrow extracts an *Escrow value or nil from the object
// Must be called on a Bucket result that is an *Escrow,
// will panic on bad type.
func AsEscrow(obj orm.Object) *Escrow {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Escrow)
}

// Bucket is a type-safe wrapper around the generic bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes an escrow bucket
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Escrow{})),
	}
}

// Create writes the escrow under the given id, failing with ErrDuplicate
// when the id is already taken.
func (b Bucket) Create(db lockbox.KVStore, id []byte, e *Escrow) error {
	return b.Bucket.Create(db, orm.NewSimpleObj(id, e))
}

// Save overwrites the escrow stored under the given id.
func (b Bucket) Save(db lockbox.KVStore, id []byte, e *Escrow) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(id, e))
}

// GetEscrow loads the escrow for the given id, or nil if none stored.
func (b Bucket) GetEscrow(db lockbox.ReadOnlyKVStore, id []byte) (*Escrow, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	return AsEscrow(obj), nil
}
