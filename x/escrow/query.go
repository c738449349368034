package escrow

import (
	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/asset"
	"github.com/lockbox-labs/lockbox/errors"
)

// DetailsResponse is the read-only projection of a stored escrow, with the
// balance decomposed into separate native and token views.
type DetailsResponse struct {
	EscrowID  string           `json:"id"`
	Arbiter   lockbox.Address  `json:"arbiter"`
	Recipient lockbox.Address  `json:"recipient"`
	Source    lockbox.Address  `json:"source"`
	EndHeight int64            `json:"end_height,omitempty"`
	EndTime   lockbox.UnixTime `json:"end_time,omitempty"`
	Native    []asset.Coin     `json:"native_balance"`
	Tokens    []asset.Token    `json:"token_balance"`
}

// Details returns the public view of the escrow stored under the given id,
// or ErrNotFound.
func Details(db lockbox.ReadOnlyKVStore, bucket Bucket, escrowID string) (*DetailsResponse, error) {
	obj, err := bucket.Get(db, []byte(escrowID))
	if err != nil {
		return nil, err
	}
	escrow := AsEscrow(obj)
	if escrow == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "escrow %s", escrowID)
	}

	return &DetailsResponse{
		EscrowID:  escrowID,
		Arbiter:   escrow.Arbiter,
		Recipient: escrow.Recipient,
		Source:    escrow.Source,
		EndHeight: escrow.EndHeight,
		EndTime:   escrow.EndTime,
		Native:    escrow.Balance.Native,
		Tokens:    escrow.Balance.Tokens,
	}, nil
}

// ListIDs enumerates the ids of all live escrows in ascending order.
func ListIDs(db lockbox.ReadOnlyKVStore, bucket Bucket) []string {
	keys := bucket.Keys(db)
	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = string(key)
	}
	return ids
}
