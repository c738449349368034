package escrow

import (
	"testing"

	"github.com/lockbox-labs/lockbox/asset"
	"github.com/lockbox-labs/lockbox/errors"
	"github.com/lockbox-labs/lockbox/lockboxtest/assert"
	"github.com/lockbox-labs/lockbox/store"
)

func TestDetails(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	stored := validEscrow()
	stored.Balance = asset.NewBalance(
		[]asset.Coin{asset.NewCoin("atom", 7)},
		[]asset.Token{asset.NewToken("c1", 3)},
	)
	assert.Nil(t, bucket.Create(db, []byte("esc1"), stored))

	details, err := Details(db, bucket, "esc1")
	assert.Nil(t, err)
	assert.Equal(t, "esc1", details.EscrowID)
	assert.Equal(t, stored.Arbiter, details.Arbiter)
	assert.Equal(t, stored.Recipient, details.Recipient)
	assert.Equal(t, stored.Source, details.Source)
	assert.Equal(t, stored.EndHeight, details.EndHeight)
	assert.Equal(t, []asset.Coin{asset.NewCoin("atom", 7)}, details.Native)
	assert.Equal(t, []asset.Token{asset.NewToken("c1", 3)}, details.Tokens)

	_, err = Details(db, bucket, "unknown")
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestListIDs(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	assert.Equal(t, 0, len(ListIDs(db, bucket)))

	for _, id := range []string{"delta", "alpha", "charlie"} {
		e := validEscrow()
		assert.Nil(t, bucket.Create(db, []byte(id), e))
	}
	// an unrelated key inside the db is not reported
	db.Set([]byte("other:zulu"), []byte("ignored"))

	assert.Equal(t, []string{"alpha", "charlie", "delta"}, ListIDs(db, bucket))
}

func TestDetailsAfterDelete(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	assert.Nil(t, bucket.Create(db, []byte("esc1"), validEscrow()))
	assert.Nil(t, bucket.Delete(db, []byte("esc1")))

	_, err := Details(db, bucket, "esc1")
	assert.IsErr(t, errors.ErrNotFound, err)
}
