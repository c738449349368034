package orm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockbox-labs/lockbox/errors"
	"github.com/lockbox-labs/lockbox/store"
)

// counter is a minimal value to exercise the bucket.
type counter struct {
	Count int64 `json:"count"`
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *counter) Unmarshal(data []byte) error {
	return json.Unmarshal(data, c)
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrInvalidState, "negative count")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

func newCounterObj(key []byte, count int64) Object {
	return NewSimpleObj(key, &counter{Count: count})
}

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() { NewBucket("l", &SimpleObj{}) })
	assert.Panics(t, func() { NewBucket("BIG", &SimpleObj{}) })
	assert.Panics(t, func() { NewBucket("very_long_name", &SimpleObj{}) })
	assert.NotPanics(t, func() { NewBucket("good", NewSimpleObj(nil, &counter{})) })
}

func TestBucketStoreRetrieve(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cntr", NewSimpleObj(nil, &counter{}))

	// no entry for a missing key
	got, err := bucket.Get(db, []byte("some"))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, bucket.Has(db, []byte("some")))

	obj := newCounterObj([]byte("some"), 55)
	require.NoError(t, bucket.Save(db, obj))
	assert.True(t, bucket.Has(db, []byte("some")))

	got, err = bucket.Get(db, []byte("some"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("some"), got.Key())
	assert.Equal(t, int64(55), got.Value().(*counter).Count)

	// keys in other buckets are not visible
	other := NewBucket("other", NewSimpleObj(nil, &counter{}))
	got, err = other.Get(db, []byte("some"))
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleted is gone
	require.NoError(t, bucket.Delete(db, []byte("some")))
	got, err = bucket.Get(db, []byte("some"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBucketCreateRejectsTakenKey(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cntr", NewSimpleObj(nil, &counter{}))

	require.NoError(t, bucket.Create(db, newCounterObj([]byte("one"), 1)))
	err := bucket.Create(db, newCounterObj([]byte("one"), 2))
	require.Error(t, err)
	assert.True(t, errors.ErrDuplicate.Is(err), "got %+v", err)

	// the original value is untouched
	got, err := bucket.Get(db, []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Value().(*counter).Count)
}

func TestBucketSaveRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cntr", NewSimpleObj(nil, &counter{}))

	err := bucket.Save(db, newCounterObj([]byte("bad"), -2))
	require.Error(t, err)
	assert.True(t, errors.ErrInvalidState.Is(err), "got %+v", err)

	err = bucket.Save(db, newCounterObj(nil, 7))
	require.Error(t, err)
	assert.True(t, errors.ErrEmpty.Is(err), "got %+v", err)
}

func TestBucketKeysSorted(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cntr", NewSimpleObj(nil, &counter{}))

	for _, key := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, bucket.Save(db, newCounterObj([]byte(key), 1)))
	}
	// an entry of another bucket inside the iteration range
	db.Set([]byte("cntr;oops"), []byte("ignored"))

	keys := bucket.Keys(db)
	require.Len(t, keys, 4)
	want := []string{"alpha", "bravo", "charlie", "delta"}
	for i, k := range keys {
		assert.Equal(t, want[i], string(k))
	}
}
