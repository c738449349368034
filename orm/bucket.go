/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* It has a primary index keyed by the caller.
* Easy queries for one and iteration over all.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a generic holder that stores data of one type
// under a common key prefix.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
// Bucket is a prefixed subspace of the DB
// proto defines the default Model, all elements of this type
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

// NewBucket creates a bucket to store data
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element
func (b Bucket) Get(db lockbox.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz := db.Get(dbkey)
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Has returns true iff an element is stored under the key
func (b Bucket) Has(db lockbox.ReadOnlyKVStore, key []byte) bool {
	return db.Has(b.DBKey(key))
}

// Parse takes a key and value data and reconstructs the data
// this Bucket would return.
//
// Used internally as part of Get.
// It is exposed mainly as a test helper, but can work for
// any code that wants to parse
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write a model, it must be of the same type as proto
func (b Bucket) Save(db lockbox.KVStore, model Object) error {
	err := model.Validate()
	if err != nil {
		return err
	}

	bz, err := model.Value().Marshal()
	if err != nil {
		return err
	}
	db.Set(b.DBKey(model.Key()), bz)
	return nil
}

// Create writes a model under a key that must not be taken yet.
// An existing entry is never overwritten, the write is rejected
// with ErrDuplicate instead.
func (b Bucket) Create(db lockbox.KVStore, model Object) error {
	if b.Has(db, model.Key()) {
		return errors.Wrapf(errors.ErrDuplicate, "key %X", model.Key())
	}
	return b.Save(db, model)
}

// Delete will remove the value at a key
func (b Bucket) Delete(db lockbox.KVStore, key []byte) error {
	db.Delete(b.DBKey(key))
	return nil
}

// Keys returns all keys stored in the bucket, without the bucket
// prefix, in ascending lexicographical order.
func (b Bucket) Keys(db lockbox.ReadOnlyKVStore) [][]byte {
	start, end := prefixRange(b.prefix)
	iter := db.Iterator(start, end)
	defer iter.Close()

	var keys [][]byte
	for ; iter.Valid(); iter.Next() {
		full := iter.Key()
		key := make([]byte, len(full)-len(b.prefix))
		copy(key, full[len(b.prefix):])
		keys = append(keys, key)
	}
	return keys
}

// prefixRange turns a prefix into (start, end) to create
// and iterator over the whole prefixed domain
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte?
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}
	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
