package store

import "github.com/lockbox-labs/lockbox"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = lockbox.ReadOnlyKVStore
type KVStore = lockbox.KVStore
type SetDeleter = lockbox.SetDeleter
type Batch = lockbox.Batch
type Model = lockbox.Model
type Iterator = lockbox.Iterator
type CacheableKVStore = lockbox.CacheableKVStore
type KVCacheWrap = lockbox.KVCacheWrap
type CommitKVStore = lockbox.CommitKVStore
type CommitID = lockbox.CommitID
