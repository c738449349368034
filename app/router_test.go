package app

import (
	"context"
	"testing"

	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/errors"
	"github.com/lockbox-labs/lockbox/lockboxtest"
	"github.com/lockbox-labs/lockbox/lockboxtest/assert"
	"github.com/lockbox-labs/lockbox/store"
)

// countingHandler counts how many times it was called.
type countingHandler struct {
	checked   int
	delivered int
}

var _ lockbox.Handler = (*countingHandler)(nil)

func (h *countingHandler) Check(lockbox.Context, lockbox.KVStore, lockbox.Tx) (*lockbox.CheckResult, error) {
	h.checked++
	return &lockbox.CheckResult{}, nil
}

func (h *countingHandler) Deliver(lockbox.Context, lockbox.KVStore, lockbox.Tx) (*lockbox.DeliverResult, error) {
	h.delivered++
	return &lockbox.DeliverResult{}, nil
}

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	var h countingHandler
	r.Handle("good/path", &h)

	ctx := context.Background()
	db := store.MemStore()

	tx := &lockboxtest.Tx{Msg: &lockboxtest.Msg{RoutePath: "good/path"}}
	_, err := r.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = r.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 1, h.checked)
	assert.Equal(t, 1, h.delivered)

	missing := &lockboxtest.Tx{Msg: &lockboxtest.Msg{RoutePath: "bad/path"}}
	_, err = r.Check(ctx, db, missing)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(ctx, db, missing)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	var h countingHandler
	r.Handle("my_route", &h)

	// invalid path
	assert.Panics(t, func() { r.Handle("Bad!Path", &h) })
	// duplicate registration
	assert.Panics(t, func() { r.Handle("my_route", &h) })
}
