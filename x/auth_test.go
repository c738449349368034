package x

import (
	"context"
	"testing"

	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/lockboxtest"
	"github.com/lockbox-labs/lockbox/lockboxtest/assert"
)

func TestChainAuth(t *testing.T) {
	a := lockboxtest.NewAddress()
	b := lockboxtest.NewAddress()
	c := lockboxtest.NewAddress()

	ctx := context.Background()
	auth := ChainAuth(
		&lockboxtest.Auth{Signer: a},
		&lockboxtest.Auth{Signers: []lockbox.Address{b}},
	)

	assert.Equal(t, true, auth.HasAddress(ctx, a))
	assert.Equal(t, true, auth.HasAddress(ctx, b))
	assert.Equal(t, false, auth.HasAddress(ctx, c))
	assert.Equal(t, 2, len(auth.GetAddresses(ctx)))

	assert.Equal(t, true, HasAllAddresses(ctx, auth, []lockbox.Address{a, b}))
	assert.Equal(t, false, HasAllAddresses(ctx, auth, []lockbox.Address{a, c}))
}

func TestMainSigner(t *testing.T) {
	a := lockboxtest.NewAddress()
	b := lockboxtest.NewAddress()

	ctx := context.Background()
	auth := &lockboxtest.Auth{Signers: []lockbox.Address{a, b}}
	assert.Equal(t, a, MainSigner(ctx, auth))

	var empty lockboxtest.Auth
	assert.Nil(t, MainSigner(ctx, &empty))
}
