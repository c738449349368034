package lockboxtest

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/lockbox-labs/lockbox"
)

// NewAddress returns a random address that can be used in tests where the
// value does not matter.
func NewAddress() lockbox.Address {
	addr := make(lockbox.Address, 20)
	if _, err := rand.Read(addr); err != nil {
		panic(err)
	}
	return addr
}

// Auth is a mock implementing the x.Authenticator interface.
//
// This structure authenticates any of the referenced addresses. You can use
// either Signer or Signers (or both) attributes to reference addresses. This
// is for convenience and each time all signers (regardless which attribute)
// are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convenience attribute when creating an authentication method for a
	// single signer.
	// When authenticating all signers declared on this structure are
	// considered.
	Signer lockbox.Address

	// Signers represents an authentication of multiple signers.
	Signers []lockbox.Address
}

func (a *Auth) GetAddresses(lockbox.Context) []lockbox.Address {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx lockbox.Context, addr lockbox.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer)
}

// CtxAuth is a mock implementing the x.Authenticator interface.
//
// This implementation is using context to store and retrieve signers.
type CtxAuth struct {
	// Key used to set and retrieve signers from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetSigners(ctx lockbox.Context, signers ...lockbox.Address) lockbox.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), signers)
}

func (a *CtxAuth) GetAddresses(ctx lockbox.Context) []lockbox.Address {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	addrs, ok := val.([]lockbox.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []lockbox.Address got %T", val))
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx lockbox.Context, addr lockbox.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

type ctxAuthKey string
