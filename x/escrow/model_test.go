package escrow

import (
	"context"
	"testing"
	"time"

	"github.com/lockbox-labs/lockbox"
	"github.com/lockbox-labs/lockbox/asset"
	"github.com/lockbox-labs/lockbox/errors"
	"github.com/lockbox-labs/lockbox/lockboxtest"
	"github.com/lockbox-labs/lockbox/lockboxtest/assert"
)

func validEscrow() *Escrow {
	return &Escrow{
		Arbiter:   lockboxtest.NewAddress(),
		Recipient: lockboxtest.NewAddress(),
		Source:    lockboxtest.NewAddress(),
		EndHeight: 100,
		EndTime:   lockbox.AsUnixTime(time.Now()),
		Balance:   asset.NewBalance([]asset.Coin{asset.NewCoin("atom", 5)}, nil),
	}
}

func TestEscrowValidate(t *testing.T) {
	assert.Nil(t, validEscrow().Validate())

	noArbiter := validEscrow()
	noArbiter.Arbiter = nil
	assert.IsErr(t, errors.ErrEmpty, noArbiter.Validate())

	noRecipient := validEscrow()
	noRecipient.Recipient = nil
	assert.IsErr(t, errors.ErrEmpty, noRecipient.Validate())

	noSource := validEscrow()
	noSource.Source = nil
	assert.IsErr(t, errors.ErrEmpty, noSource.Validate())

	empty := validEscrow()
	empty.Balance = asset.Balance{}
	assert.IsErr(t, ErrZeroBalance, empty.Validate())

	badHeight := validEscrow()
	badHeight.EndHeight = -4
	assert.IsErr(t, errors.ErrInvalidState, badHeight.Validate())

	// both deadlines are optional
	open := validEscrow()
	open.EndHeight = 0
	open.EndTime = 0
	assert.Nil(t, open.Validate())
}

func TestEscrowIsExpired(t *testing.T) {
	now := time.Now().UTC()

	cases := map[string]struct {
		endHeight int64
		endTime   lockbox.UnixTime
		height    int64
		blockTime time.Time
		want      bool
	}{
		"no deadlines": {
			height:    1000000,
			blockTime: now,
			want:      false,
		},
		"height passed": {
			endHeight: 10,
			height:    11,
			blockTime: now,
			want:      true,
		},
		"height not reached": {
			endHeight: 10,
			height:    9,
			blockTime: now,
			want:      false,
		},
		"exactly at end height": {
			endHeight: 10,
			height:    10,
			blockTime: now,
			want:      false,
		},
		"time passed": {
			endTime:   lockbox.AsUnixTime(now.Add(-time.Minute)),
			height:    1,
			blockTime: now,
			want:      true,
		},
		"time not reached": {
			endTime:   lockbox.AsUnixTime(now.Add(time.Minute)),
			height:    1,
			blockTime: now,
			want:      false,
		},
		"sub second past the deadline": {
			endTime:   lockbox.AsUnixTime(now.Truncate(time.Second)),
			height:    1,
			blockTime: now.Truncate(time.Second).Add(time.Millisecond),
			want:      true,
		},
		"exactly at the deadline": {
			endTime:   lockbox.AsUnixTime(now.Truncate(time.Second)),
			height:    1,
			blockTime: now.Truncate(time.Second),
			want:      false,
		},
		"either deadline is sufficient": {
			endHeight: 10,
			endTime:   lockbox.AsUnixTime(now.Add(time.Hour)),
			height:    11,
			blockTime: now,
			want:      true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := validEscrow()
			e.EndHeight = tc.endHeight
			e.EndTime = tc.endTime

			ctx := lockbox.WithHeight(context.Background(), tc.height)
			ctx = lockbox.WithBlockTime(ctx, tc.blockTime)
			assert.Equal(t, tc.want, e.IsExpired(ctx))
		})
	}
}

func TestEscrowIsExpiredPanicsWithoutBlockInfo(t *testing.T) {
	e := validEscrow()
	assert.Panics(t, func() {
		e.IsExpired(context.Background())
	})
}

func TestEscrowCopyIsIndependent(t *testing.T) {
	orig := validEscrow()
	cpy := orig.Copy().(*Escrow)
	assert.Nil(t, cpy.Balance.Add(asset.NewCoin("atom", 10)))
	assert.Equal(t, int64(5), orig.Balance.Native[0].Amount)
	assert.Equal(t, int64(15), cpy.Balance.Native[0].Amount)
}

func TestEscrowSerialization(t *testing.T) {
	orig := validEscrow()
	raw, err := orig.Marshal()
	assert.Nil(t, err)

	var loaded Escrow
	assert.Nil(t, loaded.Unmarshal(raw))
	assert.Equal(t, orig.Arbiter, loaded.Arbiter)
	assert.Equal(t, orig.EndHeight, loaded.EndHeight)
	assert.Equal(t, true, orig.Balance.Equals(loaded.Balance))
}
