package escrow

import (
	"strings"
	"testing"

	"github.com/lockbox-labs/lockbox/asset"
	"github.com/lockbox-labs/lockbox/errors"
	"github.com/lockbox-labs/lockbox/lockboxtest"
	"github.com/lockbox-labs/lockbox/lockboxtest/assert"
)

func TestCreateMsgValidate(t *testing.T) {
	valid := func() *CreateMsg {
		return &CreateMsg{
			EscrowID:  "esc1",
			Arbiter:   lockboxtest.NewAddress(),
			Recipient: lockboxtest.NewAddress(),
			EndHeight: 100,
			Funds:     asset.NewBalance([]asset.Coin{asset.NewCoin("atom", 1)}, nil),
		}
	}

	assert.Nil(t, valid().Validate())

	cases := map[string]struct {
		mutator func(*CreateMsg)
		wantErr *errors.Error
	}{
		"missing id": {
			mutator: func(m *CreateMsg) { m.EscrowID = "" },
			wantErr: errors.ErrEmpty,
		},
		"id too long": {
			mutator: func(m *CreateMsg) { m.EscrowID = strings.Repeat("x", 129) },
			wantErr: errors.ErrInvalidInput,
		},
		"missing arbiter": {
			mutator: func(m *CreateMsg) { m.Arbiter = nil },
			wantErr: errors.ErrEmpty,
		},
		"missing recipient": {
			mutator: func(m *CreateMsg) { m.Recipient = nil },
			wantErr: errors.ErrEmpty,
		},
		"negative end height": {
			mutator: func(m *CreateMsg) { m.EndHeight = -1 },
			wantErr: errors.ErrInvalidInput,
		},
		"no funds": {
			mutator: func(m *CreateMsg) { m.Funds = asset.Balance{} },
			wantErr: ErrZeroBalance,
		},
		"invalid funds": {
			mutator: func(m *CreateMsg) {
				m.Funds = asset.NewBalance([]asset.Coin{asset.NewCoin("atom", -1)}, nil)
			},
			wantErr: errors.ErrInvalidAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			msg := valid()
			tc.mutator(msg)
			assert.IsErr(t, tc.wantErr, msg.Validate())
		})
	}
}

func TestTopUpMsgValidate(t *testing.T) {
	valid := &TopUpMsg{
		EscrowID: "esc1",
		Funds:    asset.NewBalance(nil, []asset.Token{asset.NewToken("c1", 5)}),
	}
	assert.Nil(t, valid.Validate())

	noFunds := &TopUpMsg{EscrowID: "esc1"}
	assert.IsErr(t, ErrZeroBalance, noFunds.Validate())

	noID := &TopUpMsg{Funds: valid.Funds}
	assert.IsErr(t, errors.ErrEmpty, noID.Validate())
}

func TestReleaseMsgsValidate(t *testing.T) {
	assert.Nil(t, (&ApproveMsg{EscrowID: "esc1"}).Validate())
	assert.IsErr(t, errors.ErrEmpty, (&ApproveMsg{}).Validate())

	assert.Nil(t, (&RefundMsg{EscrowID: "esc1"}).Validate())
	assert.IsErr(t, errors.ErrEmpty, (&RefundMsg{}).Validate())
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "escrow/create", CreateMsg{}.Path())
	assert.Equal(t, "escrow/topup", TopUpMsg{}.Path())
	assert.Equal(t, "escrow/approve", ApproveMsg{}.Path())
	assert.Equal(t, "escrow/refund", RefundMsg{}.Path())
}
