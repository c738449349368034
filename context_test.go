package lockbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextBlockInfo(t *testing.T) {
	ctx := context.Background()

	_, ok := GetHeight(ctx)
	assert.False(t, ok)
	_, ok = BlockTime(ctx)
	assert.False(t, ok)

	now := time.Now()
	ctx = WithHeight(ctx, 123)
	ctx = WithBlockTime(ctx, now)

	height, ok := GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(123), height)

	bt, ok := BlockTime(ctx)
	assert.True(t, ok)
	assert.Equal(t, now.UTC(), bt)
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(ctx))

	logger := log.NewNopLogger()
	ctx = WithLogger(ctx, logger)
	assert.Equal(t, logger, GetLogger(ctx))
}
