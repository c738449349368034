package lockbox

import (
	"encoding/json"
	"testing"

	"github.com/lockbox-labs/lockbox/errors"
	"github.com/stretchr/testify/assert"
)

func TestAddressValidate(t *testing.T) {
	assert.NoError(t, Address("f427d624ed29c1fae0e2").Validate())

	var empty Address
	err := empty.Validate()
	assert.True(t, errors.ErrEmpty.Is(err), "got %+v", err)

	long := make(Address, MaxAddressLength+1)
	err = long.Validate()
	assert.True(t, errors.ErrInvalidInput.Is(err), "got %+v", err)
}

func TestAddressEquals(t *testing.T) {
	a := Address("some-address")
	assert.True(t, a.Equals(Address("some-address")))
	assert.False(t, a.Equals(Address("other")))
	assert.False(t, a.Equals(nil))
}

func TestAddressJSONRoundtrip(t *testing.T) {
	orig := Address{0xf4, 0x27, 0xd6, 0x24}
	raw, err := json.Marshal(orig)
	assert.NoError(t, err)
	assert.Equal(t, `"F427D624"`, string(raw))

	var loaded Address
	assert.NoError(t, json.Unmarshal(raw, &loaded))
	assert.Equal(t, orig, loaded)

	var bad Address
	err = json.Unmarshal([]byte(`"zzzz"`), &bad)
	assert.True(t, errors.ErrInvalidInput.Is(err), "got %+v", err)
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("f427d624")
	assert.NoError(t, err)
	assert.Equal(t, Address{0xf4, 0x27, 0xd6, 0x24}, addr)

	_, err = ParseAddress("")
	assert.True(t, errors.ErrEmpty.Is(err), "got %+v", err)

	_, err = ParseAddress("not-hex")
	assert.True(t, errors.ErrInvalidInput.Is(err), "got %+v", err)
}
