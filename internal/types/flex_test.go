package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint64(t *testing.T) {
	var v struct {
		ID FlexUint64 `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id": 7}`), &v))
	assert.Equal(t, uint64(7), v.ID.Uint64())

	require.NoError(t, json.Unmarshal([]byte(`{"id": " 12 "}`), &v))
	assert.Equal(t, uint64(12), v.ID.Uint64())

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &v))
	assert.Zero(t, v.ID)

	err := json.Unmarshal([]byte(`{"id": "abc"}`), &v)
	assert.ErrorIs(t, err, ErrValidation)

	err = json.Unmarshal([]byte(`{"id": 18446744073709551615}`), &v)
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 9223372036854775807}`), &v))
	assert.Equal(t, uint64(9223372036854775807), v.ID.Uint64())

	err = json.Unmarshal([]byte(`{"id": true}`), &v)
	assert.Error(t, err)

	out, err := json.Marshal(FlexUint64(42))
	require.NoError(t, err)
	assert.JSONEq(t, `42`, string(out))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("15")
	require.NoError(t, err)
	assert.Equal(t, uint64(15), id)

	id, err = ParseID("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, uint64(9223372036854775807), id)

	for _, bad := range []string{"", "0", "-1", "1.5", "x", "9223372036854775808", "18446744073709551615"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestFlexList(t *testing.T) {
	var v struct {
		Members FlexList[FlexUint64] `json:"members"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"members": [1, "2", 3]}`), &v))
	assert.Equal(t, []uint64{1, 2, 3}, IDs(v.Members))

	require.NoError(t, json.Unmarshal([]byte(`{"members": 4}`), &v))
	assert.Equal(t, []uint64{4}, IDs(v.Members))

	require.NoError(t, json.Unmarshal([]byte(`{"members": null}`), &v))
	assert.Nil(t, v.Members)
	assert.Equal(t, []FlexUint64{}, v.Members.Slice())
}
