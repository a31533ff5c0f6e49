package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/schema"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("yaml document", func(t *testing.T) {
		got, err := schema.Decode([]byte(`
age: integer|size:42
email: [required, email]
nickname:
code: "hex|in:0x1,0x2"
`))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"age":      "integer|size:42",
			"email":    "required|email",
			"nickname": "",
			"code":     "hex|in:0x1,0x2",
		}, got)
	})

	t.Run("json document", func(t *testing.T) {
		got, err := schema.Decode([]byte(`{"items": "list|size:3", "name": "string"}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"items": "list|size:3", "name": "string"}, got)
	})

	t.Run("empty document", func(t *testing.T) {
		got, err := schema.Decode(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		for _, doc := range []string{
			"- a\n- b\n",
			"age: 42\n",
			"age: {min: 1}\n",
			"age: integer\nage: hex\n",
			"age: [integer\n",
		} {
			_, err := schema.Decode([]byte(doc))
			assert.ErrorIs(t, err, schema.ErrDecode, doc)
		}
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	in := map[string]string{"b": "hex|size:42", "a": "", "c": "in:yes,no"}
	data, err := schema.Encode(in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "a: "))

	out, err := schema.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeRequest(t *testing.T) {
	t.Parallel()

	t.Run("keeps numbers exact", func(t *testing.T) {
		req, err := schema.DecodeRequest(strings.NewReader(`{"n": 12345678901234567890, "s": "x", "l": [1, 2]}`))
		require.NoError(t, err)
		assert.Equal(t, json.Number("12345678901234567890"), req["n"])
		assert.Equal(t, "x", req["s"])
		assert.Len(t, req["l"], 2)
	})

	t.Run("null becomes an empty request", func(t *testing.T) {
		req, err := schema.DecodeRequestBytes([]byte("null"))
		require.NoError(t, err)
		assert.NotNil(t, req)
		assert.Empty(t, req)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		for _, in := range []string{"", "[1]", "{", `{"a":1} {"b":2}`} {
			_, err := schema.DecodeRequestBytes([]byte(in))
			assert.ErrorIs(t, err, schema.ErrDecodeRequest, in)
		}
	})
}
