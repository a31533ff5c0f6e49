package rulechain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain"
	"github.com/dmitrymomot/rulechain/pkg/rules"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	res, err := rulechain.Validate(
		map[string]any{"age": "42", "code": "0x2a", "tags": []any{"a", "b", "c"}, "word": "something"},
		map[string]string{
			"age":  "integer|size:42",
			"code": "hex|size:42",
			"tags": "list|size:3",
			"word": "string|size:9",
		},
	)
	require.NoError(t, err)
	assert.True(t, res.OK)

	_, err = rulechain.Validate(nil, map[string]string{"age": "integer|sizee:42"})
	assert.ErrorIs(t, err, rules.ErrUnknownRule)
}

func TestCompile(t *testing.T) {
	t.Parallel()

	s, err := rulechain.Compile(map[string]string{"code": "octal|between:8,64"})
	require.NoError(t, err)
	assert.True(t, s.Validate(map[string]any{"code": "0o52"}).OK)
	assert.False(t, s.Validate(map[string]any{"code": "0o7"}).OK)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	err := rulechain.Register("upper", rules.Custom(func(v any, _ rules.Seen) rules.Outcome {
		if s, ok := v.(string); ok && s == strings.ToUpper(s) {
			return rules.Pass()
		}
		return rules.Fail("validation.upper", "must be upper case", nil)
	}))
	require.NoError(t, err)
	assert.Contains(t, rulechain.Rules(), "upper")

	res, err := rulechain.Validate(map[string]any{"code": "abc"}, map[string]string{"code": "string|upper"})
	require.NoError(t, err)
	assert.Equal(t, []string{"must be upper case"}, res.Errors["code"])

	assert.ErrorIs(t, rulechain.Register("size", rules.Custom(nil)), rules.ErrDuplicateRule)
	assert.ErrorIs(t, rulechain.Register("a|b", rules.Custom(nil)), rules.ErrInvalidToken)
}
