package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_SingletonContainer(t *testing.T) {
	raw := json.RawMessage(`[{"user_id":"abc","username":"ada"}]`)

	opt, err := Normalize(raw)

	require.NoError(t, err)
	require.True(t, opt.Present())
	p, ok := opt.Get()
	require.True(t, ok)
	assert.Equal(t, "abc", p.UserID)
	assert.Equal(t, "ada", p.Username)
}

func TestNormalize_EmptyContainer(t *testing.T) {
	opt, err := Normalize(json.RawMessage(`[]`))

	require.NoError(t, err)
	assert.False(t, opt.Present())
}

func TestNormalize_BareObject(t *testing.T) {
	opt, err := Normalize(json.RawMessage(`{"user_id":"abc","username":"ada"}`))

	require.NoError(t, err)
	require.True(t, opt.Present())
	assert.Equal(t, "abc", opt.MustGet().UserID)
}

func TestNormalize_NullAndEmpty(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(``)} {
		opt, err := Normalize(raw)
		require.NoError(t, err)
		assert.False(t, opt.Present())
	}
}

func TestNormalize_MissingUserIDIsAbsent(t *testing.T) {
	// An object without a user_id is "no account", not an error; the
	// presence rule requires a non-empty identifier in every shape.
	cases := []json.RawMessage{
		json.RawMessage(`{"username":"ada"}`),
		json.RawMessage(`[{"username":"ada"}]`),
		json.RawMessage(`[{}]`),
	}
	for _, raw := range cases {
		opt, err := Normalize(raw)
		require.NoError(t, err, "raw=%s", raw)
		assert.False(t, opt.Present(), "raw=%s", raw)
	}
}

func TestNormalize_AgreesWithOracle(t *testing.T) {
	// Hand-computed oracle over the three wire shapes of the same
	// logical value.
	cases := []struct {
		name    string
		raw     string
		present bool
	}{
		{"present_container", `[{"user_id":"abc","username":"ada"}]`, true},
		{"present_bare", `{"user_id":"abc","username":"ada"}`, true},
		{"absent_container", `[]`, false},
		{"absent_null", `null`, false},
		{"absent_empty_id_container", `[{"user_id":""}]`, false},
		{"absent_empty_id_bare", `{"user_id":""}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opt, err := Normalize(json.RawMessage(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.present, opt.Present())
		})
	}
}

func TestNormalize_ScalarShapesAreAbsent(t *testing.T) {
	// A value that is not a container, object, or null is treated as
	// "no account" rather than an error, matching the frontend's
	// original handling of unexpected responses.
	cases := []json.RawMessage{
		json.RawMessage(`"unexpected string"`),
		json.RawMessage(`42`),
		json.RawMessage(`true`),
	}
	for _, raw := range cases {
		opt, err := Normalize(raw)
		require.NoError(t, err, "raw=%s", raw)
		assert.False(t, opt.Present(), "raw=%s", raw)
	}
}

func TestNormalize_UndecodableContainerErrors(t *testing.T) {
	cases := []json.RawMessage{
		json.RawMessage(`[{"user_id":`),
		json.RawMessage(`{"user_id": 7}`),
	}
	for _, raw := range cases {
		_, err := Normalize(raw)
		assert.Error(t, err, "raw=%s", raw)
	}
}

func TestMustGet_PanicsWhenAbsent(t *testing.T) {
	assert.Panics(t, func() { None().MustGet() })
}

func TestSome_RejectsInvalidProfile(t *testing.T) {
	assert.False(t, Some(Profile{}).Present())
	assert.True(t, Some(Profile{UserID: "abc"}).Present())
}
