package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimMapper_Defaults(t *testing.T) {
	m, err := newClaimMapper("", "")
	require.NoError(t, err)

	claims := map[string]any{
		"sub":         "w7x2k-principal",
		"email":       "jo@example.com",
		"given_name":  "Jo",
		"family_name": "Doe",
		"groups":      []any{"app-users", "app-admins"},
	}

	f := m.fromClaims(claims)
	assert.Equal(t, "w7x2k-principal", f.principal)
	assert.Equal(t, "jo@example.com", f.email)
	assert.Equal(t, "Jo", f.givenName)
	assert.Equal(t, "Doe", f.familyName)
	assert.Equal(t, []string{"app-users", "app-admins"}, f.groups)
}

func TestClaimMapper_ADStyleFallbacks(t *testing.T) {
	m, err := newClaimMapper("", "")
	require.NoError(t, err)

	claims := map[string]any{
		"sub":       "jdoe",
		"mail":      "jdoe@corp.example.com",
		"firstname": "Jane",
		"lastname":  "Doe",
		"memberof":  "cn=app-users",
	}

	f := m.fromClaims(claims)
	assert.Equal(t, "jdoe", f.principal)
	assert.Equal(t, "jdoe@corp.example.com", f.email)
	assert.Equal(t, "Jane", f.givenName)
	assert.Equal(t, "Doe", f.familyName)
	assert.Equal(t, []string{"cn=app-users"}, f.groups)
}

func TestClaimMapper_JMESPathSelectors(t *testing.T) {
	m, err := newClaimMapper("identity.principal", "identity.roles")
	require.NoError(t, err)

	claims := map[string]any{
		"sub": "ignored",
		"identity": map[string]any{
			"principal": "aaaaa-aa",
			"roles":     []any{"admins"},
		},
	}

	f := m.fromClaims(claims)
	assert.Equal(t, "aaaaa-aa", f.principal)
	assert.Equal(t, []string{"admins"}, f.groups)
}

func TestClaimMapper_SelectorMissFallsBack(t *testing.T) {
	m, err := newClaimMapper("identity.principal", "")
	require.NoError(t, err)

	f := m.fromClaims(map[string]any{"sub": "fallback-sub"})
	assert.Equal(t, "fallback-sub", f.principal)
}

func TestClaimMapper_InvalidExpression(t *testing.T) {
	_, err := newClaimMapper("[bad", "")
	require.Error(t, err)

	_, err = newClaimMapper("", "[bad")
	require.Error(t, err)
}

func TestClaimMapper_FillDoesNotOverwrite(t *testing.T) {
	m, err := newClaimMapper("", "")
	require.NoError(t, err)

	f := idFields{principal: "from-id-token", email: "a@b.c"}
	m.fill(&f, map[string]any{
		"sub":         "from-userinfo",
		"email":       "other@b.c",
		"family_name": "Doe",
	})

	assert.Equal(t, "from-id-token", f.principal)
	assert.Equal(t, "a@b.c", f.email)
	assert.Equal(t, "Doe", f.familyName)
}

func TestToStringSlice(t *testing.T) {
	assert.Nil(t, toStringSlice(nil))
	assert.Nil(t, toStringSlice(""))
	assert.Nil(t, toStringSlice(42))
	assert.Equal(t, []string{"a"}, toStringSlice("a"))
	assert.Equal(t, []string{"a", "b"}, toStringSlice([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, toStringSlice([]any{"a", "b", 3}))
}
