package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, name := range []string{
		"landing", "register", "feed", "create-post", "users",
		"user-view", "profile", "admin-dashboard", "profile-required",
	} {
		v, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, View(name), v)
	}

	_, err := Parse("dashboard")
	assert.Error(t, err)
}

func TestPromoteOnProfile(t *testing.T) {
	assert.Equal(t, Feed, PromoteOnProfile(Landing))
	assert.Equal(t, Feed, PromoteOnProfile(Register))
	assert.Equal(t, Feed, PromoteOnProfile(View("")))

	// Views the user navigated to stay put.
	assert.Equal(t, Users, PromoteOnProfile(Users))
	assert.Equal(t, AdminDashboard, PromoteOnProfile(AdminDashboard))
}

func TestRequiresProfile(t *testing.T) {
	assert.False(t, Landing.RequiresProfile())
	assert.False(t, Register.RequiresProfile())
	assert.False(t, ProfileRequired.RequiresProfile())
	assert.True(t, Feed.RequiresProfile())
	assert.True(t, AdminDashboard.RequiresProfile())
}

func TestRequiresAdmin(t *testing.T) {
	assert.True(t, AdminDashboard.RequiresAdmin())
	assert.False(t, Feed.RequiresAdmin())
}
