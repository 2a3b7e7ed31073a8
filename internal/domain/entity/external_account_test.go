package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalAccountLink_IsExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{name: "unknown expiry", expiresAt: nil, want: true},
		{name: "in the future", expiresAt: at(time.Second), want: false},
		{name: "exactly now", expiresAt: at(0), want: true},
		{name: "in the past", expiresAt: at(-time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := &ExternalAccountLink{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, link.IsExpired(now))
		})
	}
}

func TestExternalAccountLink_ApplyTokens(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("keeps stored refresh token when omitted", func(t *testing.T) {
		link := &ExternalAccountLink{AccessToken: "old", RefreshToken: "R1"}

		link.ApplyTokens(&TokenSet{AccessToken: "T2", ExpiresIn: time.Hour}, now)

		assert.Equal(t, "T2", link.AccessToken)
		assert.Equal(t, "R1", link.RefreshToken)
		require.NotNil(t, link.ExpiresAt)
		assert.Equal(t, now.Add(time.Hour), *link.ExpiresAt)
		assert.False(t, link.IsExpired(now))
	})

	t.Run("replaces refresh token when provided", func(t *testing.T) {
		link := &ExternalAccountLink{RefreshToken: "R1"}

		link.ApplyTokens(&TokenSet{AccessToken: "T2", RefreshToken: "R2"}, now)

		assert.Equal(t, "R2", link.RefreshToken)
		assert.Nil(t, link.ExpiresAt)
		assert.True(t, link.IsExpired(now))
		assert.True(t, link.CanRefresh())
	})
}

func TestUser_Summary(t *testing.T) {
	user := &User{Username: "yandex_99", Email: "a@b.com"}
	assert.Nil(t, user.Summary().AvatarURL)

	user.Profile = &UserProfile{AvatarURL: "https://avatars.example/1"}
	summary := user.Summary()
	require.NotNil(t, summary.AvatarURL)
	assert.Equal(t, "https://avatars.example/1", *summary.AvatarURL)
	assert.Equal(t, "yandex_99", summary.Username)
}

func TestIsReservedUsername(t *testing.T) {
	assert.True(t, IsReservedUsername("yandex_42"))
	assert.True(t, IsReservedUsername(" YANDEX_x"))
	assert.False(t, IsReservedUsername("yandex"))
	assert.False(t, IsReservedUsername("ann_yandex_42"))
	assert.False(t, IsReservedUsername("ann"))
}
