package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    Screen
		wantErr error
	}{
		{"root", "/", ScreenSession, nil},
		{"empty", "", ScreenSession, nil},
		{"login", "/login", ScreenSession, nil},
		{"login trailing slash", "/login/", ScreenSession, nil},
		{"no leading slash", "user-management", ScreenUsers, nil},
		{"users", "/user-management", ScreenUsers, nil},
		{"forgot password", "/forgot-password", ScreenNone, ErrNoScreen},
		{"signup", "/signup", ScreenNone, ErrNoScreen},
		{"unknown", "/admin", ScreenNone, ErrUnknownPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathForRoundTrip(t *testing.T) {
	for _, s := range []Screen{ScreenSession, ScreenUsers} {
		got, err := Resolve(PathFor(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Empty(t, PathFor(ScreenNone))
}
