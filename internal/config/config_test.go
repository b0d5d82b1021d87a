package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmake/devmake/internal/testutil"
)

func TestSettingsPinLaunchers(t *testing.T) {
	tests := []struct {
		name string
		pin  *bool
		want bool
	}{
		{name: "unset means on", pin: nil, want: true},
		{name: "explicit true", pin: testutil.BoolPtr(true), want: true},
		{name: "explicit false", pin: testutil.BoolPtr(false), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{Launcher: LauncherSettings{Pin: tt.pin}}
			assert.Equal(t, tt.want, s.PinLaunchers())
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  string
	}{
		{name: "zero value is valid"},
		{
			name:     "absolute paths are valid",
			settings: Settings{Profile: ProfileSettings{File: "/home/me/.profile"}},
		},
		{
			name:     "relative profile file",
			settings: Settings{Profile: ProfileSettings{File: ".profile"}},
			wantErr:  "profile.file",
		},
		{
			name:     "relative frameworks dir",
			settings: Settings{Install: InstallSettings{FrameworksDir: "frameworks"}},
			wantErr:  "install.frameworks_dir",
		},
		{
			name:     "relative bin dir",
			settings: Settings{Install: InstallSettings{BinDir: "bin"}},
			wantErr:  "install.bin_dir",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate("config.toml")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "config.toml")
		})
	}
}

func TestLookupKey(t *testing.T) {
	for _, def := range Keys() {
		got, ok := LookupKey(def.Name)
		require.True(t, ok, def.Name)
		assert.Equal(t, def, got)
	}

	_, ok := LookupKey("profile.unknown")
	assert.False(t, ok)
}

func TestSettingsGet(t *testing.T) {
	s := Settings{
		Profile:  ProfileSettings{File: "/home/me/.zprofile"},
		Install:  InstallSettings{FrameworksDir: "/fw", BinDir: "/bin"},
		Launcher: LauncherSettings{Pin: testutil.BoolPtr(false)},
	}

	tests := []struct {
		key  string
		want string
	}{
		{key: "profile.file", want: "/home/me/.zprofile"},
		{key: "install.frameworks_dir", want: "/fw"},
		{key: "install.bin_dir", want: "/bin"},
		{key: "launcher.pin", want: "false"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := s.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unset pin reads empty", func(t *testing.T) {
		got, ok := (&Settings{}).Get("launcher.pin")
		require.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := s.Get("nope.nope")
		assert.False(t, ok)
	})
}
