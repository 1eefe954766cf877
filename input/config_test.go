package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		toml    string
		want    Config
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			toml: "",
			want: DefaultConfig(),
		},
		{
			name: "partial override",
			toml: "[input]\ndouble_click_speed = 0.25\n",
			want: Config{
				DoubleClickSpeed: 250 * time.Millisecond,
				KeyRepeatDelay:   500 * time.Millisecond,
				KeyRepeatRate:    30 * time.Millisecond,
				MaxMouseButtons:  5,
			},
		},
		{
			name: "full",
			toml: "[input]\ndouble_click_speed = 0.4\nkey_repeat_delay = 0.3\nkey_repeat_rate = 0.05\nmax_mouse_buttons = 3\n",
			want: Config{
				DoubleClickSpeed: 400 * time.Millisecond,
				KeyRepeatDelay:   300 * time.Millisecond,
				KeyRepeatRate:    50 * time.Millisecond,
				MaxMouseButtons:  3,
			},
		},
		{
			name:    "negative rate",
			toml:    "[input]\nkey_repeat_rate = -1.0\n",
			wantErr: true,
		},
		{
			name:    "one mouse button",
			toml:    "[input]\nmax_mouse_buttons = 1\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			toml:    "[input\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.toml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("encoded config loads back", func(t *testing.T) {
		want := Config{
			DoubleClickSpeed: 300 * time.Millisecond,
			KeyRepeatDelay:   250 * time.Millisecond,
			KeyRepeatRate:    40 * time.Millisecond,
			MaxMouseButtons:  3,
		}
		data, err := want.EncodeTOML()
		require.NoError(t, err)

		path := filepath.Join(dir, "input.toml")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		got, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[input]\nkey_repeat_delay = 0\n"), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), path)
	})
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 30*time.Millisecond, Seconds(0.03))
	assert.Equal(t, 1500*time.Millisecond, Seconds(1.5))
}
