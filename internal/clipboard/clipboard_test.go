package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPathOnly(names ...string) lookPathFunc {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		installed []string
		want      []string
		wantErr   error
	}{
		{name: "darwin", goos: "darwin", want: []string{"pbcopy"}},
		{name: "windows", goos: "windows", want: []string{"cmd", "/c", "clip"}},
		{name: "wayland first", goos: "linux", installed: []string{"xclip", "wl-copy"}, want: []string{"wl-copy"}},
		{name: "xclip", goos: "linux", installed: []string{"xclip", "xsel"}, want: []string{"xclip", "-selection", "clipboard"}},
		{name: "xsel", goos: "freebsd", installed: []string{"xsel"}, want: []string{"xsel", "--clipboard", "--input"}},
		{name: "nothing installed", goos: "linux", wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command(tt.goos, lookPathOnly(tt.installed...))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
