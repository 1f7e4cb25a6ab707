package signpost_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
)

func TestNewMode(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected signpost.Mode
	}{
		{"", signpost.ModeHistory},
		{"history", signpost.ModeHistory},
		{" Hash ", signpost.ModeHash},
		{"abstract", signpost.ModeHistory},
	} {
		t.Run(tc.input, func(t *testing.T) {
			m := signpost.NewMode(tc.input)
			require.Equal(t, tc.expected, m)
			require.NoError(t, m.Valid())
		})
	}

	require.ErrorIs(t, signpost.Mode("abstract").Valid(), signpost.ErrNotValid)
}
