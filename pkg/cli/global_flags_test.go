package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGlobalFlags(t *testing.T) {
	testCases := []struct {
		args        []string
		argsWoFlags []string
		flags       GlobalFlags
	}{
		{[]string{}, []string{}, GlobalFlags{}},
		{
			[]string{"--version"},
			[]string{},
			GlobalFlags{
				Version: true,
			},
		},
		{
			[]string{"--debug", "software", "config", "list"},
			[]string{"software", "config", "list"},
			GlobalFlags{
				Debug: true,
			},
		},
		{
			[]string{"-v", "-vvv"},
			[]string{},
			GlobalFlags{
				Verbosity: 2,
			},
		},
		{
			[]string{"-v", "software", "-vv"},
			[]string{"software", "-vv"},
			GlobalFlags{
				Verbosity: 1,
			},
		},
	}

	for _, tc := range testCases {
		var gf GlobalFlags
		args := gf.Parse(tc.args)
		require.Equal(t, tc.flags, gf)
		require.Equal(t, tc.argsWoFlags, args)
	}
}
