package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeprecation(t *testing.T) {
	var out bytes.Buffer
	deprecated := NewDeprecationHelper(
		DeprecationHelperOpts{
			Output: &out,
			EnvLookup: func(key string) (string, bool) {
				return "", false
			},
		},
	)
	require.NoError(t, deprecated("This is not fatal"))
	require.Equal(t, "This is not fatal\n", out.String())
}

func TestFailOnDeprecation(t *testing.T) {
	var out bytes.Buffer

	deprecated := NewDeprecationHelper(
		DeprecationHelperOpts{
			Output: &out,
			EnvLookup: func(key string) (string, bool) {
				if key == "HEAT_CLI_FAIL_ON_DEPRECATION" {
					return "1", true
				}
				return "", false
			},
		},
	)
	err := deprecated("This is fatal")
	require.EqualError(t, err, "usage of deprecated feature (HEAT_CLI_FAIL_ON_DEPRECATION=1)")
	require.Equal(t, "This is fatal\n", out.String())
}
