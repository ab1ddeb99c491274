package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateJoinCode(t *testing.T) {
	t.Parallel()

	format := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	seen := make(map[string]int)
	for i := 0; i < 1000; i++ {
		code := GenerateJoinCode()
		require.Len(t, code, JoinCodeLength)
		require.Regexp(t, format, code)
		seen[code]++
	}

	// With a ~2x10^9 keyspace, 1000 draws colliding more than a couple of
	// times would indicate a broken generator.
	for code, count := range seen {
		require.LessOrEqual(t, count, 2, "code %s drawn %d times", code, count)
	}
	require.Greater(t, len(seen), 990)
}
