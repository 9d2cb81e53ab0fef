package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestHashOTPRoundTrip(t *testing.T) {
	hash, err := HashOTP("483920")
	require.NoError(t, err)
	assert.NotEqual(t, "483920", hash)

	assert.True(t, CheckOTP(hash, "483920"))
	assert.False(t, CheckOTP(hash, "483921"))
	assert.False(t, CheckOTP(hash, ""))
}
