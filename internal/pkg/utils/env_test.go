package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("THERALINK_TEST_INT", "42")
	t.Setenv("THERALINK_TEST_BAD_INT", "forty-two")
	t.Setenv("THERALINK_TEST_BOOL", "true")

	assert.Equal(t, 42, GetEnvInt("THERALINK_TEST_INT", 1))
	assert.Equal(t, int64(42), GetEnvInt64("THERALINK_TEST_INT", 1))
	assert.Equal(t, 7, GetEnvInt("THERALINK_TEST_BAD_INT", 7), "unparsable values fall back to default")
	assert.True(t, GetEnvBool("THERALINK_TEST_BOOL", false))
	assert.Equal(t, "fallback", GetEnvString("THERALINK_TEST_MISSING", "fallback"))
}
