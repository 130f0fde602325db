package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	req := require.New(t)
	full := Stack(0)
	req.True(bytes.HasPrefix(full, []byte("goroutine ")))
	req.Contains(string(full), "utils.Stack")

	skipped := Stack(1)
	req.True(bytes.HasPrefix(skipped, []byte("goroutine ")))
	req.NotContains(string(skipped), "utils.Stack(")
	req.Contains(string(skipped), "TestStack")
}
