package logging

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/placer/types"
)

func TestNopLogger_ImplementsInterface(t *testing.T) {
	var logger types.Logger = NewNop()
	require.NotNil(t, logger)
}

func TestNopLogger_MethodsDoNotPanic(t *testing.T) {
	n := NewNop()

	require.NotPanics(t, func() {
		n.Debug("msg", "k", "v")
		n.Info("msg")
		n.Warn("msg")
		n.Error("msg", "error", "boom")
		n.Fatal("msg") // NopLogger.Fatal does not exit
	})
}
