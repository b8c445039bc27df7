package utils

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGetStackWithError(t *testing.T) {
	t.Run("nil queda en nil", func(t *testing.T) {
		if got := GetStackWithError(nil); got != nil {
			t.Errorf("GetStackWithError(nil) = %v, want nil", got)
		}
	})

	t.Run("adjunta el stack trace sin perder la cadena de errores", func(t *testing.T) {
		base := errors.New("boom")
		got := GetStackWithError(fmt.Errorf("wrapped: %w", base))

		if !errors.Is(got, base) {
			t.Errorf("GetStackWithError() rompió la cadena: %v", got)
		}
		if !strings.Contains(got.Error(), "wrapped: boom") {
			t.Errorf("GetStackWithError() perdió el mensaje original: %v", got)
		}
		if !strings.Contains(got.Error(), "Stack trace:") {
			t.Errorf("GetStackWithError() no adjuntó el stack trace: %v", got)
		}
	})
}
