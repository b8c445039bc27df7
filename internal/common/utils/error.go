package utils

import (
	"fmt"
	"runtime/debug"
)

// GetStackWithError devuelve el error acompañado del stack trace, para los
// fallos fatales del importador
func GetStackWithError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w\nStack trace:\n%s", err, debug.Stack())
}
