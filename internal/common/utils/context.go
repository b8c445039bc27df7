package utils

import (
	"context"
	"fmt"
	"time"
)

// RunWithTimeout ejecuta fn dentro del tiempo indicado. Si se supera el
// límite, el contexto se cancela y se devuelve un error de timeout.
func RunWithTimeout(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	errChan := make(chan error, 1)

	go func() {
		errChan <- fn(ctx)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("batch process timed out after %v", timeout)
	}
}
