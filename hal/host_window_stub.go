//go:build !cgo

package hal

import "fmt"

func RunWindow(_ Config, _ func(h HAL) func() error) error {
	return fmt.Errorf("window mode requires cgo (build with CGO_ENABLED=1, or use -headless/-term): %w", ErrNotImplemented)
}
