package extract

import (
	"errors"
	"fmt"
)

// ErrNoLayers means no strategy found a layer block.
var ErrNoLayers = errors.New("no layer blocks found")

// LayerNotFoundError reports a layer index outside 0..Count-1.
type LayerNotFoundError struct {
	Index int
	Count int
}

func (e *LayerNotFoundError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("layer %d not found, no layers", e.Index)
	}
	return fmt.Sprintf("layer %d not found, valid range is 0..%d", e.Index, e.Count-1)
}

// SelectLayer returns items[idx] or a *LayerNotFoundError. It never clamps.
func SelectLayer[T any](items []T, idx int) (T, error) {
	if idx < 0 || idx >= len(items) {
		var zero T
		return zero, &LayerNotFoundError{Index: idx, Count: len(items)}
	}
	return items[idx], nil
}
