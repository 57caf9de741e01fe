package rotation

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder is returned when an EulerOrder outside the six defined
// orders reaches an order-dependent conversion.
var ErrInvalidOrder = errors.New("rotation: invalid euler order")

func invalidOrder(op string, o EulerOrder) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidOrder, op, o)
}
