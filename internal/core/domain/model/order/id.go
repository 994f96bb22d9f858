package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"chapatis/internal/pkg/errs"
)

const idPrefix = "ORD-"

// ID identifies an order. It is derived from the placement timestamp.
type ID string

// NewID returns "ORD-" followed by the Unix millisecond timestamp of placedAt.
func NewID(placedAt time.Time) ID {
	return ID(idPrefix + strconv.FormatInt(placedAt.UnixMilli(), 10))
}

// ParseID validates the "ORD-<digits>" form.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (id ID) Validate() error {
	digits, ok := strings.CutPrefix(string(id), idPrefix)
	if !ok || digits == "" {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%q does not start with %s", id, idPrefix))
	}
	if _, err := strconv.ParseUint(digits, 10, 64); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Short returns the first eight characters, as shown in history lists.
func (id ID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}
