package session

import (
	"fmt"
	"strings"

	"chapatis/internal/pkg/errs"
)

// View is the screen the session is currently on. It carries the transition
// rules of the ordering flow.
//
//	Ordering ──> Confirmation ──> Ordering
//	Ordering <──> History
type View int

const (
	// Unknown is the zero value and never a valid view.
	Unknown View = iota

	// Ordering is the initial view: date, quantity and customer are edited here.
	Ordering

	// Confirmation shows the order that was just placed.
	Confirmation

	// History lists the orders placed in this session.
	History
)

func getViewStrings() map[View]string {
	return map[View]string{
		Unknown:      "UNKNOWN",
		Ordering:     "ORDERING",
		Confirmation: "CONFIRMATION",
		History:      "HISTORY",
	}
}

func getValidViewStrings() map[View]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[View]string{
		Ordering:     "ORDERING",
		Confirmation: "CONFIRMATION",
		History:      "HISTORY",
	}
}

// ParseView converts the API representation ("ORDERING", "CONFIRMATION",
// "HISTORY", case-insensitive) into a View.
func ParseView(s string) (View, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for v, str := range getValidViewStrings() {
		if str == want {
			return v, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("view is invalid", fmt.Errorf("%q is not a valid view", s))
}

// Validate rejects Unknown and out-of-range values.
func (v View) Validate() error {
	if _, ok := getValidViewStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("view is invalid", fmt.Errorf("%d is not a valid view", v))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "UNKNOWN".
func (v View) String() string {
	if str, ok := getViewStrings()[v]; ok {
		return str
	}
	return "UNKNOWN"
}

// Submit moves Ordering to Confirmation.
func (v View) Submit() (View, error) {
	if v != Ordering {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"view is invalid",
			fmt.Errorf("%s is not a valid view to submit from", v.String()),
		)
	}
	return Confirmation, nil
}

// StartNewOrder moves Confirmation back to Ordering.
func (v View) StartNewOrder() (View, error) {
	if v != Confirmation {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"view is invalid",
			fmt.Errorf("%s is not a valid view to start a new order from", v.String()),
		)
	}
	return Ordering, nil
}

// ShowHistory moves Ordering to History. Staying on History is allowed.
func (v View) ShowHistory() (View, error) {
	if v != Ordering && v != History {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"view is invalid",
			fmt.Errorf("%s is not a valid view to show history from", v.String()),
		)
	}
	return History, nil
}

// ShowOrdering returns to Ordering from any valid view.
func (v View) ShowOrdering() (View, error) {
	if err := v.Validate(); err != nil {
		return Unknown, err
	}
	return Ordering, nil
}
