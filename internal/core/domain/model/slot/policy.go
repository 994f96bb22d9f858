package slot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"chapatis/internal/pkg/errs"
	"chapatis/internal/pkg/guard"
)

const (
	DefaultLookaheadDays = 28
	DefaultMaxSlots      = 6
	DefaultDailyCapacity = 100
)

// ErrPolicyIsNotConstructed is returned when validating a zero-value Policy.
var ErrPolicyIsNotConstructed = errors.New("Policy must be created via NewPolicy constructor")

// Policy holds the delivery calendar rules.
type Policy struct { //nolint:recvcheck //using for validation
	weekdays      map[time.Weekday]struct{}
	lookaheadDays int
	maxSlots      int
	dailyCapacity int
	location      *time.Location

	guard guard.ConstructorGuard
}

// DefaultPolicy delivers on Wednesdays and Saturdays, scanning 28 days and
// offering at most 6 slots of 100 boxes each.
func DefaultPolicy(loc *time.Location) (Policy, error) {
	return NewPolicy(
		[]time.Weekday{time.Wednesday, time.Saturday},
		DefaultLookaheadDays,
		DefaultMaxSlots,
		DefaultDailyCapacity,
		loc,
	)
}

// NewPolicy validates and builds a Policy.
func NewPolicy(
	weekdays []time.Weekday,
	lookaheadDays, maxSlots, dailyCapacity int,
	loc *time.Location,
) (Policy, error) {
	p := Policy{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setWeekdays(weekdays),
		p.setLookaheadDays(lookaheadDays),
		p.setMaxSlots(maxSlots),
		p.setDailyCapacity(dailyCapacity),
		p.setLocation(loc),
	); err != nil {
		return Policy{}, err
	}

	return p, nil
}

func (p Policy) Validate() error {
	return p.guard.Validate(ErrPolicyIsNotConstructed)
}

// IsDeliveryDay reports whether deliveries run on d.
func (p Policy) IsDeliveryDay(d time.Weekday) bool {
	_, ok := p.weekdays[d]
	return ok
}

func (p Policy) LookaheadDays() int {
	return p.lookaheadDays
}

func (p Policy) MaxSlots() int {
	return p.maxSlots
}

func (p Policy) DailyCapacity() int {
	return p.dailyCapacity
}

// Location is the time zone that defines calendar days.
func (p Policy) Location() *time.Location {
	return p.location
}

// ParseWeekday accepts full English names ("Wednesday") or three-letter
// abbreviations ("wed"), case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("weekday", fmt.Errorf("%q is not a weekday", s))
}

func (p *Policy) setWeekdays(weekdays []time.Weekday) error {
	if len(weekdays) == 0 {
		return errs.NewValueIsRequiredError("weekdays")
	}
	set := make(map[time.Weekday]struct{}, len(weekdays))
	for _, d := range weekdays {
		if d < time.Sunday || d > time.Saturday {
			return errs.NewValueIsOutOfRangeError("weekday", int(d), int(time.Sunday), int(time.Saturday))
		}
		set[d] = struct{}{}
	}
	p.weekdays = set
	return nil
}

func (p *Policy) setLookaheadDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsOutOfRangeError("lookaheadDays", days, 1, "unbounded")
	}
	p.lookaheadDays = days
	return nil
}

func (p *Policy) setMaxSlots(n int) error {
	if n <= 0 {
		return errs.NewValueIsOutOfRangeError("maxSlots", n, 1, "unbounded")
	}
	p.maxSlots = n
	return nil
}

func (p *Policy) setDailyCapacity(boxes int) error {
	if boxes <= 0 {
		return errs.NewValueIsOutOfRangeError("dailyCapacity", boxes, 1, "unbounded")
	}
	p.dailyCapacity = boxes
	return nil
}

func (p *Policy) setLocation(loc *time.Location) error {
	if loc == nil {
		return errs.NewValueIsRequiredError("location")
	}
	p.location = loc
	return nil
}
