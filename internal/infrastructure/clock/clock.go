package clock

import (
	"fmt"
	"strconv"
	"time"

	"github.com/promobeats/backoffice/internal/core/ports"
)

// System is the wall-clock implementation of ports.Clock. All times are UTC.
type System struct{}

func NewSystem() System { return System{} }

func (System) Now() time.Time { return time.Now().UTC() }

func (System) Add(t time.Time, duration string) (time.Time, error) {
	d, err := Parse(duration)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(d), nil
}

// Parse reads a duration written as "<n><unit>" with unit one of s, m, h
// or d. Days are fixed 24-hour periods.
func Parse(duration string) (time.Duration, error) {
	if len(duration) < 2 {
		return 0, fmt.Errorf("invalid duration %q", duration)
	}
	n, err := strconv.Atoi(duration[:len(duration)-1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid duration %q", duration)
	}
	switch duration[len(duration)-1] {
	case 's':
		return time.Duration(n) * time.Second, nil
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid duration unit in %q", duration)
	}
}

var _ ports.Clock = System{}
