package extension

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownKind = errors.New("unknown extension kind")
	ErrTooManyDays = errors.New("custom extension is too long")
)

// MaxCustomDays bounds a custom extension so the new end stays within
// time.Duration range.
const MaxCustomDays = 36500

type Kind string

const (
	KindHalfDay Kind = "half_day"
	KindFullDay Kind = "full_day"
	KindCustom  Kind = "custom"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindHalfDay, KindFullDay, KindCustom:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// Request is the extension the user picked. Days is only meaningful for
// KindCustom; zero, negative or above MaxCustomDays quotes to nothing.
type Request struct {
	kind Kind
	days int
}

func HalfDay() Request {
	return Request{kind: KindHalfDay}
}

func FullDay() Request {
	return Request{kind: KindFullDay}
}

func CustomDays(n int) Request {
	return Request{kind: KindCustom, days: n}
}

// ParseRequest builds a request from the raw form values. The custom day
// count is read like a text field: leading integer, anything else counts
// as zero.
func ParseRequest(kind, customDays string) (Request, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(kind)))
	switch k {
	case KindHalfDay:
		return HalfDay(), nil
	case KindFullDay:
		return FullDay(), nil
	case KindCustom:
		n := ParseDayCount(customDays)
		if n > MaxCustomDays {
			return Request{}, fmt.Errorf("%w: %d days, at most %d", ErrTooManyDays, n, MaxCustomDays)
		}
		return CustomDays(n), nil
	default:
		return Request{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

func (r Request) Kind() Kind {
	return r.kind
}

func (r Request) Days() int {
	return r.days
}

// ParseDayCount returns the leading signed integer of s, or 0.
func ParseDayCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	sign := 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > maxDayCount {
			n = maxDayCount
		}
	}
	return sign * n
}

// saturates long digit runs so the accumulator cannot wrap
const maxDayCount = 1 << 20
