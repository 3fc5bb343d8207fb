package booking

import (
	"fmt"
	"strings"
	"time"
)

// ReturnSlot adjusts a multi-day booking's end timestamp.
type ReturnSlot string

const (
	ReturnSlotNone    ReturnSlot = "none"
	ReturnSlotQuarter ReturnSlot = "quarter"
	ReturnSlotHalf    ReturnSlot = "half"
	ReturnSlotFull    ReturnSlot = "full"
)

func ParseReturnSlot(s string) (ReturnSlot, error) {
	slot := ReturnSlot(strings.ToLower(strings.TrimSpace(s)))
	if slot == "" {
		return ReturnSlotNone, nil
	}
	if !slot.IsValid() {
		return "", fmt.Errorf("%w %q", ErrUnknownReturnSlot, s)
	}
	return slot, nil
}

func (s ReturnSlot) IsValid() bool {
	switch s {
	case ReturnSlotNone, ReturnSlotQuarter, ReturnSlotHalf, ReturnSlotFull:
		return true
	default:
		return false
	}
}

// Offset is added after the whole-day shift. Full stays on the day boundary
// and None keeps the start time of day, so both add nothing.
func (s ReturnSlot) Offset() time.Duration {
	switch s {
	case ReturnSlotQuarter:
		return 6 * time.Hour
	case ReturnSlotHalf:
		return 12 * time.Hour
	default:
		return 0
	}
}

func (s ReturnSlot) String() string {
	return string(s)
}
