package car

import (
	"errors"
	"fmt"
)

var ErrInvalidRateCard = errors.New("invalid rate card")

// RateCard holds the car's price fields. A zero optional rate counts as
// absent.
type RateCard struct {
	base       Money
	discounted Money
	halfDay    Money
}

func NewRateCard(base Money, discounted, halfDay *Money) (RateCard, error) {
	rc := RateCard{base: base}
	if discounted != nil {
		rc.discounted = *discounted
	}
	if halfDay != nil {
		rc.halfDay = *halfDay
	}

	if rc.base.IsNegative() || rc.discounted.IsNegative() || rc.halfDay.IsNegative() {
		return RateCard{}, fmt.Errorf("%w: rates cannot be negative", ErrInvalidRateCard)
	}
	if rc.discounted.Minor() > rc.base.Minor() {
		return RateCard{}, fmt.Errorf("%w: discounted rate %s exceeds base rate %s", ErrInvalidRateCard, rc.discounted, rc.base)
	}
	return rc, nil
}

func (r RateCard) BaseRate() Money {
	return r.base
}

func (r RateCard) DiscountedRate() (Money, bool) {
	return r.discounted, !r.discounted.IsZero()
}

func (r RateCard) StoredHalfDayRate() (Money, bool) {
	return r.halfDay, !r.halfDay.IsZero()
}

// EffectiveRate is the discounted rate when present, the base rate otherwise.
func (r RateCard) EffectiveRate() Money {
	if !r.discounted.IsZero() {
		return r.discounted
	}
	return r.base
}

// HalfDayRate falls back to half the discounted rate, then half the base.
func (r RateCard) HalfDayRate() Money {
	if !r.halfDay.IsZero() {
		return r.halfDay
	}
	if !r.discounted.IsZero() {
		return r.discounted.Half()
	}
	return r.base.Half()
}

// DailyRate is charged once per 24-hour block. It is not derived from the
// half-day rate and the two are not cross-checked.
func (r RateCard) DailyRate() Money {
	return r.EffectiveRate()
}
