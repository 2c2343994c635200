package calculation

import (
	money "github.com/rpgo/runway-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Interpolator eases a displayed value toward a target for animated counters.
// It is presentation-only; nothing it produces is fed back into a projection.
type Interpolator struct {
	Displayed decimal.Decimal
	Target    decimal.Decimal
}

// NewInterpolator starts at value with no pending motion
func NewInterpolator(value decimal.Decimal) *Interpolator {
	return &Interpolator{Displayed: value, Target: value}
}

// Retarget sets a new target, keeping the current displayed value
func (ip *Interpolator) Retarget(target decimal.Decimal) {
	ip.Target = target
}

// Step moves the displayed value a fraction (clamped to [0,1]) of the
// remaining distance and returns it.
func (ip *Interpolator) Step(fraction decimal.Decimal) decimal.Decimal {
	f := money.Clamp(fraction, decimal.Zero, decimal.NewFromInt(1))
	ip.Displayed = ip.Displayed.Add(ip.Target.Sub(ip.Displayed).Mul(f))
	return ip.Displayed
}

// Settled reports whether the displayed value is within epsilon of the target
func (ip *Interpolator) Settled(epsilon decimal.Decimal) bool {
	return ip.Target.Sub(ip.Displayed).Abs().LessThanOrEqual(epsilon)
}
