// Package stories defines the policy that injects the five engineered
// patterns into otherwise randomized data: the online-channel ramp, the
// showroom_3 discount/rating gap, the seasonal bed cycle, the foam-driven
// sofa margin squeeze, and the foam supplier disruption window.
//
// Every function here is pure and total over valid dates. Callers combine
// policy outputs with their own random draws; the policy itself consumes no
// randomness.
package stories

import (
	"math"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// DistParams describes a clamped normal distribution used for per-order
// discounts and ratings.
type DistParams struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Policy maps dates and channels to distributional parameters. The cutover
// dates and magnitudes come from configuration; a zero Policy is not valid,
// use Default or build one from config.
type Policy struct {
	// RelaunchDate is when the online store relaunch takes effect.
	RelaunchDate time.Time

	// CostHikeDate is when the foam price hike and supplier disruption begin.
	CostHikeDate time.Time

	// FoamSupplierID is the supplier whose reliability degrades after the
	// hike date.
	FoamSupplierID string
}

// Default returns the canonical policy for the Bella Casa dataset.
func Default() Policy {
	return Policy{
		RelaunchDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CostHikeDate:   time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		FoamSupplierID: "SUP-004",
	}
}

// OnlineWeight returns the online channel's probability weight at a date:
// 0.15 before the relaunch, then ramping by 0.065 per month to a 0.40
// plateau.
func (p Policy) OnlineWeight(date time.Time) float64 {
	if date.Before(p.RelaunchDate) {
		return 0.15
	}
	months := datagen.MonthsSince(p.RelaunchDate, date)
	growth := math.Min(0.25, float64(months)*0.065)
	return 0.15 + growth
}

// ChannelWeights returns the normalized channel probability distribution at
// a date. The online share grows with the relaunch ramp; showroom_3 always
// takes the smallest fixed share of the remainder.
func (p Policy) ChannelWeights(date time.Time) map[string]float64 {
	online := p.OnlineWeight(date)
	remaining := 1.0 - online
	return map[string]float64{
		model.ChannelShowroom1: remaining * 0.28,
		model.ChannelShowroom2: remaining * 0.25,
		model.ChannelShowroom3: remaining * 0.12,
		model.ChannelOnline:    online,
		model.ChannelWholesale: remaining * 0.35,
	}
}

// DiscountParams returns the per-order discount percentage distribution for
// a channel. Showroom 3 discounts materially deeper than every other channel.
func (p Policy) DiscountParams(channel string) DistParams {
	switch channel {
	case model.ChannelShowroom3:
		return DistParams{Mean: 12.0, Std: 3.0, Min: 5.0, Max: 22.0}
	case model.ChannelShowroom1:
		return DistParams{Mean: 5.0, Std: 2.0, Min: 0.0, Max: 12.0}
	case model.ChannelShowroom2:
		return DistParams{Mean: 7.0, Std: 2.5, Min: 0.0, Max: 14.0}
	case model.ChannelOnline:
		return DistParams{Mean: 3.0, Std: 1.5, Min: 0.0, Max: 10.0}
	default: // wholesale
		return DistParams{Mean: 6.0, Std: 2.0, Min: 0.0, Max: 12.0}
	}
}

// RatingParams returns the satisfaction rating distribution for a channel.
// Showroom 3, the deep-discount channel, also rates lowest.
func (p Policy) RatingParams(channel string) DistParams {
	switch channel {
	case model.ChannelShowroom3:
		return DistParams{Mean: 3.4, Std: 0.6, Min: 1.0, Max: 5.0}
	case model.ChannelShowroom1:
		return DistParams{Mean: 4.3, Std: 0.4, Min: 2.0, Max: 5.0}
	case model.ChannelShowroom2:
		return DistParams{Mean: 4.1, Std: 0.5, Min: 2.0, Max: 5.0}
	case model.ChannelOnline:
		return DistParams{Mean: 4.0, Std: 0.5, Min: 2.0, Max: 5.0}
	default: // wholesale
		return DistParams{Mean: 4.2, Std: 0.4, Min: 2.0, Max: 5.0}
	}
}

// BedSeasonalMultiplier follows a sine curve over the day of year, peaking
// near mid-October (~2.5) and bottoming near mid-April (~0.6).
func (p Policy) BedSeasonalMultiplier(date time.Time) float64 {
	dayOfYear := float64(date.YearDay())
	angle := 2 * math.Pi * (dayOfYear - 196.75) / 365.0
	return 1.55 + 0.95*math.Sin(angle)
}

// FoamCostMultiplier is a step function: unit foam costs rise 18% on the
// hike date.
func (p Policy) FoamCostMultiplier(date time.Time) float64 {
	if date.Before(p.CostHikeDate) {
		return 1.0
	}
	return 1.18
}

// SofaCostMultiplier lifts sofa production costs so gross margin compresses
// from 42% to 28% after the hike: (1-0.28)/(1-0.42) = 1.241.
func (p Policy) SofaCostMultiplier(date time.Time) float64 {
	if date.Before(p.CostHikeDate) {
		return 1.0
	}
	return 1.241
}

// InDisruption reports whether the foam supplier's delivery reliability is
// degraded at the given date.
func (p Policy) InDisruption(date time.Time) bool {
	return !date.Before(p.CostHikeDate)
}

// DisruptedSupplier reports whether a supplier is the one affected by the
// disruption window at the given date.
func (p Policy) DisruptedSupplier(supplierID string, date time.Time) bool {
	return supplierID == p.FoamSupplierID && p.InDisruption(date)
}
