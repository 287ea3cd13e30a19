package booking

import "math"

const DefaultNightlyRatePerRoom = 50.0

type PriceCalculator interface {
	CalculatePrice(req BookingRequest) float64
}

type DefaultPriceCalculator struct {
	NightlyRatePerRoom float64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		NightlyRatePerRoom: DefaultNightlyRatePerRoom,
	}
}

func NewPriceCalculatorWithRate(rate float64) *DefaultPriceCalculator {
	if rate <= 0 {
		rate = DefaultNightlyRatePerRoom
	}
	return &DefaultPriceCalculator{NightlyRatePerRoom: rate}
}

func (pc *DefaultPriceCalculator) CalculatePrice(req BookingRequest) float64 {
	return float64(req.Nights()) * float64(req.RoomCount) * pc.NightlyRatePerRoom
}

// MinorUnits converts an amount into integer cents.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
