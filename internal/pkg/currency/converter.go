package currency

// FixedRateConverter multiplies base-currency amounts by a configured rate.
type FixedRateConverter struct {
	code string
	rate float64
}

func NewFixedRateConverter(code string, rate float64) *FixedRateConverter {
	return &FixedRateConverter{code: code, rate: rate}
}

func (c *FixedRateConverter) ToForeignCurrency(amount float64) float64 {
	return amount * c.rate
}

// Code is the ISO code of the currency amounts are converted into.
func (c *FixedRateConverter) Code() string  { return c.code }
func (c *FixedRateConverter) Rate() float64 { return c.rate }
