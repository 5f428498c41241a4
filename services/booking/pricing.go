package booking

import "math"

// MinorUnitAmount converts an hourly price into the integer
// minor-currency-unit total Stripe expects, prorated by booked minutes.
// Prices are always read from the court record server-side; a
// client-supplied amount is never trusted.
func MinorUnitAmount(pricePerHour float64, durationMinutes int) int64 {
	total := pricePerHour * float64(durationMinutes) / 60.0
	return int64(math.Round(total * 100))
}
