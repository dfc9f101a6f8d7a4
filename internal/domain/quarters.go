package domain

import "fmt"

// Quarters is an hour amount in fixed-point quarter-hour units (hours x 4).
// Accumulating in integer units keeps 0.25-increment sums exact; conversion
// to decimal hours happens only at the presentation edge.
type Quarters int64

// QuartersFromHours converts a decimal hour value to Quarters.
// The value must be a positive exact multiple of 0.25. Violating values are
// rejected, never rounded.
func QuartersFromHours(hours float64) (Quarters, error) {
	q := hours * 4
	if q != float64(int64(q)) {
		return 0, fmt.Errorf("hours %v is not a multiple of 0.25", hours)
	}
	if q <= 0 {
		return 0, fmt.Errorf("hours %v is not positive", hours)
	}
	return Quarters(int64(q)), nil
}

// IsQuarterHours reports whether hours is a positive exact multiple of 0.25.
func IsQuarterHours(hours float64) bool {
	_, err := QuartersFromHours(hours)
	return err == nil
}

// Hours returns the decimal hour value.
func (q Quarters) Hours() float64 {
	return float64(q) / 4
}

// String formats the value as decimal hours with two decimal places.
func (q Quarters) String() string {
	return fmt.Sprintf("%.2f", q.Hours())
}
