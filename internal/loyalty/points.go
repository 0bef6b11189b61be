// Package loyalty holds the points rule for completed orders.
package loyalty

// RupiahPerPoint is the spend that earns one loyalty point.
const RupiahPerPoint = 1000

// PointsEarned returns the points credited for a completed order of the given
// total. Partial thousands are dropped; negative totals earn nothing.
func PointsEarned(totalAmount int64) int64 {
	if totalAmount <= 0 {
		return 0
	}
	return totalAmount / RupiahPerPoint
}
