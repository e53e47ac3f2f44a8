package valuation

// ApplySplit adjusts every lot for a stock split of numerator-for-denominator
// (a 2-for-1 split doubles quantities and halves prices). Per-lot cost basis
// is split-invariant: quantity × price is unchanged up to decimal division
// precision.
//
// It is a total function over its inputs; zero or negative ratios are the
// caller's to reject.
func ApplySplit(ls Lots, numerator, denominator int64) Lots {
	num, den := Q(numerator), Q(denominator)
	adjusted := make(Lots, len(ls))
	for i, l := range ls {
		l.Quantity = l.Quantity.Mul(num).Div(den)
		l.Price = l.Price.Mul(den).Div(num)
		adjusted[i] = l
	}
	return adjusted
}
