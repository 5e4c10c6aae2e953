package orbs

// Either returns a Pareto-maximal union of a and b: every variant from
// either set that is not strictly dominated by some other variant across
// a∪b. An empty side yields the other; both empty yields a single default
// (zero) variant, since a requirement with no cost is always satisfiable
// from nothing.
func Either(a, b Variants) Variants {
	if len(a) == 0 && len(b) == 0 {
		return Variants{Orbs{}}
	}
	if len(a) == 0 {
		return paretoMaximal(append(Variants{}, b...))
	}
	if len(b) == 0 {
		return paretoMaximal(append(Variants{}, a...))
	}
	merged := make(Variants, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return paretoMaximal(merged)
}

// EitherSingle is an optimization of Either for a single additional
// variant, used when applying a Checkpoint refill.
func EitherSingle(a Variants, b Orbs) Variants {
	return Either(a, Variants{b})
}

// Both returns the Pareto-maximal Minkowski sum of a and b: for every
// (x, y) in a×b, x+y, filtered to the variants not dominated by another
// sum. An empty side yields the other unchanged (adding nothing).
func Both(a, b Variants) Variants {
	if len(b) == 0 {
		return append(Variants{}, a...)
	}
	if len(a) == 0 {
		return append(Variants{}, b...)
	}
	product := make(Variants, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			sum := x.Add(y)
			if !containsOrbs(product, sum) {
				product = append(product, sum)
			}
		}
	}
	return paretoMaximal(product)
}

// BothSingle is an optimization of Both for a single additional variant.
func BothSingle(a Variants, b Orbs) Variants {
	if len(a) == 0 {
		return Variants{b}
	}
	product := make(Variants, 0, len(a))
	for _, x := range a {
		sum := x.Add(b)
		if !containsOrbs(product, sum) {
			product = append(product, sum)
		}
	}
	return paretoMaximal(product)
}

func containsOrbs(vs Variants, o Orbs) bool {
	for _, v := range vs {
		if v == o {
			return true
		}
	}
	return false
}

// paretoMaximal drops every variant that is dominated (≤ in both axes, <
// in at least one) by some other variant in vs, and collapses exact
// duplicates.
func paretoMaximal(vs Variants) Variants {
	out := make(Variants, 0, len(vs))
	for i, v := range vs {
		dominated := false
		for j, other := range vs {
			if i == j {
				continue
			}
			if other == v {
				if j < i {
					dominated = true // keep only the first exact duplicate
				}
				continue
			}
			if dominates(other, v) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, v)
		}
	}
	return out
}
