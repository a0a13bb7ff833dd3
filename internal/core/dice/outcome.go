package dice

import (
	"errors"
	"fmt"
)

// ErrServiceOutcome indicates rolled results do not match the groups that
// were requested.
var ErrServiceOutcome = errors.New("roll outcome does not match request")

// ValidateResults checks results returned for groups against the outcome
// contract: one result per repetition, one group result per requested group
// with matching sides and modifier, len(Rolls) == Count, every roll within
// [1, Sides], group totals equal to sum(Rolls)+Modifier and the grand total
// equal to the sum of group totals.
func ValidateResults(groups []Group, times int, results []Result) error {
	if len(results) != times {
		return fmt.Errorf("%w: got %d repetitions, want %d", ErrServiceOutcome, len(results), times)
	}
	for r, result := range results {
		if len(result.Groups) != len(groups) {
			return fmt.Errorf("%w: repetition %d has %d groups, want %d", ErrServiceOutcome, r, len(result.Groups), len(groups))
		}
		grandTotal := 0
		for g, rolled := range result.Groups {
			want := groups[g]
			if rolled.Sides != want.Sides || rolled.Modifier != want.Modifier {
				return fmt.Errorf("%w: repetition %d group %d echoed d%d%+d, want d%d%+d", ErrServiceOutcome, r, g, rolled.Sides, rolled.Modifier, want.Sides, want.Modifier)
			}
			if len(rolled.Rolls) != want.Count {
				return fmt.Errorf("%w: repetition %d group %d has %d rolls, want %d", ErrServiceOutcome, r, g, len(rolled.Rolls), want.Count)
			}
			sum := rolled.Modifier
			for _, value := range rolled.Rolls {
				if value < 1 || value > rolled.Sides {
					return fmt.Errorf("%w: repetition %d group %d rolled %d on a d%d", ErrServiceOutcome, r, g, value, rolled.Sides)
				}
				sum += value
			}
			if rolled.Total != sum {
				return fmt.Errorf("%w: repetition %d group %d total %d, want %d", ErrServiceOutcome, r, g, rolled.Total, sum)
			}
			grandTotal += rolled.Total
		}
		if result.Total != grandTotal {
			return fmt.Errorf("%w: repetition %d total %d, want %d", ErrServiceOutcome, r, result.Total, grandTotal)
		}
	}
	return nil
}
