package dice

import (
	"errors"
	"math/rand"
)

// ErrMissingDice indicates a roll request had no dice groups.
var ErrMissingDice = errors.New("at least one dice group must be provided")

// ErrInvalidDiceSpec indicates a dice group has a non-positive count or sides.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// ErrInvalidTimes indicates a roll request asked for fewer than one repetition.
var ErrInvalidTimes = errors.New("roll must be repeated at least once")

// Request describes a request to roll one or more dice groups.
type Request struct {
	Groups []Group
	// Times is how many independent repetitions of the whole expression to roll.
	Times int
	Seed  int64
}

// GroupResult captures the dice rolled for a single group.
type GroupResult struct {
	Sides    int
	Modifier int
	Rolls    []int
	Total    int
}

// Result captures one repetition of a roll request.
type Result struct {
	Groups []GroupResult
	Total  int
}

// Roll rolls the request's groups Times times.
//
// # Determinism
//
// Roll is deterministic with respect to Request.Seed. Given the same Seed,
// Times and Groups (including order and values), Roll always produces the
// same results.
//
// # Ordering
//
// One Result is returned per repetition, in order. Within a Result, the
// GroupResult entries appear in the same order as Request.Groups.
//
// # Totals
//
// GroupResult.Total is the sum of its Rolls plus its Modifier.
// Result.Total is the sum of every GroupResult.Total in that repetition.
//
// # Errors
//
//   - Times must be at least one, otherwise ErrInvalidTimes is returned.
//   - At least one Group must be provided, otherwise ErrMissingDice is returned.
//   - Each Group must have Sides > 0 and Count > 0, otherwise
//     ErrInvalidDiceSpec is returned.
func Roll(request Request) ([]Result, error) {
	if request.Times <= 0 {
		return nil, ErrInvalidTimes
	}

	rng := rand.New(rand.NewSource(request.Seed))
	results := make([]Result, 0, request.Times)
	for i := 0; i < request.Times; i++ {
		result, err := RollWithRng(rng, request.Groups)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// RollWithRng rolls the groups once using a provided random source.
// This is useful when you want to control the RNG directly.
func RollWithRng(rng *rand.Rand, groups []Group) (Result, error) {
	if len(groups) == 0 {
		return Result{}, ErrMissingDice
	}

	rolled := make([]GroupResult, 0, len(groups))
	total := 0

	for _, group := range groups {
		if group.Sides <= 0 || group.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}

		rolls := make([]int, group.Count)
		groupTotal := group.Modifier
		for i := 0; i < group.Count; i++ {
			value := rollDie(rng, group.Sides)
			rolls[i] = value
			groupTotal += value
		}

		rolled = append(rolled, GroupResult{
			Sides:    group.Sides,
			Modifier: group.Modifier,
			Rolls:    rolls,
			Total:    groupTotal,
		})
		total += groupTotal
	}

	return Result{
		Groups: rolled,
		Total:  total,
	}, nil
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
