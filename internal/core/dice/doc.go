// Package dice parses dice notation, rolls dice groups, and renders rolled
// results as text.
//
// A roll expression is a left-to-right chain of dice groups ("2d6") and
// flat modifiers ("+3", "-1"). Modifiers attach to the dice group that
// precedes them:
//
//	groups, err := ParseNotation(Normalize("2d6 + 1d4 - 3"))
//	// groups == []Group{{Count: 2, Sides: 6}, {Count: 1, Sides: 4, Modifier: -3}}
//
// Roll evaluates groups with a seeded RNG and Format renders a rolled
// repetition as "(2 of 6) + (5 of 6) + (1 of 4) - 3 = 5".
package dice
