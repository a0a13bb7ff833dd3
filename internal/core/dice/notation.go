package dice

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrEmptyInput indicates there was nothing to parse after normalization.
var ErrEmptyInput = errors.New("no roll provided")

// ErrInvalidRoll indicates the notation could not be parsed into dice groups.
//
// Every malformed expression maps to this one error so callers can answer
// with a single message regardless of which rule failed.
var ErrInvalidRoll = errors.New("invalid roll notation")

// Group is one clause of a roll expression: Count dice with Sides faces plus
// a flat Modifier accumulated from the trailing +N/-N terms.
type Group struct {
	Count    int
	Sides    int
	Modifier int
}

// TotalDice returns the number of individual dice the groups ask for.
func TotalDice(groups []Group) int {
	total := 0
	for _, group := range groups {
		total += group.Count
	}
	return total
}

// Normalize removes every whitespace rune from raw user input.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// tokenState names the token a parser expects next.
type tokenState int

const (
	expectDiceCount tokenState = iota
	expectAddOrSubtract
	expectDiceOrModifier
	expectAddModifier
	expectSubtractModifier
)

func (s tokenState) String() string {
	switch s {
	case expectDiceCount:
		return "dice count"
	case expectAddOrSubtract:
		return "add or subtract"
	case expectDiceOrModifier:
		return "dice or modifier"
	case expectAddModifier:
		return "add modifier"
	case expectSubtractModifier:
		return "subtract modifier"
	default:
		return "unknown"
	}
}

// parseState is the transient scan state of a single ParseNotation call.
type parseState struct {
	input  string
	pos    int
	token  tokenState
	groups []Group
}

func (s parseState) done() bool {
	return s.pos >= len(s.input)
}

// ParseNotation parses normalized dice notation such as "2d6+1d4-3" into
// ordered dice groups.
//
// The input must already be free of whitespace (see Normalize). An empty
// input returns ErrEmptyInput; any other failure returns ErrInvalidRoll.
// The parser does not bound count, sides, or modifier magnitudes.
func ParseNotation(input string) ([]Group, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	state := parseState{input: input, token: expectDiceCount}
	for !state.done() {
		next, err := step(state)
		if err != nil {
			return nil, err
		}
		state = next
	}

	// Only a completed term may end the expression; a dangling operator
	// leaves the parser expecting something else.
	if state.token != expectAddOrSubtract {
		return nil, ErrInvalidRoll
	}
	return state.groups, nil
}

// step applies the transition for the current token state.
func step(state parseState) (parseState, error) {
	switch state.token {
	case expectDiceCount:
		return parseDice(state)
	case expectAddOrSubtract:
		return parseOperator(state)
	case expectDiceOrModifier:
		return resolveTerm(state), nil
	case expectAddModifier, expectSubtractModifier:
		return parseModifier(state)
	default:
		return state, ErrInvalidRoll
	}
}

// parseDice consumes "<count>d<sides>" and appends a new group.
func parseDice(state parseState) (parseState, error) {
	token, pos := scanUntil(state.input, state.pos, "d")
	count, ok := positiveInt(token)
	if !ok {
		return state, ErrInvalidRoll
	}
	if pos < len(state.input) {
		pos++
	}

	token, pos = scanUntil(state.input, pos, "+-")
	sides, ok := positiveInt(token)
	if !ok {
		return state, ErrInvalidRoll
	}

	groups := make([]Group, len(state.groups), len(state.groups)+1)
	copy(groups, state.groups)
	state.groups = append(groups, Group{Count: count, Sides: sides})
	state.pos = pos
	state.token = expectAddOrSubtract
	return state, nil
}

// parseOperator consumes exactly one '+' or '-'.
func parseOperator(state parseState) (parseState, error) {
	switch state.input[state.pos] {
	case '+':
		state.token = expectDiceOrModifier
	case '-':
		state.token = expectSubtractModifier
	default:
		return state, ErrInvalidRoll
	}
	state.pos++
	return state, nil
}

// resolveTerm looks ahead without consuming to decide whether the term after
// a '+' is another dice group or a flat modifier.
func resolveTerm(state parseState) parseState {
	state.token = expectAddModifier
	if i := strings.IndexAny(state.input[state.pos:], "d+-"); i >= 0 && state.input[state.pos+i] == 'd' {
		state.token = expectDiceCount
	}
	return state
}

// parseModifier consumes a modifier magnitude and folds it into the most
// recent group.
func parseModifier(state parseState) (parseState, error) {
	token, pos := scanUntil(state.input, state.pos, "+-")
	magnitude, ok := positiveInt(token)
	if !ok || len(state.groups) == 0 {
		return state, ErrInvalidRoll
	}
	if state.token == expectSubtractModifier {
		magnitude = -magnitude
	}

	groups := make([]Group, len(state.groups))
	copy(groups, state.groups)
	groups[len(groups)-1].Modifier += magnitude
	state.groups = groups
	state.pos = pos
	state.token = expectAddOrSubtract
	return state, nil
}

// scanUntil returns input[from:i] and i, where i is the index of the first
// byte in stops at or after from, or len(input).
func scanUntil(input string, from int, stops string) (string, int) {
	i := strings.IndexAny(input[from:], stops)
	if i < 0 {
		return input[from:], len(input)
	}
	return input[from : from+i], from + i
}

// positiveInt parses a token made only of ASCII digits into a value above zero.
func positiveInt(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(token)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
