package dice

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Group
	}{
		{
			name:  "single die",
			input: "1d20",
			want:  []Group{{Count: 1, Sides: 20}},
		},
		{
			name:  "die with modifier",
			input: "1d20+5",
			want:  []Group{{Count: 1, Sides: 20, Modifier: 5}},
		},
		{
			name:  "two groups with trailing penalty",
			input: "2d6+1d4-3",
			want: []Group{
				{Count: 2, Sides: 6},
				{Count: 1, Sides: 4, Modifier: -3},
			},
		},
		{
			name:  "modifiers accumulate on the preceding group",
			input: "1d8+2+3-1",
			want:  []Group{{Count: 1, Sides: 8, Modifier: 4}},
		},
		{
			name:  "modifier between groups",
			input: "1d20+1d4+2+1d10",
			want: []Group{
				{Count: 1, Sides: 20},
				{Count: 1, Sides: 4, Modifier: 2},
				{Count: 1, Sides: 10},
			},
		},
		{
			name:  "modifiers cancel out",
			input: "3d6+2-2",
			want:  []Group{{Count: 3, Sides: 6}},
		},
		{
			name:  "leading zeros",
			input: "01d020+05",
			want:  []Group{{Count: 1, Sides: 20, Modifier: 5}},
		},
		{
			name:  "large values are not bounded",
			input: "1000d1000000+99999",
			want:  []Group{{Count: 1000, Sides: 1000000, Modifier: 99999}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNotation(tt.input)
			if err != nil {
				t.Fatalf("ParseNotation(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseNotation(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNotationInvalid(t *testing.T) {
	inputs := []string{
		"d20",
		"0d20",
		"-1d20",
		"+1d20",
		"xd20",
		"1d",
		"1d0",
		"1dx",
		"1d20d6",
		"20",
		"1d20+",
		"1d20-",
		"1d20++5",
		"1d20+-5",
		"1d20+0",
		"1d20-0",
		"1d20+x",
		"1d20-1d4",
		"1d20+5d",
		"1d20*2",
		"1d99999999999999999999999",
		"99999999999999999999999d6",
		"1d20+99999999999999999999999",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			groups, err := ParseNotation(input)
			if !errors.Is(err, ErrInvalidRoll) {
				t.Fatalf("ParseNotation(%q) error = %v, want ErrInvalidRoll", input, err)
			}
			if groups != nil {
				t.Fatalf("ParseNotation(%q) groups = %+v, want nil", input, groups)
			}
		})
	}
}

func TestParseNotationEmptyInput(t *testing.T) {
	_, err := ParseNotation("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("ParseNotation(\"\") error = %v, want ErrEmptyInput", err)
	}
	if errors.Is(err, ErrInvalidRoll) {
		t.Fatal("empty input must be distinguishable from an invalid roll")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "1d20 + 1d4 + 2", want: "1d20+1d4+2"},
		{raw: "  2d6\t-\n3 ", want: "2d6-3"},
		{raw: " 1d8 ", want: "1d8"},
		{raw: "   ", want: ""},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestTotalDiceMatchesParsedCounts(t *testing.T) {
	groups, err := ParseNotation(Normalize("2d6 + 1d4 - 3 + 10d10"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := TotalDice(groups); got != 13 {
		t.Fatalf("TotalDice() = %d, want 13", got)
	}
}

func TestTransitions(t *testing.T) {
	t.Run("plus resolves to dice", func(t *testing.T) {
		next, err := step(parseState{input: "+1d4", token: expectAddOrSubtract, groups: []Group{{Count: 1, Sides: 6}}})
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if next.token != expectDiceOrModifier || next.pos != 1 {
			t.Fatalf("got %s at %d, want %s at 1", next.token, next.pos, expectDiceOrModifier)
		}
		next, _ = step(next)
		if next.token != expectDiceCount || next.pos != 1 {
			t.Fatalf("got %s at %d, want %s at 1", next.token, next.pos, expectDiceCount)
		}
	})

	t.Run("plus resolves to modifier", func(t *testing.T) {
		next, _ := step(parseState{input: "+3-1d4", pos: 1, token: expectDiceOrModifier})
		if next.token != expectAddModifier {
			t.Fatalf("got %s, want %s", next.token, expectAddModifier)
		}
	})

	t.Run("trailing text defaults to modifier", func(t *testing.T) {
		next, _ := step(parseState{input: "+3", pos: 1, token: expectDiceOrModifier})
		if next.token != expectAddModifier {
			t.Fatalf("got %s, want %s", next.token, expectAddModifier)
		}
	})

	t.Run("minus goes to subtract modifier", func(t *testing.T) {
		next, err := step(parseState{input: "-3", token: expectAddOrSubtract, groups: []Group{{Count: 1, Sides: 6}}})
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if next.token != expectSubtractModifier {
			t.Fatalf("got %s, want %s", next.token, expectSubtractModifier)
		}
	})

	t.Run("operator rejects other characters", func(t *testing.T) {
		if _, err := step(parseState{input: "x", token: expectAddOrSubtract}); !errors.Is(err, ErrInvalidRoll) {
			t.Fatalf("step error = %v, want ErrInvalidRoll", err)
		}
	})

	t.Run("modifier does not mutate previous state", func(t *testing.T) {
		prev := parseState{input: "-3", pos: 1, token: expectSubtractModifier, groups: []Group{{Count: 1, Sides: 6}}}
		next, err := step(prev)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if next.groups[0].Modifier != -3 {
			t.Fatalf("modifier = %d, want -3", next.groups[0].Modifier)
		}
		if prev.groups[0].Modifier != 0 {
			t.Fatalf("previous state modifier = %d, want 0", prev.groups[0].Modifier)
		}
	})
}
