package dice

import (
	"strconv"
	"strings"
)

// Format renders rolled groups as "(x of S) + (y of S) + M = total".
//
// Groups are always joined with " + "; subtraction only shows up through a
// negative group modifier. groups must not be empty.
func Format(groups []GroupResult, grandTotal int) string {
	var b strings.Builder
	for i, group := range groups {
		if i > 0 {
			b.WriteString(" + ")
		}
		for j, roll := range group.Rolls {
			if j > 0 {
				b.WriteString(" + ")
			}
			b.WriteString("(")
			b.WriteString(strconv.Itoa(roll))
			b.WriteString(" of ")
			b.WriteString(strconv.Itoa(group.Sides))
			b.WriteString(")")
		}
		switch {
		case group.Modifier > 0:
			b.WriteString(" + ")
			b.WriteString(strconv.Itoa(group.Modifier))
		case group.Modifier < 0:
			b.WriteString(" - ")
			b.WriteString(strconv.Itoa(-group.Modifier))
		}
	}
	b.WriteString(" = ")
	b.WriteString(strconv.Itoa(grandTotal))
	return strings.TrimSpace(b.String())
}

// FormatResult renders a single repetition.
func FormatResult(result Result) string {
	return Format(result.Groups, result.Total)
}
