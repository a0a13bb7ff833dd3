package dice

import (
	dicev1 "github.com/louisbranch/dicebot/api/dice/v1"
	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/services/dice/storage"
)

func groupsFromProto(in []*dicev1.DiceGroup) []dice.Group {
	groups := make([]dice.Group, 0, len(in))
	for _, group := range in {
		groups = append(groups, dice.Group{
			Count:    int(group.GetCount()),
			Sides:    int(group.GetSides()),
			Modifier: int(group.GetModifier()),
		})
	}
	return groups
}

func groupsToProto(groups []dice.Group) []*dicev1.DiceGroup {
	out := make([]*dicev1.DiceGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, &dicev1.DiceGroup{
			Count:    int32(group.Count),
			Sides:    int32(group.Sides),
			Modifier: int32(group.Modifier),
		})
	}
	return out
}

func outcomesToProto(results []dice.Result) []*dicev1.RollOutcome {
	out := make([]*dicev1.RollOutcome, 0, len(results))
	for _, result := range results {
		outcome := &dicev1.RollOutcome{
			Groups: make([]*dicev1.GroupRoll, 0, len(result.Groups)),
			Total:  int32(result.Total),
		}
		for _, group := range result.Groups {
			outcome.Groups = append(outcome.Groups, &dicev1.GroupRoll{
				Sides:    int32(group.Sides),
				Modifier: int32(group.Modifier),
				Results:  int32Slice(group.Rolls),
				Total:    int32(group.Total),
			})
		}
		out = append(out, outcome)
	}
	return out
}

func recordToProto(record storage.RollRecord) *dicev1.RollRecord {
	return &dicev1.RollRecord{
		RollId:    record.ID,
		Seed:      record.Seed,
		Dice:      groupsToProto(record.Groups),
		Times:     int32(record.Times),
		Outcomes:  outcomesToProto(record.Results),
		CreatedAt: record.CreatedAt,
	}
}

// int32Slice converts a slice of ints to a slice of int32.
func int32Slice(values []int) []int32 {
	if len(values) == 0 {
		return nil
	}

	converted := make([]int32, len(values))
	for i, value := range values {
		converted[i] = int32(value)
	}
	return converted
}
