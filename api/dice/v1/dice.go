package dicev1

import "time"

// DiceGroup is one clause of a roll: count dice with sides faces plus a flat
// modifier.
type DiceGroup struct {
	Count    int32 `json:"count"`
	Sides    int32 `json:"sides"`
	Modifier int32 `json:"modifier,omitempty"`
}

func (x *DiceGroup) GetCount() int32 {
	if x == nil {
		return 0
	}
	return x.Count
}

func (x *DiceGroup) GetSides() int32 {
	if x == nil {
		return 0
	}
	return x.Sides
}

func (x *DiceGroup) GetModifier() int32 {
	if x == nil {
		return 0
	}
	return x.Modifier
}

// RollDiceRequest asks the service to roll dice groups times times.
type RollDiceRequest struct {
	Dice []*DiceGroup `json:"dice"`
	// Times is the number of repetitions; zero means one.
	Times int32 `json:"times,omitempty"`
}

func (x *RollDiceRequest) GetDice() []*DiceGroup {
	if x == nil {
		return nil
	}
	return x.Dice
}

func (x *RollDiceRequest) GetTimes() int32 {
	if x == nil {
		return 0
	}
	return x.Times
}

// GroupRoll is the outcome of one dice group.
type GroupRoll struct {
	Sides    int32   `json:"sides"`
	Modifier int32   `json:"modifier,omitempty"`
	Results  []int32 `json:"results"`
	// Total is the sum of Results plus Modifier.
	Total int32 `json:"total"`
}

func (x *GroupRoll) GetSides() int32 {
	if x == nil {
		return 0
	}
	return x.Sides
}

func (x *GroupRoll) GetModifier() int32 {
	if x == nil {
		return 0
	}
	return x.Modifier
}

func (x *GroupRoll) GetResults() []int32 {
	if x == nil {
		return nil
	}
	return x.Results
}

func (x *GroupRoll) GetTotal() int32 {
	if x == nil {
		return 0
	}
	return x.Total
}

// RollOutcome is one repetition of a roll request.
type RollOutcome struct {
	Groups []*GroupRoll `json:"groups"`
	Total  int32        `json:"total"`
}

func (x *RollOutcome) GetGroups() []*GroupRoll {
	if x == nil {
		return nil
	}
	return x.Groups
}

func (x *RollOutcome) GetTotal() int32 {
	if x == nil {
		return 0
	}
	return x.Total
}

// RollDiceResponse carries one outcome per requested repetition.
type RollDiceResponse struct {
	RollId   string         `json:"roll_id"`
	Seed     int64          `json:"seed"`
	Outcomes []*RollOutcome `json:"outcomes"`
}

func (x *RollDiceResponse) GetRollId() string {
	if x == nil {
		return ""
	}
	return x.RollId
}

func (x *RollDiceResponse) GetSeed() int64 {
	if x == nil {
		return 0
	}
	return x.Seed
}

func (x *RollDiceResponse) GetOutcomes() []*RollOutcome {
	if x == nil {
		return nil
	}
	return x.Outcomes
}

// GetRollRequest looks up a previously recorded roll.
type GetRollRequest struct {
	RollId string `json:"roll_id"`
}

func (x *GetRollRequest) GetRollId() string {
	if x == nil {
		return ""
	}
	return x.RollId
}

// RollRecord is a recorded roll with everything needed to replay it.
type RollRecord struct {
	RollId    string         `json:"roll_id"`
	Seed      int64          `json:"seed"`
	Dice      []*DiceGroup   `json:"dice"`
	Times     int32          `json:"times"`
	Outcomes  []*RollOutcome `json:"outcomes"`
	CreatedAt time.Time      `json:"created_at"`
}

func (x *RollRecord) GetRollId() string {
	if x == nil {
		return ""
	}
	return x.RollId
}

func (x *RollRecord) GetSeed() int64 {
	if x == nil {
		return 0
	}
	return x.Seed
}

func (x *RollRecord) GetDice() []*DiceGroup {
	if x == nil {
		return nil
	}
	return x.Dice
}

func (x *RollRecord) GetTimes() int32 {
	if x == nil {
		return 0
	}
	return x.Times
}

func (x *RollRecord) GetOutcomes() []*RollOutcome {
	if x == nil {
		return nil
	}
	return x.Outcomes
}

func (x *RollRecord) GetCreatedAt() time.Time {
	if x == nil {
		return time.Time{}
	}
	return x.CreatedAt
}
