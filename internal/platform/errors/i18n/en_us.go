package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDiceMissing       = "DICE_MISSING"
	CodeDiceInvalidSpec   = "DICE_INVALID_SPEC"
	CodeDiceLimitExceeded = "DICE_LIMIT_EXCEEDED"
	CodeRollTimesInvalid  = "ROLL_TIMES_INVALID"
	CodeRollIDEmpty       = "ROLL_ID_EMPTY"
	CodeNotFound          = "NOT_FOUND"
)

var enUS = map[Code]string{
	CodeDiceMissing:       "At least one die must be provided.",
	CodeDiceInvalidSpec:   "Dice must have a positive count and number of sides.",
	CodeDiceLimitExceeded: "That roll exceeds the {{.Limit}} limit of {{.Max}}.",
	CodeRollTimesInvalid:  "A roll can be repeated between 1 and {{.Max}} times.",
	CodeRollIDEmpty:       "A roll id is required.",
	CodeNotFound:          "The requested {{.Resource}} was not found.",
}
