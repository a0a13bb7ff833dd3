package integration

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	dicev1 "github.com/louisbranch/dicebot/api/dice/v1"
	"github.com/louisbranch/dicebot/internal/core/dice"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	"github.com/louisbranch/dicebot/internal/platform/timeouts"
	"google.golang.org/grpc/metadata"
)

// DiceClient rolls parsed dice groups through the dice service.
type DiceClient struct {
	client  dicev1.DiceServiceClient
	timeout time.Duration
}

// NewDiceClient wraps a generated dice service client.
func NewDiceClient(client dicev1.DiceServiceClient) *DiceClient {
	return &DiceClient{client: client, timeout: timeouts.GRPCRequest}
}

// Roll asks the dice service to roll groups times times.
func (c *DiceClient) Roll(ctx context.Context, groups []dice.Group, times int, locale string) ([]dice.Result, error) {
	if c == nil || c.client == nil {
		return nil, diceError(errors.New("dice client is not configured"))
	}
	if locale = strings.TrimSpace(locale); locale != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, dicev1.LocaleHeader, locale)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	request := &dicev1.RollDiceRequest{
		Dice:  make([]*dicev1.DiceGroup, 0, len(groups)),
		Times: int32(times),
	}
	for _, group := range groups {
		if !fitsInt32(group.Count, group.Sides, group.Modifier) {
			return nil, &ServiceError{
				Service: "dice",
				Code:    apperrors.CodeDiceLimitExceeded,
				Err:     fmt.Errorf("group %dd%d%+d does not fit the wire format", group.Count, group.Sides, group.Modifier),
			}
		}
		request.Dice = append(request.Dice, &dicev1.DiceGroup{
			Count:    int32(group.Count),
			Sides:    int32(group.Sides),
			Modifier: int32(group.Modifier),
		})
	}

	response, err := c.client.RollDice(ctx, request)
	if err != nil {
		return nil, &ServiceError{Service: "dice", Code: apperrors.CodeFromStatus(err), Err: err}
	}

	return resultsFromProto(response.GetOutcomes()), nil
}

func fitsInt32(values ...int) bool {
	for _, value := range values {
		if value < math.MinInt32 || value > math.MaxInt32 {
			return false
		}
	}
	return true
}

func diceError(err error) error {
	return &ServiceError{Service: "dice", Err: err}
}

func resultsFromProto(outcomes []*dicev1.RollOutcome) []dice.Result {
	results := make([]dice.Result, 0, len(outcomes))
	for _, outcome := range outcomes {
		result := dice.Result{
			Groups: make([]dice.GroupResult, 0, len(outcome.GetGroups())),
			Total:  int(outcome.GetTotal()),
		}
		for _, group := range outcome.GetGroups() {
			rolls := make([]int, 0, len(group.GetResults()))
			for _, value := range group.GetResults() {
				rolls = append(rolls, int(value))
			}
			result.Groups = append(result.Groups, dice.GroupResult{
				Sides:    int(group.GetSides()),
				Modifier: int(group.GetModifier()),
				Rolls:    rolls,
				Total:    int(group.GetTotal()),
			})
		}
		results = append(results, result)
	}
	return results
}
