package dice

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	dicev1 "github.com/louisbranch/dicebot/api/dice/v1"
	"github.com/louisbranch/dicebot/internal/core/dice"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	"github.com/louisbranch/dicebot/internal/platform/id"
	"github.com/louisbranch/dicebot/internal/random"
	"github.com/louisbranch/dicebot/internal/services/dice/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// LocaleHeader is the incoming metadata key carrying the caller's locale.
const LocaleHeader = dicev1.LocaleHeader

// Limits bounds the size of a single roll request.
type Limits struct {
	// MaxDice caps the dice rolled per repetition.
	MaxDice int
	// MaxSides caps the faces of any single die.
	MaxSides int
	// MaxTimes caps the repetitions per request.
	MaxTimes int
	// MaxModifier caps the magnitude of any group modifier.
	MaxModifier int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxDice: 100, MaxSides: 1000, MaxTimes: 10, MaxModifier: 10000}
}

// Service implements dicev1.DiceServiceServer.
type Service struct {
	dicev1.UnimplementedDiceServiceServer
	store    storage.RollStore
	limits   Limits
	seedFunc random.SeedFunc        // Generates per-request random seeds.
	idFunc   func() (string, error) // Generates roll ids.
	clock    func() time.Time
}

// NewService creates a dice service backed by store.
func NewService(store storage.RollStore, limits Limits) *Service {
	return &Service{
		store:    store,
		limits:   limits,
		seedFunc: random.NewSeed,
		idFunc:   id.NewID,
		clock:    time.Now,
	}
}

// RollDice handles dice roll requests.
func (s *Service) RollDice(ctx context.Context, in *dicev1.RollDiceRequest) (*dicev1.RollDiceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "roll dice request is required")
	}
	if s.store == nil {
		return nil, status.Error(codes.Internal, "roll store is not configured")
	}
	if s.seedFunc == nil {
		return nil, status.Error(codes.Internal, "seed generator is not configured")
	}
	locale := localeFromContext(ctx)

	times := int(in.GetTimes())
	if times == 0 {
		times = 1
	}
	groups := groupsFromProto(in.GetDice())
	if err := s.validate(groups, times); err != nil {
		return nil, apperrors.HandleError(err, locale)
	}

	seed, err := s.seedFunc()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to generate seed: %v", err)
	}

	results, err := dice.Roll(dice.Request{Groups: groups, Times: times, Seed: seed})
	if err != nil {
		return nil, apperrors.HandleError(rollError(err), locale)
	}

	rollID, err := s.idFunc()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to generate roll id: %v", err)
	}
	record := storage.RollRecord{
		ID:        rollID,
		Seed:      seed,
		Groups:    groups,
		Times:     times,
		Results:   results,
		CreatedAt: s.clock().UTC(),
	}
	if err := s.store.PutRoll(ctx, record); err != nil {
		log.Printf("record roll %s: %v", rollID, err)
		return nil, status.Error(codes.Internal, "failed to record roll")
	}

	return &dicev1.RollDiceResponse{
		RollId:   rollID,
		Seed:     seed,
		Outcomes: outcomesToProto(results),
	}, nil
}

// GetRoll returns a recorded roll by id.
func (s *Service) GetRoll(ctx context.Context, in *dicev1.GetRollRequest) (*dicev1.RollRecord, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get roll request is required")
	}
	if s.store == nil {
		return nil, status.Error(codes.Internal, "roll store is not configured")
	}
	locale := localeFromContext(ctx)

	rollID := strings.TrimSpace(in.GetRollId())
	if rollID == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeRollIDEmpty, "roll id is required"), locale)
	}

	record, err := s.store.GetRoll(ctx, rollID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.HandleError(apperrors.WithMetadata(
				apperrors.CodeNotFound,
				fmt.Sprintf("roll %s not found", rollID),
				map[string]string{"Resource": "roll"},
			), locale)
		}
		log.Printf("get roll %s: %v", rollID, err)
		return nil, status.Error(codes.Internal, "failed to get roll")
	}

	return recordToProto(record), nil
}

// validate applies the configured limits before any dice are rolled.
func (s *Service) validate(groups []dice.Group, times int) error {
	if times < 1 || (s.limits.MaxTimes > 0 && times > s.limits.MaxTimes) {
		return apperrors.WithMetadata(
			apperrors.CodeRollTimesInvalid,
			fmt.Sprintf("times %d outside [1, %d]", times, s.limits.MaxTimes),
			map[string]string{"Max": strconv.Itoa(s.limits.MaxTimes)},
		)
	}
	if len(groups) == 0 {
		return rollError(dice.ErrMissingDice)
	}
	for _, group := range groups {
		if group.Count <= 0 || group.Sides <= 0 {
			return rollError(dice.ErrInvalidDiceSpec)
		}
		if s.limits.MaxSides > 0 && group.Sides > s.limits.MaxSides {
			return limitError("sides", group.Sides, s.limits.MaxSides)
		}
		if s.limits.MaxModifier > 0 && abs(group.Modifier) > s.limits.MaxModifier {
			return limitError("modifier", abs(group.Modifier), s.limits.MaxModifier)
		}
	}
	if total := dice.TotalDice(groups); s.limits.MaxDice > 0 && total > s.limits.MaxDice {
		return limitError("dice", total, s.limits.MaxDice)
	}
	if extent, ok := wireExtent(groups); !ok {
		return limitError("total", int(extent), math.MaxInt32)
	}
	return nil
}

// wireExtent returns the largest magnitude any total can reach and whether
// it fits the int32 wire fields.
func wireExtent(groups []dice.Group) (int64, bool) {
	var grand int64
	for _, group := range groups {
		grand += int64(group.Count)*int64(group.Sides) + int64(abs(group.Modifier))
		if grand > math.MaxInt32 {
			return grand, false
		}
	}
	return grand, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func limitError(limit string, got, max int) error {
	return apperrors.WithMetadata(
		apperrors.CodeDiceLimitExceeded,
		fmt.Sprintf("%s %d exceeds limit %d", limit, got, max),
		map[string]string{"Limit": limit, "Max": strconv.Itoa(max)},
	)
}

// rollError maps roller sentinels to domain errors.
func rollError(err error) error {
	switch {
	case errors.Is(err, dice.ErrMissingDice):
		return apperrors.Wrap(apperrors.CodeDiceMissing, err.Error(), err)
	case errors.Is(err, dice.ErrInvalidDiceSpec):
		return apperrors.Wrap(apperrors.CodeDiceInvalidSpec, err.Error(), err)
	case errors.Is(err, dice.ErrInvalidTimes):
		return apperrors.Wrap(apperrors.CodeRollTimesInvalid, err.Error(), err)
	default:
		return err
	}
}

func localeFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(LocaleHeader)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
