package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("roll: %w", New(CodeDiceMissing, "no dice"))
	if !stderrors.Is(err, New(CodeDiceMissing, "other message")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeNotFound, "no dice")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodeUnknown, "record roll", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeDiceMissing, codes.InvalidArgument},
		{CodeDiceInvalidSpec, codes.InvalidArgument},
		{CodeDiceLimitExceeded, codes.InvalidArgument},
		{CodeRollTimesInvalid, codes.InvalidArgument},
		{CodeRollIDEmpty, codes.InvalidArgument},
		{CodeNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Errorf("%s.GRPCCode() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestHandleErrorAttachesDetails(t *testing.T) {
	err := HandleError(WithMetadata(CodeDiceLimitExceeded, "too many dice", map[string]string{"Limit": "dice", "Max": "100"}), "")
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", st.Code())
	}
	if st.Message() != "too many dice" {
		t.Fatalf("expected internal message, got %q", st.Message())
	}

	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		if msg, ok := detail.(*errdetails.LocalizedMessage); ok {
			localized = msg
		}
	}
	if localized == nil {
		t.Fatal("expected localized message detail")
	}
	if localized.GetLocale() != "en-US" {
		t.Fatalf("expected en-US locale, got %q", localized.GetLocale())
	}
	if localized.GetMessage() != "That roll exceeds the dice limit of 100." {
		t.Fatalf("unexpected localized message %q", localized.GetMessage())
	}
	if got := CodeFromStatus(err); got != CodeDiceLimitExceeded {
		t.Fatalf("CodeFromStatus() = %s, want %s", got, CodeDiceLimitExceeded)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	err := HandleError(stderrors.New("boom"), "en-US")
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
	if CodeFromStatus(err) != CodeUnknown {
		t.Fatal("expected unknown code without details")
	}
	if HandleError(nil, "") != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(fmt.Errorf("wrap: %w", New(CodeNotFound, "missing"))) != CodeNotFound {
		t.Fatal("expected wrapped code")
	}
	if !IsCode(New(CodeRollIDEmpty, "empty"), CodeRollIDEmpty) {
		t.Fatal("expected IsCode match")
	}
	if GetCode(stderrors.New("plain")) != CodeUnknown {
		t.Fatal("expected unknown code for plain error")
	}
}
