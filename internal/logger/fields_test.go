package logger

import (
	"testing"

	"go.uber.org/zap"

	"github.com/talentwire/matchengine/internal/matching"
)

func TestStringFieldsSkipsEmptyPairs(t *testing.T) {
	fields := StringFields(
		StringField{Key: "provider", Value: "gemini"},
		StringField{Key: "  ", Value: "dropped"},
		StringField{Key: "model", Value: "   "},
		StringField{Key: " trimmed ", Value: " value "},
	)

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != "provider" || fields[0].String != "gemini" {
		t.Fatalf("unexpected first field: %+v", fields[0])
	}
	if fields[1].Key != "trimmed" || fields[1].String != "value" {
		t.Fatalf("unexpected second field: %+v", fields[1])
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	logger := WithFields(nil, zap.String("key", "value"))
	if logger == nil {
		t.Fatalf("expected a usable logger")
	}
	logger.Info("must not panic")
}

func TestWithFieldsNoFields(t *testing.T) {
	base := zap.NewNop()
	if got := WithFields(base); got != base {
		t.Fatalf("expected the original logger when no fields are given")
	}
}

func TestCommonFields(t *testing.T) {
	fields := CommonFields("gemini", "gemini-2.5-flash")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != FieldProvider || fields[1].Key != FieldModel {
		t.Fatalf("unexpected field keys: %q, %q", fields[0].Key, fields[1].Key)
	}

	if got := CommonFields("gemini", ""); len(got) != 1 {
		t.Fatalf("expected the empty model to be skipped, got %d fields", len(got))
	}
}

func TestBreakdownFields(t *testing.T) {
	if got := BreakdownFields(nil); got != nil {
		t.Fatalf("expected nil fields for a nil breakdown")
	}

	breakdown := &matching.Breakdown{Score: 83, Recommendation: "excellent"}
	fields := BreakdownFields(breakdown)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields without incompatibility, got %d", len(fields))
	}

	breakdown.Details.Incompatibility = "profil du domaine médical incompatible avec le domaine de l'offre"
	if got := BreakdownFields(breakdown); len(got) != 3 {
		t.Fatalf("expected 3 fields with incompatibility, got %d", len(got))
	}
}
