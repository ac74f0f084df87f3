package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/helisync/pkg/analytics"
	"github.com/chainsafe/helisync/pkg/analytics/service/mocks"
)

func TestLog_RecordsOutcome(t *testing.T) {
	ctx := context.Background()
	core, recorded := observer.New(zapcore.DebugLevel)

	inner := mocks.NewService(t)
	inner.EXPECT().Summary(ctx, int64(3)).Return(&analytics.Summary{}, nil).Once()
	inner.EXPECT().Historical(ctx, int64(3), "lending", "30d").Return(nil, errors.New("query timeout")).Once()

	svc := NewLog(inner, zap.New(core))

	if _, err := svc.Summary(ctx, 3); err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if _, err := svc.Historical(ctx, 3, "lending", "30d"); err == nil {
		t.Fatalf("expected Historical() error to pass through")
	}

	completed := recorded.FilterMessage("Summary completed").All()
	if len(completed) != 1 || completed[0].Level != zapcore.DebugLevel {
		t.Fatalf("expected one debug Summary completed entry, got %v", completed)
	}
	if completed[0].ContextMap()["service"] != serviceName {
		t.Fatalf("missing service field: %v", completed[0].ContextMap())
	}

	failed := recorded.FilterMessage("Historical failed").All()
	if len(failed) != 1 || failed[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected one error Historical failed entry, got %v", failed)
	}
	if failed[0].ContextMap()["metric"] != "lending" {
		t.Fatalf("missing metric field: %v", failed[0].ContextMap())
	}
}
