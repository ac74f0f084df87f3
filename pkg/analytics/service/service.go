package service

import (
	"context"
	"time"

	"github.com/chainsafe/helisync/pkg/analytics"
	"github.com/chainsafe/helisync/pkg/webhook"
)

// LogReader provides the aggregates analytics are computed from.
//
//go:generate mockery --name LogReader --output mocks --outpkg mocks --filename mock_log_reader.go --with-expecter
type LogReader interface {
	Count(ctx context.Context, userID int64) (int, error)
	CategoryTotals(ctx context.Context, userID int64, types []string) ([]webhook.CategoryTotal, error)
	DailyTotals(ctx context.Context, userID int64, types []string, since time.Time) ([]webhook.DailyTotal, error)
}

// Service defines the interface for dashboard analytics
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Summary(ctx context.Context, userID int64) (*analytics.Summary, error)
	Historical(ctx context.Context, userID int64, metric, timeframe string) ([]analytics.DataPoint, error)
}

type analyticsService struct {
	logs LogReader
	now  func() time.Time
}

// NewService creates a new analytics service
func NewService(logs LogReader) Service {
	return &analyticsService{
		logs: logs,
		now:  time.Now,
	}
}

func (s *analyticsService) Summary(ctx context.Context, userID int64) (*analytics.Summary, error) {
	types := make([]string, len(webhook.Categories))
	for i, c := range webhook.Categories {
		types[i] = string(c)
	}

	totals, err := s.logs.CategoryTotals(ctx, userID, types)
	if err != nil {
		return nil, err
	}
	entries, err := s.logs.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &analytics.Summary{}
	summary.IndexingStatus.LogEntries = entries
	for _, t := range totals {
		switch webhook.Category(t.Type) {
		case webhook.CategoryNFTBid:
			summary.NFTBids.Total = t.Total
		case webhook.CategoryTokenPrice:
			summary.TokenPrices.Total = t.Total
		case webhook.CategoryBorrowableToken:
			summary.LendingEvents.Total = t.Total
		default:
			continue
		}
		summary.IndexingStatus.RecordsIndexed += t.Total
	}
	return summary, nil
}

// Historical returns one point per UTC day, oldest first, ending today.
// Days without entries are reported as zero.
func (s *analyticsService) Historical(ctx context.Context, userID int64, metric, timeframe string) ([]analytics.DataPoint, error) {
	days := analytics.TimeframeDays(timeframe)
	category := analytics.MetricCategory(metric)

	today := s.now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	totals, err := s.logs.DailyTotals(ctx, userID, []string{string(category)}, since)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64, len(totals))
	for _, t := range totals {
		byDay[t.Day.UTC().Format(analytics.DateLayout)] += t.Total
	}

	points := make([]analytics.DataPoint, days)
	for i := range points {
		date := since.AddDate(0, 0, i).Format(analytics.DateLayout)
		points[i] = analytics.DataPoint{Date: date, Total: byDay[date]}
	}
	return points, nil
}
