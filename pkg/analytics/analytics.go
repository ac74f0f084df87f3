// Package analytics defines the dashboard aggregates derived from a user's activity log.
package analytics

import (
	"fmt"
	"net/url"

	"github.com/creasty/defaults"

	"github.com/chainsafe/helisync/pkg/webhook"
)

// Metric names accepted by the historical endpoint.
const (
	MetricNFTBids     = "nft-bids"
	MetricTokenPrices = "token-prices"
	MetricLending     = "lending"
)

// DateLayout formats historical data points.
const DateLayout = "2006-01-02"

// MetricCategory maps a metric name to the log category it aggregates.
// Unknown metrics fall back to NFT bids.
func MetricCategory(metric string) webhook.Category {
	switch metric {
	case MetricTokenPrices:
		return webhook.CategoryTokenPrice
	case MetricLending:
		return webhook.CategoryBorrowableToken
	default:
		return webhook.CategoryNFTBid
	}
}

// TimeframeDays parses 7d, 30d or 90d. Anything else means 7 days.
func TimeframeDays(timeframe string) int {
	switch timeframe {
	case "30d":
		return 30
	case "90d":
		return 90
	default:
		return 7
	}
}

// HistoricalQuery holds the historical endpoint's query parameters.
type HistoricalQuery struct {
	Metric    string `default:"nft-bids"`
	Timeframe string `default:"7d"`
}

// ParseHistoricalQuery reads metric and timeframe; absent parameters take the tag defaults.
func ParseHistoricalQuery(values url.Values) (HistoricalQuery, error) {
	q := HistoricalQuery{
		Metric:    values.Get("metric"),
		Timeframe: values.Get("timeframe"),
	}
	if err := defaults.Set(&q); err != nil {
		return q, fmt.Errorf("failed to apply query defaults: %w", err)
	}
	return q, nil
}

// Total wraps a single count.
type Total struct {
	Total int64 `json:"total"`
}

// IndexingStatus describes how much has been recorded for the user overall.
type IndexingStatus struct {
	RecordsIndexed int64 `json:"recordsIndexed"`
	LogEntries     int   `json:"logEntries"`
}

// Summary is the dashboard overview.
type Summary struct {
	NFTBids        Total          `json:"nftBids"`
	TokenPrices    Total          `json:"tokenPrices"`
	LendingEvents  Total          `json:"lendingEvents"`
	IndexingStatus IndexingStatus `json:"indexingStatus"`
}

// DataPoint is one day of a historical series.
type DataPoint struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}
