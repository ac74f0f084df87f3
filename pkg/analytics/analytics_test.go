package analytics

import (
	"net/url"
	"testing"

	"github.com/chainsafe/helisync/pkg/webhook"
)

func TestMetricCategory(t *testing.T) {
	cases := map[string]webhook.Category{
		MetricNFTBids:     webhook.CategoryNFTBid,
		MetricTokenPrices: webhook.CategoryTokenPrice,
		MetricLending:     webhook.CategoryBorrowableToken,
		"":                webhook.CategoryNFTBid,
		"volume":          webhook.CategoryNFTBid,
	}
	for metric, want := range cases {
		if got := MetricCategory(metric); got != want {
			t.Fatalf("MetricCategory(%q) = %s, want %s", metric, got, want)
		}
	}
}

func TestTimeframeDays(t *testing.T) {
	cases := map[string]int{"7d": 7, "30d": 30, "90d": 90, "": 7, "1y": 7}
	for tf, want := range cases {
		if got := TimeframeDays(tf); got != want {
			t.Fatalf("TimeframeDays(%q) = %d, want %d", tf, got, want)
		}
	}
}

func TestParseHistoricalQuery(t *testing.T) {
	q, err := ParseHistoricalQuery(url.Values{})
	if err != nil {
		t.Fatalf("ParseHistoricalQuery() failed: %v", err)
	}
	if q.Metric != MetricNFTBids || q.Timeframe != "7d" {
		t.Fatalf("expected defaults, got %+v", q)
	}

	q, err = ParseHistoricalQuery(url.Values{"metric": {MetricLending}, "timeframe": {"90d"}})
	if err != nil {
		t.Fatalf("ParseHistoricalQuery() failed: %v", err)
	}
	if q.Metric != MetricLending || q.Timeframe != "90d" {
		t.Fatalf("expected explicit values, got %+v", q)
	}
}
