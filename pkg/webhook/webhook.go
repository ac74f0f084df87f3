// Package webhook defines provider event batches and the log entries ingestion produces.
package webhook

import (
	"encoding/json"
	"time"
)

// Category is an event type the ingestion path can summarise.
type Category string

// Categories in the order ingestion evaluates them.
const (
	CategoryNFTBid          Category = "nft_bid"
	CategoryTokenPrice      Category = "token_price"
	CategoryBorrowableToken Category = "borrowable_token"
)

// Categories lists every category in evaluation order.
var Categories = []Category{CategoryNFTBid, CategoryTokenPrice, CategoryBorrowableToken}

// LogTypeError marks a diagnostic entry written when ingestion fails.
const LogTypeError = "error"

// Payload is one batch delivered by the provider.
type Payload struct {
	AccountData []json.RawMessage `json:"accountData"`
	Events      []Event           `json:"events"`
	Slot        int64             `json:"slot"`
	BlockTime   int64             `json:"blockTime"`
}

// Event is a single provider event. Only Type is interpreted; Raw keeps the original JSON.
type Event struct {
	Type string          `json:"-"`
	Raw  json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the full object and extracts its type.
func (e *Event) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	e.Type = head.Type
	e.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the original object back out.
func (e Event) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	return json.Marshal(struct {
		Type string `json:"type"`
	}{e.Type})
}

// CountByType returns the number of events whose type exactly equals t.
func (p *Payload) CountByType(t Category) int {
	n := 0
	for _, ev := range p.Events {
		if ev.Type == string(t) {
			n++
		}
	}
	return n
}

// LogEntry is one append-only row in a user's activity log.
type LogEntry struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// CountData is the data payload of a category summary entry.
type CountData struct {
	Count int `json:"count"`
}

// IngestResult reports what one delivery did.
type IngestResult struct {
	Success    bool   `json:"success"`
	EventCount int    `json:"eventCount"`
	Message    string `json:"message"`
}

// RegisterRequest asks the provider to deliver events to WebhookURL.
type RegisterRequest struct {
	WebhookURL string `json:"webhookUrl" validate:"required"`
}

// UnregisterResponse is returned after a provider webhook is deleted.
type UnregisterResponse struct {
	Success bool `json:"success"`
}

// CategoryTotal is the summed event count of one category.
type CategoryTotal struct {
	Type  string `bun:"type"`
	Total int64  `bun:"total"`
}

// DailyTotal is the summed event count of one category on one UTC day.
type DailyTotal struct {
	Day   time.Time `bun:"day"`
	Type  string    `bun:"type"`
	Total int64     `bun:"total"`
}
