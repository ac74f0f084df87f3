// Package logstore persists the append-only per-user webhook activity log.
package logstore

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/helisync/pkg/webhook"
)

// DefaultListLimit applies when List is called with a non-positive limit.
const DefaultListLimit = 100

// Store appends and reads log entries.
type Store interface {
	Append(ctx context.Context, entry *webhook.LogEntry) (*webhook.LogEntry, error)
	List(ctx context.Context, userID int64, limit int) ([]*webhook.LogEntry, error)
	Count(ctx context.Context, userID int64) (int, error)
	CategoryTotals(ctx context.Context, userID int64, types []string) ([]webhook.CategoryTotal, error)
	DailyTotals(ctx context.Context, userID int64, types []string, since time.Time) ([]webhook.DailyTotal, error)
}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the log store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// Append inserts entry. A zero timestamp is assigned by the database.
func (s *pgStore) Append(ctx context.Context, entry *webhook.LogEntry) (*webhook.LogEntry, error) {
	dao := toLogDao(entry)
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append log entry: %w", err)
	}
	return toLogEntry(dao), nil
}

// List returns up to limit entries for userID, most recent first.
func (s *pgStore) List(ctx context.Context, userID int64, limit int) ([]*webhook.LogEntry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var daos []LogDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		OrderExpr(`"timestamp" DESC, id DESC`).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}

	entries := make([]*webhook.LogEntry, len(daos))
	for i := range daos {
		entries[i] = toLogEntry(&daos[i])
	}
	return entries, nil
}

// Count returns the number of entries stored for userID.
func (s *pgStore) Count(ctx context.Context, userID int64) (int, error) {
	n, err := s.db.NewSelect().
		Model((*LogDao)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count log entries: %w", err)
	}
	return n, nil
}

// CategoryTotals sums data.count per entry type.
func (s *pgStore) CategoryTotals(ctx context.Context, userID int64, types []string) ([]webhook.CategoryTotal, error) {
	var totals []webhook.CategoryTotal
	if len(types) == 0 {
		return totals, nil
	}

	err := s.db.NewSelect().
		Model((*LogDao)(nil)).
		ColumnExpr("type").
		ColumnExpr("COALESCE(SUM((data->>'count')::bigint), 0) AS total").
		Where("user_id = ?", userID).
		Where("type IN (?)", bun.In(types)).
		GroupExpr("type").
		Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("failed to sum log entries: %w", err)
	}
	return totals, nil
}

// DailyTotals sums data.count per UTC day and entry type for entries at or after since.
func (s *pgStore) DailyTotals(ctx context.Context, userID int64, types []string, since time.Time) ([]webhook.DailyTotal, error) {
	var totals []webhook.DailyTotal
	if len(types) == 0 {
		return totals, nil
	}

	err := s.db.NewSelect().
		Model((*LogDao)(nil)).
		ColumnExpr(`date_trunc('day', "timestamp" AT TIME ZONE 'UTC') AS day`).
		ColumnExpr("type").
		ColumnExpr("COALESCE(SUM((data->>'count')::bigint), 0) AS total").
		Where("user_id = ?", userID).
		Where("type IN (?)", bun.In(types)).
		Where(`"timestamp" >= ?`, since).
		GroupExpr("day, type").
		OrderExpr("day ASC").
		Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily log entries: %w", err)
	}
	return totals, nil
}
