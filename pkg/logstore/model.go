package logstore

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/helisync/pkg/webhook"
)

// LogDao maps to the 'webhook_logs' table.
type LogDao struct {
	bun.BaseModel `bun:"table:webhook_logs,alias:wl"`
	ID            int64           `bun:"id,pk,autoincrement"`
	UserID        int64           `bun:"user_id,notnull"`
	Type          string          `bun:"type,notnull,type:text"`
	Message       string          `bun:"message,notnull,type:text"`
	Data          json.RawMessage `bun:"data,type:jsonb,nullzero"`
	Timestamp     time.Time       `bun:"timestamp,nullzero,notnull,default:current_timestamp"`
}

func toLogDao(e *webhook.LogEntry) *LogDao {
	return &LogDao{
		UserID:    e.UserID,
		Type:      e.Type,
		Message:   e.Message,
		Data:      e.Data,
		Timestamp: e.Timestamp,
	}
}

func toLogEntry(dao *LogDao) *webhook.LogEntry {
	return &webhook.LogEntry{
		ID:        dao.ID,
		UserID:    dao.UserID,
		Type:      dao.Type,
		Message:   dao.Message,
		Data:      dao.Data,
		Timestamp: dao.Timestamp,
	}
}
