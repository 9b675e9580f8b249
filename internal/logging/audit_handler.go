package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kyudon/police-intake/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const auditBatchSize = 50

// AuditHandler is an slog.Handler that batches ERROR+ records into the
// audit_logs table. Known attribute keys (guild_id, actor_id, action,
// error) map to columns; everything else lands in the JSON extra blob.
type AuditHandler struct {
	db     *gorm.DB
	mu     sync.Mutex
	buffer []models.AuditLog
	ticker *time.Ticker
	done   chan struct{}
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	h := &AuditHandler{
		db:     db,
		buffer: make([]models.AuditLog, 0, auditBatchSize),
		ticker: time.NewTicker(5 * time.Second),
		done:   make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *AuditHandler) flushLoop() {
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *AuditHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]models.AuditLog, 0, auditBatchSize)
	h.mu.Unlock()

	if err := h.db.CreateInBatches(batch, auditBatchSize).Error; err != nil {
		slog.Info("failed to flush audit logs to DB", "error", err, "count", len(batch))
	}
}

func (h *AuditHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
}

// Enabled only handles ERROR and above.
func (h *AuditHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *AuditHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.AuditLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "guild_id":
			entry.GuildID = a.Value.String()
		case "actor_id":
			entry.ActorID = a.Value.String()
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	needFlush := len(h.buffer) >= auditBatchSize
	h.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *AuditHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *AuditHandler) WithGroup(name string) slog.Handler {
	return h
}
