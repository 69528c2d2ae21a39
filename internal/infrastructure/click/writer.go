package click

import (
	"context"
	"fmt"

	"megaCalc/internal/domain"
)

const keystrokesAnalyticsFull = "default.keystrokes_analytics"

// KeystrokeWriter записывает нажатия в ClickHouse в формате, удобном для
// аналитики (GROUP BY key, по сессиям и времени).
type KeystrokeWriter struct {
	db *Client
}

// NewKeystrokeWriter создаёт писатель нажатий для аналитики.
func NewKeystrokeWriter(db *Client) *KeystrokeWriter {
	return &KeystrokeWriter{db: db}
}

// EnsureTable создаёт таблицу нажатий для аналитики в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *KeystrokeWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id String,
			key String,
			display String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, session_id)
		PARTITION BY toYYYYMM(created_at)`,
		keystrokesAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteKeystroke реализует ports.IKeystrokeAnalytics: пишет одно нажатие в ClickHouse.
func (w *KeystrokeWriter) WriteKeystroke(ctx context.Context, ks domain.Keystroke) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, key, display, created_at) VALUES (?, ?, ?, ?)",
		keystrokesAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ks.SessionID, ks.Key, ks.Display, ks.Timestamp)
	if err != nil {
		return fmt.Errorf("insert keystroke: %w", err)
	}
	return nil
}
