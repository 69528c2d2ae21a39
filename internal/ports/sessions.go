package ports

//go:generate mockgen -source=sessions.go -destination=../mocks/sessions_mock.go -package=mocks

import (
	"context"

	"megaCalc/internal/domain"
)

// ISessionStore — контракт долговременного хранения состояния сессий.
// По снимку сессия восстанавливается после рестарта сервиса.
type ISessionStore interface {
	Save(ctx context.Context, st domain.SessionState) error
	Load(ctx context.Context, sessionID string) (st domain.SessionState, found bool, err error)
	Ping(ctx context.Context) error
}
