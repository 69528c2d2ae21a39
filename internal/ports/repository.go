package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"megaCalc/internal/domain"
)

// IOperationRepository — контракт сохранения и чтения завершённых вычислений.
type IOperationRepository interface {
	SaveOperation(ctx context.Context, op domain.Operation) error
	GetHistory(ctx context.Context, sessionID string) ([]domain.Operation, error)
	Ping(ctx context.Context) error
}
