package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"megaCalc/internal/domain"
)

// ICalculatorUseCase — контракт бизнес-логики: нажатия клавиш по сессиям,
// текущий дисплей, история вычислений, обработка событий из Kafka.
type ICalculatorUseCase interface {
	PressKey(ctx context.Context, sessionID, key string) (display string, err error)
	Display(ctx context.Context, sessionID string) (string, error)
	History(ctx context.Context, sessionID string) ([]domain.Operation, error)
	HandleKeystrokeEvent(ctx context.Context, ks domain.Keystroke) error
}
