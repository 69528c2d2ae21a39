package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"megaCalc/internal/domain"
)

// IKeystrokeAnalytics — запись нажатий в хранилище для аналитики (например, ClickHouse).
type IKeystrokeAnalytics interface {
	WriteKeystroke(ctx context.Context, ks domain.Keystroke) error
}
