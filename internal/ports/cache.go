package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import "context"

// IDisplayCache — контракт кэша текущего дисплея. Ключ — сессия,
// значение — строка дисплея после последнего нажатия.
type IDisplayCache interface {
	Get(ctx context.Context, sessionID string) (display string, found bool, err error)
	Set(ctx context.Context, sessionID, display string) error
}
