package keypad

import (
	"context"
	"log/slog"
	"sync"

	"megaCalc/internal/engine"
	"megaCalc/internal/ports"
)

// session — один живой калькулятор. Движок не имеет внутренних блокировок,
// поэтому все нажатия сессии сериализуются мьютексом.
type session struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// UseCase — бизнес-логика клавишного калькулятора: держит движки по сессиям,
// пишет историю вычислений, кэширует дисплей и публикует нажатия в брокер.
type UseCase struct {
	repo      ports.IOperationRepository
	cache     ports.IDisplayCache
	broker    ports.IProducer
	store     ports.ISessionStore
	analytics ports.IKeystrokeAnalytics
	log       *slog.Logger
	width     int

	mu       sync.Mutex
	sessions map[string]*session
}

// New создаёт юзкейс. width — ширина дисплея в цифрах (канонично 9).
func New(repo ports.IOperationRepository, cache ports.IDisplayCache, broker ports.IProducer,
	store ports.ISessionStore, analytics ports.IKeystrokeAnalytics, width int, log *slog.Logger) *UseCase {
	return &UseCase{
		repo:      repo,
		cache:     cache,
		broker:    broker,
		store:     store,
		analytics: analytics,
		log:       log,
		width:     width,
		sessions:  make(map[string]*session),
	}
}

// session возвращает живую сессию, при первом обращении восстанавливая её
// из хранилища. Недоступность хранилища не мешает начать с чистого листа.
func (u *UseCase) session(ctx context.Context, sessionID string) *session {
	u.mu.Lock()
	defer u.mu.Unlock()

	if s, ok := u.sessions[sessionID]; ok {
		return s
	}

	s := &session{eng: engine.New(u.width, u.log)}
	if u.store != nil {
		st, found, err := u.store.Load(ctx, sessionID)
		switch {
		case err != nil:
			u.log.Warn("session restore failed, starting fresh", "session", sessionID, "error", err)
		case found:
			s.eng.Restore(st)
			u.log.Info("session restored", "session", sessionID, "display", st.Display)
		}
	}
	u.sessions[sessionID] = s
	return s
}
