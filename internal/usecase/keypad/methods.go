package keypad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"megaCalc/internal/domain"
)

// PressKey применяет одно нажатие к сессии и возвращает дисплей.
// Нажатие '=' при выбранной операции дополнительно сохраняется в историю;
// каждый кейстрок уходит в кэш, в хранилище сессий и в брокер.
func (u *UseCase) PressKey(ctx context.Context, sessionID, key string) (string, error) {
	runes := []rune(key)
	if len(runes) != 1 {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidKey, key)
	}
	k := domain.ParseKey(runes[0])

	s := u.session(ctx, sessionID)

	s.mu.Lock()
	before := s.eng.Snapshot()
	display := s.eng.Apply(k)
	after := s.eng.Snapshot()
	s.mu.Unlock()

	now := time.Now()

	// завершённое вычисление — в историю ('=' без операции ничего не считает)
	if k.Kind == domain.KindEquals && before.Operator != "" {
		op := domain.Operation{
			SessionID: sessionID,
			Operand0:  before.Operand0,
			Operand1:  after.Operand1,
			Operator:  before.Operator,
			Result:    display,
			Timestamp: now,
		}
		if err := u.repo.SaveOperation(ctx, op); err != nil {
			return "", err
		}
		u.log.Info("operation saved", "session", sessionID, "operator", op.Operator, "result", display)
	}

	if err := u.cache.Set(ctx, sessionID, display); err != nil {
		return "", err
	}

	after.SessionID = sessionID
	after.UpdatedAt = now
	if err := u.store.Save(ctx, after); err != nil {
		return "", err
	}

	ks := domain.Keystroke{SessionID: sessionID, Key: key, Display: display, Timestamp: now}
	value, err := json.Marshal(ks)
	if err != nil {
		return "", err
	}
	if err := u.broker.Send(ctx, []byte(sessionID), value); err != nil {
		u.log.Warn("broker send", "session", sessionID, "error", err)
	} else {
		u.log.Info("keystroke published", "session", sessionID, "key", key)
	}

	return display, nil
}

// Display — текущий дисплей сессии: сначала кэш, при промахе живой движок.
func (u *UseCase) Display(ctx context.Context, sessionID string) (string, error) {
	if display, found, err := u.cache.Get(ctx, sessionID); err == nil && found {
		return display, nil
	}

	s := u.session(ctx, sessionID)
	s.mu.Lock()
	display := s.eng.Display()
	s.mu.Unlock()

	if err := u.cache.Set(ctx, sessionID, display); err != nil {
		u.log.Debug("cache refill failed", "session", sessionID, "error", err)
	}
	return display, nil
}

// History — история вычислений сессии (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context, sessionID string) ([]domain.Operation, error) {
	return u.repo.GetHistory(ctx, sessionID)
}

// HandleKeystrokeEvent вызывается консьюмером при получении сообщения из топика
// нажатий (часть ICalculatorUseCase).
func (u *UseCase) HandleKeystrokeEvent(ctx context.Context, ks domain.Keystroke) error {
	if err := u.analytics.WriteKeystroke(ctx, ks); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("keystroke stored to click", "session", ks.SessionID, "key", ks.Key, "display", ks.Display)

	return nil
}
