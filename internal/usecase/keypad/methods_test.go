package keypad

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"megaCalc/internal/domain"
	"megaCalc/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// deps — полный набор моков зависимостей юзкейса.
type deps struct {
	repo      *mocks.MockIOperationRepository
	cache     *mocks.MockIDisplayCache
	broker    *mocks.MockIProducer
	store     *mocks.MockISessionStore
	analytics *mocks.MockIKeystrokeAnalytics
}

func newDeps(ctrl *gomock.Controller) deps {
	return deps{
		repo:      mocks.NewMockIOperationRepository(ctrl),
		cache:     mocks.NewMockIDisplayCache(ctrl),
		broker:    mocks.NewMockIProducer(ctrl),
		store:     mocks.NewMockISessionStore(ctrl),
		analytics: mocks.NewMockIKeystrokeAnalytics(ctrl),
	}
}

func (d deps) usecase() *UseCase {
	return New(d.repo, d.cache, d.broker, d.store, d.analytics, 9, newTestLogger())
}

// Тест 1: обычная цифра — новая сессия, движок отвечает, кейстрок уходит
// в кэш, в хранилище сессий и в брокер; история не трогается.
func TestPressKey_Digit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	// Первое обращение к незнакомой сессии: юзкейс пробует восстановиться
	// из хранилища. Притворяемся, что снимка нет — сессия стартует с нуля.
	d.store.EXPECT().Load(gomock.Any(), "s1").Return(domain.SessionState{}, false, nil)
	d.cache.EXPECT().Set(gomock.Any(), "s1", "5").Return(nil)
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), []byte("s1"), gomock.Any()).Return(nil)
	// repo.SaveOperation НЕ ожидается: цифра не завершает вычисление

	uc := d.usecase()

	display, err := uc.PressKey(context.Background(), "s1", "5")

	require.NoError(t, err)
	assert.Equal(t, "5", display)
}

// Тест 2: полный флоу '=' — движок считает 5 + 3, завершённое вычисление
// сохраняется в историю с операндами, снятыми с дисплея.
func TestPressKey_EqualsFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	d.store.EXPECT().Load(gomock.Any(), "s1").Return(domain.SessionState{}, false, nil)
	d.cache.EXPECT().Set(gomock.Any(), "s1", gomock.Any()).Return(nil).AnyTimes()
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var saved domain.Operation
	d.repo.EXPECT().
		SaveOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op domain.Operation) error {
			saved = op
			return nil
		})

	uc := d.usecase()
	ctx := context.Background()

	var display string
	var err error
	for _, key := range []string{"5", "+", "3", "="} {
		display, err = uc.PressKey(ctx, "s1", key)
		require.NoError(t, err)
	}

	assert.Equal(t, "8", display)
	assert.Equal(t, "s1", saved.SessionID)
	assert.Equal(t, "5", saved.Operand0)
	assert.Equal(t, "3", saved.Operand1)
	assert.Equal(t, domain.OpAdd, saved.Operator)
	assert.Equal(t, "8", saved.Result)
}

// Тест 3: '=' при делении на ноль — в историю попадает литерал "Error".
func TestPressKey_DivisionByZeroGoesToHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	d.store.EXPECT().Load(gomock.Any(), "s1").Return(domain.SessionState{}, false, nil)
	d.cache.EXPECT().Set(gomock.Any(), "s1", gomock.Any()).Return(nil).AnyTimes()
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var saved domain.Operation
	d.repo.EXPECT().
		SaveOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op domain.Operation) error {
			saved = op
			return nil
		})

	uc := d.usecase()
	ctx := context.Background()

	var display string
	var err error
	for _, key := range []string{"5", "/", "0", "="} {
		display, err = uc.PressKey(ctx, "s1", key)
		require.NoError(t, err)
	}

	// ошибка вычисления — это значение дисплея, а не ошибка Go
	assert.Equal(t, domain.DisplayError, display)
	assert.Equal(t, domain.DisplayError, saved.Result)
	assert.Equal(t, domain.OpDiv, saved.Operator)
}

// Тест 4: клавиша не из одного символа отклоняется до обращения к зависимостям.
func TestPressKey_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	uc := d.usecase()

	_, err := uc.PressKey(context.Background(), "s1", "55")
	assert.ErrorIs(t, err, domain.ErrInvalidKey)

	_, err = uc.PressKey(context.Background(), "s1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}

// Тест 5: недоступный брокер не роняет нажатие — событие теряется с Warn.
func TestPressKey_BrokerErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	d.store.EXPECT().Load(gomock.Any(), "s1").Return(domain.SessionState{}, false, nil)
	d.cache.EXPECT().Set(gomock.Any(), "s1", "7").Return(nil)
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	uc := d.usecase()

	display, err := uc.PressKey(context.Background(), "s1", "7")

	require.NoError(t, err)
	assert.Equal(t, "7", display)
}

// Тест 6: ошибка репозитория на '=' поднимается наружу.
func TestPressKey_RepoErrorFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	d.store.EXPECT().Load(gomock.Any(), "s1").Return(domain.SessionState{}, false, nil)
	d.cache.EXPECT().Set(gomock.Any(), "s1", gomock.Any()).Return(nil).AnyTimes()
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.repo.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).Return(errors.New("pg down"))

	uc := d.usecase()
	ctx := context.Background()

	for _, key := range []string{"5", "+", "3"} {
		_, err := uc.PressKey(ctx, "s1", key)
		require.NoError(t, err)
	}

	_, err := uc.PressKey(ctx, "s1", "=")
	assert.Error(t, err)
}

// Тест 7: восстановление сессии из хранилища — движок продолжает с сохранённого места.
func TestPressKey_RestoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	// Снимок: на дисплее "3", операция '+' над "5", набор числа продолжается.
	st := domain.SessionState{
		SessionID: "s1",
		Display:   "3",
		Operand0:  "5",
		Operand1:  "0",
		Operator:  domain.OpAdd,
	}
	d.store.EXPECT().Load(gomock.Any(), "s1").Return(st, true, nil)
	d.cache.EXPECT().Set(gomock.Any(), "s1", "8").Return(nil)
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).Return(nil)

	uc := d.usecase()

	display, err := uc.PressKey(context.Background(), "s1", "=")

	require.NoError(t, err)
	assert.Equal(t, "8", display)
}

// Тест 8: Cache Hit — дисплей берётся из кэша, движок и хранилище не трогаются.
func TestDisplay_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	d.cache.EXPECT().Get(gomock.Any(), "s1").Return("42", true, nil)

	uc := d.usecase()

	display, err := uc.Display(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "42", display)
}

// Тест 9: Cache Miss — дисплей берётся с живого движка и кладётся в кэш.
func TestDisplay_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	gomock.InOrder(
		d.cache.EXPECT().Get(gomock.Any(), "s1").Return("", false, nil),
		d.store.EXPECT().Load(gomock.Any(), "s1").Return(domain.SessionState{}, false, nil),
		d.cache.EXPECT().Set(gomock.Any(), "s1", "0").Return(nil),
	)

	uc := d.usecase()

	display, err := uc.Display(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "0", display)
}

// Тест 10: история вычислений сессии.
func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIOperationRepository(ctrl)

	expected := []domain.Operation{
		{ID: 1, SessionID: "s1", Operand0: "5", Operand1: "3", Operator: "+", Result: "8"},
		{ID: 2, SessionID: "s1", Operand0: "8", Operand1: "2", Operator: "/", Result: "4"},
	}

	repo.EXPECT().GetHistory(gomock.Any(), "s1").Return(expected, nil)

	// Для History не нужны cache, broker, store, analytics — передаём nil
	uc := New(repo, nil, nil, nil, nil, 9, newTestLogger())

	result, err := uc.History(context.Background(), "s1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, expected, result)
}

// Тест 11: событие из брокера уходит в аналитику; её ошибка возвращается
// консьюмеру (сообщение будет доставлено повторно).
func TestHandleKeystrokeEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analytics := mocks.NewMockIKeystrokeAnalytics(ctrl)
	ks := domain.Keystroke{SessionID: "s1", Key: "5", Display: "5"}

	analytics.EXPECT().WriteKeystroke(gomock.Any(), ks).Return(nil)

	uc := New(nil, nil, nil, nil, analytics, 9, newTestLogger())
	require.NoError(t, uc.HandleKeystrokeEvent(context.Background(), ks))

	analytics.EXPECT().WriteKeystroke(gomock.Any(), ks).Return(errors.New("click down"))
	assert.Error(t, uc.HandleKeystrokeEvent(context.Background(), ks))
}
