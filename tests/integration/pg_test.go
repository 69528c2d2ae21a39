package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megaCalc/internal/domain"
	"megaCalc/internal/infrastructure/pg"
	"megaCalc/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupPgDB подключается к тестовой БД, прогоняет миграцию и очищает таблицу operations.
func setupPgDB(t *testing.T) *pg.DB {
	t.Helper()

	db, err := pg.New(&pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось создать pg.DB")

	ctx := context.Background()
	require.NoError(t, pg.Migrate(ctx, db), "не удалось прогнать миграцию")

	// Очищаем таблицу перед каждым тестом
	_, err = db.ExecContext(ctx, "TRUNCATE TABLE operations RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицу operations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// =============================================================================
// Тесты PostgreSQL репозитория
// =============================================================================

func TestPgRepo_SaveOperation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewOperationRepo(db, newTestLogger())
	ctx := context.Background()

	// Завершённое вычисление: 5 + 3 = 8
	op := domain.Operation{
		SessionID: "s1",
		Operand0:  "5",
		Operand1:  "3",
		Operator:  "+",
		Result:    "8",
		Timestamp: time.Now(),
	}

	// Сохраняем
	err := repo.SaveOperation(ctx, op)
	require.NoError(t, err, "SaveOperation должен успешно сохранить")

	// Проверяем напрямую в БД
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM operations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "в таблице должна быть 1 запись")
}

func TestPgRepo_GetHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewOperationRepo(db, newTestLogger())
	ctx := context.Background()

	// Вставляем несколько вычислений одной сессии и одно — чужой
	ops := []domain.Operation{
		{SessionID: "s1", Operand0: "1", Operand1: "1", Operator: "+", Result: "2", Timestamp: time.Now().Add(-2 * time.Second)},
		{SessionID: "s1", Operand0: "2", Operand1: "2", Operator: "*", Result: "4", Timestamp: time.Now().Add(-1 * time.Second)},
		{SessionID: "s1", Operand0: "5", Operand1: "0", Operator: "/", Result: "Error", Timestamp: time.Now()},
		{SessionID: "other", Operand0: "9", Operand1: "9", Operator: "+", Result: "18", Timestamp: time.Now()},
	}

	for _, op := range ops {
		err := repo.SaveOperation(ctx, op)
		require.NoError(t, err)
	}

	// Получаем историю только своей сессии
	history, err := repo.GetHistory(ctx, "s1")
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")

	// Проверяем
	assert.Len(t, history, 3, "чужая сессия не должна попасть в выборку")

	// Проверяем сортировку (последние сначала)
	assert.Equal(t, "Error", history[0].Result, "первая запись — самая новая")
	assert.Equal(t, "4", history[1].Result)
	assert.Equal(t, "2", history[2].Result, "последняя запись — самая старая")

	// Проверяем, что ID назначены
	assert.NotZero(t, history[0].ID, "ID должен быть назначен")
}

func TestPgRepo_GetHistory_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewOperationRepo(db, newTestLogger())
	ctx := context.Background()

	// Получаем историю из пустой таблицы
	history, err := repo.GetHistory(ctx, "nobody")
	require.NoError(t, err, "GetHistory на пустой таблице не должен возвращать ошибку")
	assert.Empty(t, history, "история должна быть пустой")
}

func TestPgRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewOperationRepo(db, newTestLogger())
	ctx := context.Background()

	err := repo.Ping(ctx)
	assert.NoError(t, err, "Ping должен успешно проверить соединение")
}
