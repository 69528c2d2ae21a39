package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megaCalc/internal/domain"
	"megaCalc/internal/infrastructure/click"
	"megaCalc/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupKeystrokeWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupKeystrokeWriter(t *testing.T) (*click.KeystrokeWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewKeystrokeWriter(client)

	// Создаём таблицу
	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	// Очищаем таблицу перед тестом
	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.keystrokes_analytics")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

// =============================================================================
// Тест ClickHouse writer
// =============================================================================

func TestKeystrokeWriter_WriteKeystroke(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupKeystrokeWriter(t)
	ctx := context.Background()

	// Пишем нажатия одной сессии
	keystrokes := []domain.Keystroke{
		{SessionID: "s1", Key: "5", Display: "5", Timestamp: time.Now().Add(-2 * time.Second)},
		{SessionID: "s1", Key: "+", Display: "5", Timestamp: time.Now().Add(-1 * time.Second)},
		{SessionID: "s1", Key: "3", Display: "3", Timestamp: time.Now()},
	}
	for _, ks := range keystrokes {
		require.NoError(t, writer.WriteKeystroke(ctx, ks), "WriteKeystroke должен успешно записать")
	}

	// Проверяем количество записей
	var count uint64
	err := client.DB().QueryRowContext(ctx,
		"SELECT count() FROM default.keystrokes_analytics WHERE session_id = ?", "s1").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count, "в таблице должно быть 3 нажатия")
}

func TestKeystrokeWriter_EnsureTableIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, _ := setupKeystrokeWriter(t)
	ctx := context.Background()

	// Повторный вызов не должен падать (CREATE TABLE IF NOT EXISTS)
	assert.NoError(t, writer.EnsureTable(ctx))
	assert.NoError(t, writer.EnsureTable(ctx))
}
