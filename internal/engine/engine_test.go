package engine

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megaCalc/internal/domain"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// press прогоняет строку посимвольно через движок и возвращает последний дисплей.
func press(e *Engine, keys string) string {
	var out string
	for _, r := range keys {
		out = e.Apply(domain.ParseKey(r))
	}
	return out
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(9, newTestLogger())
}

func TestEngine_InitialState(t *testing.T) {
	e := newEngine(t)

	st := e.Snapshot()
	assert.Equal(t, "0", st.Display)
	assert.Equal(t, "0", st.Operand0)
	assert.Equal(t, "0", st.Operand1)
	assert.Equal(t, "", st.Operator)
	assert.False(t, st.OperandHeld)
}

func TestEngine_DigitEntry(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "5", press(e, "5"))
	assert.Equal(t, "53", press(e, "3"))
	assert.Equal(t, "537", press(e, "7"))
}

func TestEngine_DigitReplacesLoneZero(t *testing.T) {
	e := newEngine(t)

	// первый ввод заменяет стартовый "0", а не дописывается к нему
	assert.Equal(t, "8", press(e, "8"))
}

func TestEngine_DigitLimit(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "123456789", press(e, "123456789"))
	// десятая цифра молча отбрасывается
	assert.Equal(t, "123456789", press(e, "0"))
}

// Лимит считает только цифры: знак и точка места не занимают.
func TestEngine_DigitLimitExcludesSignAndDot(t *testing.T) {
	e := newEngine(t)

	press(e, "n")
	assert.Equal(t, "-12345.6789", press(e, "12345.6789"))
	assert.Equal(t, "-12345.6789", press(e, "1"))
}

func TestEngine_DigitLimit_NarrowWidths(t *testing.T) {
	for width := 1; width <= 5; width++ {
		e := New(width, newTestLogger())
		got := press(e, "123456789")
		assert.Equal(t, "123456789"[:width], got, "width=%d", width)
	}
}

func TestEngine_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{name: "сложение", keys: "5+3=", want: "8"},
		{name: "вычитание", keys: "9-4=", want: "5"},
		{name: "умножение", keys: "6*7=", want: "42"},
		{name: "деление", keys: "8/2=", want: "4"},
		{name: "деление на ноль", keys: "5/0=", want: "Error"},
		{name: "дробный результат", keys: "1.5+2.25=", want: "3.75"},
		{name: "отрицательный результат", keys: "4-9=", want: "-5"},
		{name: "многозначные операнды", keys: "12*12=", want: "144"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			assert.Equal(t, tt.want, press(e, tt.keys))
		})
	}
}

// Повторный '=' без нового числа применяет ту же дельту к накопленному результату.
func TestEngine_RepeatedEquals(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "8", press(e, "5+3="))
	assert.Equal(t, "11", press(e, "="))
	assert.Equal(t, "14", press(e, "="))
}

// Операция поверх операции: до '=' действует последняя, operand0 снимается заново.
func TestEngine_OperatorOverride(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "2", press(e, "5+-3="))
}

// '=' сразу после операции (нового числа не было): operand1 остаётся от
// прошлого вычисления, 8 + 3 = 11.
func TestEngine_EqualsRightAfterOperator(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "8", press(e, "5+3="))
	assert.Equal(t, "11", press(e, "+="))
}

// '=' без выбранной операции оставляет дисплей как есть; следующая цифра
// начинает новое число.
func TestEngine_EqualsWithoutOperator(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "5", press(e, "5="))
	assert.Equal(t, "7", press(e, "7"))
}

// Результат становится первым операндом следующей операции.
func TestEngine_ChainedOperations(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "8", press(e, "5+3="))
	assert.Equal(t, "16", press(e, "*2="))
}

func TestEngine_Decimal(t *testing.T) {
	e := newEngine(t)

	// вторая точка молча игнорируется
	assert.Equal(t, "3.14", press(e, "3.1.4"))
}

func TestEngine_DecimalFromZero(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "0.", press(e, "."))
	assert.Equal(t, "0.5", press(e, "5"))
}

func TestEngine_DecimalAfterOperator(t *testing.T) {
	e := newEngine(t)

	press(e, "5+")
	assert.Equal(t, "0.", press(e, "."))
	assert.Equal(t, "0.5", press(e, "5"))
	assert.Equal(t, "5.5", press(e, "="))
}

func TestEngine_DecimalAfterEquals(t *testing.T) {
	e := newEngine(t)

	press(e, "5+3=")
	assert.Equal(t, "0.", press(e, "."))
	assert.Equal(t, "0.25", press(e, "25"))
}

func TestEngine_Backspace(t *testing.T) {
	e := newEngine(t)

	press(e, "53")
	assert.Equal(t, "5", press(e, "b"))
	assert.Equal(t, "0", press(e, "b"))
	// ниже "0" не опускается
	assert.Equal(t, "0", press(e, "b"))
}

// Многократный backspace с любого дисплея доходит до "0" и там остаётся.
func TestEngine_BackspaceFixpoint(t *testing.T) {
	for _, start := range []string{"123456789", "-12.5", "3.14", "7"} {
		e := newEngine(t)
		press(e, start)
		got := e.Display()
		for i := 0; i < 20; i++ {
			got = press(e, "b")
		}
		assert.Equal(t, "0", got, "start=%q", start)
	}
}

func TestEngine_Negate(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "5", press(e, "5"))
	assert.Equal(t, "-5", press(e, "n"))
	// инволюция: повторный negate возвращает исходное число
	assert.Equal(t, "5", press(e, "n"))
}

// Из "0" negate даёт голый знак, цифры набираются следом.
func TestEngine_NegateFromZero(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "-", press(e, "n"))
	assert.Equal(t, "-7", press(e, "7"))
	assert.Equal(t, "-3", press(e, "+4="))
}

func TestEngine_NegateSecondOperand(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "0", press(e, "5+n="))
}

// Голый знак "-" не разбирается как число — '=' даёт "Error".
func TestEngine_BareSignOperandIsError(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "Error", press(e, "5+0n="))
}

// Clear entry чистит только дисплей: операция и операнды переживают.
func TestEngine_ClearEntryKeepsPendingOperator(t *testing.T) {
	e := newEngine(t)

	press(e, "5+7")
	assert.Equal(t, "0", press(e, "c"))
	assert.Equal(t, "8", press(e, "3="))
}

func TestEngine_ClearAll(t *testing.T) {
	e := newEngine(t)

	press(e, "5+3=9.1n")
	assert.Equal(t, "0", press(e, "C"))

	st := e.Snapshot()
	assert.Equal(t, "0", st.Operand0)
	assert.Equal(t, "0", st.Operand1)
	assert.Equal(t, "", st.Operator)
	assert.False(t, st.OperandHeld)

	// после сброса движок считает с чистого листа
	assert.Equal(t, "5", press(e, "2+3="))
}

func TestEngine_UnknownKeyIsNoop(t *testing.T) {
	e := newEngine(t)

	press(e, "42")
	for _, r := range "x%(#q " {
		assert.Equal(t, "42", e.Apply(domain.ParseKey(r)))
	}
}

// После "Error" первая же цифра начинает новое число.
func TestEngine_RecoveryAfterError(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "Error", press(e, "5/0="))
	assert.Equal(t, "7", press(e, "7"))
	assert.Equal(t, "10", press(e, "+3="))
}

// Ошибка не чистит историю: операнды и операция остаются как были.
func TestEngine_ErrorKeepsOperands(t *testing.T) {
	e := newEngine(t)

	press(e, "5/0=")
	st := e.Snapshot()
	assert.Equal(t, "5", st.Operand0)
	assert.Equal(t, "0", st.Operand1)
	assert.Equal(t, domain.OpDiv, st.Operator)
}

// Точка после операции, идущей за '=', даёт "0.", но operand1 всё ещё
// удержан с прошлого вычисления: цифра начнёт число заново.
func TestEngine_DecimalAfterOperatorAfterEquals(t *testing.T) {
	e := newEngine(t)

	press(e, "5+3=+")
	assert.Equal(t, "0.", press(e, "."))
	assert.Equal(t, "5", press(e, "5"))
}

func TestEngine_SnapshotRestore(t *testing.T) {
	e := newEngine(t)
	press(e, "5+3")

	st := e.Snapshot()

	restored := New(9, newTestLogger())
	restored.Restore(st)
	assert.Equal(t, "3", restored.Display())
	assert.Equal(t, "8", press(restored, "="))
}

func TestEngine_Restore_SanitizesEmptyFields(t *testing.T) {
	e := newEngine(t)
	e.Restore(domain.SessionState{Mode: 99})

	st := e.Snapshot()
	require.Equal(t, "0", st.Display)
	require.Equal(t, "0", st.Operand0)
	require.Equal(t, "0", st.Operand1)
	assert.Equal(t, "0", press(e, "b"))
}

// Длинный сквозной сценарий: набор, исправления, цепочка операций.
func TestEngine_EndToEndScenario(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, "12", press(e, "125b"))
	assert.Equal(t, "4", press(e, "/3="))
	assert.Equal(t, "7", press(e, "+3="))
	assert.Equal(t, "10", press(e, "="))
	assert.Equal(t, "-10", press(e, "n"))
	assert.Equal(t, "0", press(e, "C"))
}
