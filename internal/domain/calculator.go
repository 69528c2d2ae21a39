package domain

import (
	"errors"
	"time"
)

// ErrInvalidKey возвращается, когда клавиша — не ровно один символ.
var ErrInvalidKey = errors.New("invalid key")

// Константы арифметических операций.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
)

// DisplayError — литерал, который движок показывает при ошибке вычисления
// (деление на ноль, нечисловой операнд). Это обычное значение дисплея, не ошибка Go.
const DisplayError = "Error"

// Operation — запись об одном завершённом вычислении (нажатие '=' при
// установленной операции). Операнды хранятся текстом, как их видел дисплей.
type Operation struct {
	ID        int
	SessionID string
	Operand0  string
	Operand1  string
	Operator  string
	Result    string // строка дисплея после '=', может быть "Error"
	Timestamp time.Time
}

// Keystroke — событие одного нажатия клавиши для аналитики.
// Display — состояние дисплея после применения клавиши.
type Keystroke struct {
	SessionID string    `json:"session_id"`
	Key       string    `json:"key"`
	Display   string    `json:"display"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionState — сохраняемый снимок состояния движка одной сессии.
// По нему сессия восстанавливается после рестарта сервиса.
type SessionState struct {
	SessionID   string
	Display     string
	Operand0    string
	Operand1    string
	Operator    string // "" — операция не выбрана
	Mode        int    // режим ввода движка (см. engine)
	OperandHeld bool   // после '=' не было нового числа — operand1 переиспользуется
	UpdatedAt   time.Time
}
