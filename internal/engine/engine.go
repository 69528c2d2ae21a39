// Package engine — конечный автомат калькулятора: поток одиночных клавиш
// превращается в строку дисплея ограниченной ширины. Движок полностью
// синхронный и не содержит блокировок — вызывающая сторона сериализует Apply.
package engine

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"megaCalc/internal/domain"
)

// inputMode — режим ввода. Вместе с operandHeld он кодирует, что следующая
// цифра или точка начинает новое число.
type inputMode int

const (
	modeAccumulating inputMode = iota // обычный набор числа
	modeOperatorSet                   // только что нажата операция, числа ещё нет
	modeResultShown                   // на дисплее результат '='
)

// Engine — состояние одного калькулятора. Создаётся на сессию, живёт до сброса.
type Engine struct {
	width int
	log   *slog.Logger

	display  string
	operand0 string
	operand1 string
	operator string // "" — операция не выбрана
	mode     inputMode
	// operandHeld — после '=' не вводилось новое число; повторный '='
	// переиспользует operand1 (5 + 3 = = даёт 8, затем 11).
	operandHeld bool
}

// New создаёт движок с шириной дисплея width (число цифр без знака и точки).
func New(width int, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	e := &Engine{width: width, log: log}
	e.Reset()
	return e
}

// Reset возвращает движок в исходное состояние (дисплей "0", операндов нет).
func (e *Engine) Reset() {
	e.display = "0"
	e.operand0 = "0"
	e.operand1 = "0"
	e.operator = ""
	e.mode = modeAccumulating
	e.operandHeld = false
}

// Display возвращает текущую строку дисплея.
func (e *Engine) Display() string {
	return e.display
}

// Apply применяет одно нажатие и возвращает строку дисплея. Никогда не
// возвращает ошибку: нераспознанная клавиша — no-op, ошибки вычисления
// отображаются литералом "Error".
func (e *Engine) Apply(k domain.Key) string {
	switch k.Kind {
	case domain.KindOperator:
		e.applyOperator(k.Op)
	case domain.KindEquals:
		e.applyEquals()
	case domain.KindBackspace:
		e.applyBackspace()
	case domain.KindClearEntry:
		e.display = "0"
	case domain.KindClearAll:
		e.Reset()
	case domain.KindNegate:
		e.applyNegate()
	case domain.KindDecimal:
		e.applyDecimal()
	case domain.KindDigit:
		e.applyDigit(k.Digit)
	case domain.KindUnknown:
		// посторонний символ, состояние не меняется
	}

	e.log.Debug("key applied",
		"display", e.display,
		"operand0", e.operand0,
		"operand1", e.operand1,
		"operator", e.operator,
		"mode", int(e.mode),
		"operandHeld", e.operandHeld,
	)
	return e.display
}

// applyOperator запоминает операцию и снимает первый операнд с дисплея.
// Операция поверх операции просто перезаписывает выбор — до '=' действует последняя.
func (e *Engine) applyOperator(op string) {
	e.operator = op
	e.operand0 = e.display
	e.mode = modeOperatorSet
}

// applyEquals снимает второй операнд (если с прошлого '=' вводилось новое
// число), вычисляет и показывает результат. Результат становится operand0,
// поэтому цепочка '=' повторяет последнюю операцию.
func (e *Engine) applyEquals() {
	if !e.operandHeld {
		e.operand1 = e.display
	}
	e.operandHeld = true
	e.mode = modeResultShown

	if e.operator == "" {
		// '=' без выбранной операции: дисплей остаётся как есть
		return
	}

	a, okA := parseOperand(e.operand0)
	b, okB := parseOperand(e.operand1)
	if !okA || !okB {
		e.display = domain.DisplayError
		return
	}

	var result float64
	switch e.operator {
	case domain.OpAdd:
		result = a + b
	case domain.OpSub:
		result = a - b
	case domain.OpMul:
		result = a * b
	case domain.OpDiv:
		if b == 0 {
			e.display = domain.DisplayError
			return
		}
		result = a / b
	}

	e.operand0 = formatNumber(result, e.width)
	e.display = e.operand0
}

// applyBackspace стирает последний символ; дисплей никогда не пустеет.
func (e *Engine) applyBackspace() {
	if len(e.display) > 1 {
		e.display = e.display[:len(e.display)-1]
	} else {
		e.display = "0"
	}
}

// applyNegate переключает ведущий минус. Из "0" получается голый знак "-",
// цифры будут набраны следом.
func (e *Engine) applyNegate() {
	switch {
	case e.display == "0":
		e.display = "-"
	case strings.HasPrefix(e.display, "-"):
		e.display = e.display[1:]
	default:
		e.display = "-" + e.display
	}
}

// applyDecimal ставит десятичную точку. После операции или результата
// начинается новое дробное число "0.". Вторая точка в числе игнорируется.
func (e *Engine) applyDecimal() {
	switch {
	case e.mode == modeOperatorSet:
		e.display = "0."
		e.mode = modeAccumulating
	case e.operandHeld:
		e.display = "0."
		e.operandHeld = false
		e.mode = modeAccumulating
	case !strings.Contains(e.display, "."):
		e.display += "."
	}
}

// applyDigit набирает цифру. Лишняя цифра при заполненном дисплее молча
// отбрасывается; знак и точка в лимит ширины не входят.
func (e *Engine) applyDigit(d byte) {
	if e.mode != modeAccumulating || e.operandHeld {
		e.display = "0"
		e.mode = modeAccumulating
		e.operandHeld = false
	}

	count := 0
	for _, r := range e.display {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	if count >= e.width {
		return
	}
	if e.display == "0" {
		e.display = string(d)
	} else {
		e.display += string(d)
	}
}

// parseOperand разбирает текстовый операнд как конечное число.
func parseOperand(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Snapshot возвращает копию состояния для сохранения и проверок.
// Менять состояние можно только через Apply и Reset.
func (e *Engine) Snapshot() domain.SessionState {
	return domain.SessionState{
		Display:     e.display,
		Operand0:    e.operand0,
		Operand1:    e.operand1,
		Operator:    e.operator,
		Mode:        int(e.mode),
		OperandHeld: e.operandHeld,
	}
}

// Restore восстанавливает состояние из сохранённого снимка сессии.
func (e *Engine) Restore(st domain.SessionState) {
	e.display = st.Display
	if e.display == "" {
		e.display = "0"
	}
	e.operand0 = st.Operand0
	if e.operand0 == "" {
		e.operand0 = "0"
	}
	e.operand1 = st.Operand1
	if e.operand1 == "" {
		e.operand1 = "0"
	}
	e.operator = st.Operator
	e.mode = inputMode(st.Mode)
	if e.mode < modeAccumulating || e.mode > modeResultShown {
		e.mode = modeAccumulating
	}
	e.operandHeld = st.OperandHeld
}
