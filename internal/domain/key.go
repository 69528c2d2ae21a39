package domain

// KeyKind — вид клавиши калькулятора. Символ разбирается один раз на границе
// (ParseKey), дальше движок работает только с закрытым набором вариантов.
type KeyKind int

// Варианты клавиш.
const (
	KindUnknown KeyKind = iota // нераспознанный символ, игнорируется
	KindDigit                  // цифра 0-9
	KindOperator               // арифметическая операция + - * /
	KindEquals                 // = (вычислить)
	KindBackspace              // b (стереть последний символ)
	KindClearEntry             // c (очистить ввод)
	KindClearAll               // C (полный сброс)
	KindNegate                 // n (сменить знак)
	KindDecimal                // . (десятичная точка)
)

// Key — одно нажатие клавиши. Digit заполнен только для KindDigit,
// Op — только для KindOperator.
type Key struct {
	Kind  KeyKind
	Digit byte   // '0'..'9'
	Op    string // OpAdd, OpSub, OpMul или OpDiv
}

// ParseKey разбирает символ в Key. Любой символ вне раскладки даёт KindUnknown.
func ParseKey(r rune) Key {
	switch {
	case r >= '0' && r <= '9':
		return Key{Kind: KindDigit, Digit: byte(r)}
	case r == '+' || r == '-' || r == '*' || r == '/':
		return Key{Kind: KindOperator, Op: string(r)}
	case r == '=':
		return Key{Kind: KindEquals}
	case r == 'b':
		return Key{Kind: KindBackspace}
	case r == 'c':
		return Key{Kind: KindClearEntry}
	case r == 'C':
		return Key{Kind: KindClearAll}
	case r == 'n':
		return Key{Kind: KindNegate}
	case r == '.':
		return Key{Kind: KindDecimal}
	default:
		return Key{Kind: KindUnknown}
	}
}
