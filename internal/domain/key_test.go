package domain

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want Key
	}{
		{
			name: "цифра ноль",
			in:   '0',
			want: Key{Kind: KindDigit, Digit: '0'},
		},
		{
			name: "цифра девять",
			in:   '9',
			want: Key{Kind: KindDigit, Digit: '9'},
		},
		{
			name: "сложение",
			in:   '+',
			want: Key{Kind: KindOperator, Op: OpAdd},
		},
		{
			name: "вычитание",
			in:   '-',
			want: Key{Kind: KindOperator, Op: OpSub},
		},
		{
			name: "умножение",
			in:   '*',
			want: Key{Kind: KindOperator, Op: OpMul},
		},
		{
			name: "деление",
			in:   '/',
			want: Key{Kind: KindOperator, Op: OpDiv},
		},
		{
			name: "равно",
			in:   '=',
			want: Key{Kind: KindEquals},
		},
		{
			name: "backspace",
			in:   'b',
			want: Key{Kind: KindBackspace},
		},
		{
			name: "очистка ввода",
			in:   'c',
			want: Key{Kind: KindClearEntry},
		},
		{
			name: "полный сброс",
			in:   'C',
			want: Key{Kind: KindClearAll},
		},
		{
			name: "смена знака",
			in:   'n',
			want: Key{Kind: KindNegate},
		},
		{
			name: "десятичная точка",
			in:   '.',
			want: Key{Kind: KindDecimal},
		},
		{
			name: "посторонний символ",
			in:   '%',
			want: Key{Kind: KindUnknown},
		},
		{
			name: "буква вне раскладки",
			in:   'q',
			want: Key{Kind: KindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKey(tt.in)
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
