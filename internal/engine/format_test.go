package engine

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		width int
		want  string
	}{
		{
			name:  "целое без хвоста",
			value: 5.0,
			width: 9,
			want:  "5",
		},
		{
			name:  "дробное как есть",
			value: 3.14,
			width: 9,
			want:  "3.14",
		},
		{
			name:  "хвостовые нули отрезаются",
			value: 2.50,
			width: 9,
			want:  "2.5",
		},
		{
			name:  "ноль",
			value: 0,
			width: 9,
			want:  "0",
		},
		{
			name:  "отрицательное",
			value: -0.25,
			width: 9,
			want:  "-0.25",
		},
		{
			name:  "ровно по ширине",
			value: 123456789,
			width: 9,
			want:  "123456789",
		},
		{
			name:  "маленькое дробное без экспоненты",
			value: 0.000001,
			width: 9,
			want:  "0.000001",
		},
		{
			name:  "длинное целое уходит в экспоненту",
			value: 1e12,
			width: 9,
			want:  "1.0000e+12",
		},
		{
			name:  "периодическая дробь уходит в экспоненту",
			value: 1.0 / 3.0,
			width: 9,
			want:  "3.3333e-01",
		},
		{
			name:  "двоичный шум плавающей точки",
			value: 0.1 + 0.2,
			width: 9,
			want:  "3.0000e-01",
		},
		{
			name:  "узкий дисплей усекает экспоненту",
			value: 123456,
			width: 3,
			want:  "1e+0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatNumber(tt.value, tt.width)
			if got != tt.want {
				t.Errorf("formatNumber(%v, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
			}
		})
	}
}
