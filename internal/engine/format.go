package engine

import (
	"strconv"
	"strings"
)

// formatNumber приводит вычисленный результат к строке дисплея: кратчайшая
// десятичная запись без хвостовых нулей; если не влезает в width цифр
// (+1 на точку) — экспоненциальная запись, в крайнем случае жёсткое усечение.
func formatNumber(value float64, width int) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)

	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}

	if len(s) > width+1 {
		prec := width - 5
		if prec < 0 {
			prec = 0
		}
		s = strconv.FormatFloat(value, 'e', prec, 64)
		if len(s) > width+1 {
			s = s[:width+1]
		}
	}

	if s == "" {
		return "0"
	}
	return s
}
