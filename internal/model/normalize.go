package model

import "strings"

// ZeroPad - дополняет комбинацию ведущими нулями до ширины width.
// Ведущие нули значимы: "7" для LAST_TWO - это "07"
func ZeroPad(combination string, width int) string {
	if len(combination) >= width {
		return combination
	}
	return strings.Repeat("0", width-len(combination)) + combination
}

// IsDigits - true, если строка непуста и состоит только из десятичных цифр
func IsDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeDrawTime - приводит время тиража к каноническому HH:MM:SS
// ("11:00" и "11:00:00" - один и тот же слот)
func NormalizeDrawTime(t string) string {
	t = strings.TrimSpace(t)
	if len(t) == len("15:04") {
		return t + ":00"
	}
	return t
}
