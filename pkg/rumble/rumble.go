package rumble

// Permutations возвращает все различные перестановки цифр комбинации.
// Особые случаи для 3-значных комбинаций:
//   - трипл ("777") — перестановок нет, возвращается пустой срез;
//   - дабл ("772") — ровно 3 различных порядка;
//   - все цифры разные — 6 порядков.
// Длина входа не ограничена тройкой: пустая строка и одна цифра
// возвращаются как есть. Валидация формата — на вызывающей стороне.
func Permutations(combination string) []string {
	if isTriple(combination) {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	permute([]byte(combination), 0, func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	})
	return out
}

// permute перебирает перестановки in-place, начиная с позиции pos
func permute(digits []byte, pos int, emit func(string)) {
	if pos == len(digits)-1 || len(digits) == 0 {
		emit(string(digits))
		return
	}
	for i := pos; i < len(digits); i++ {
		digits[pos], digits[i] = digits[i], digits[pos]
		permute(digits, pos+1, emit)
		digits[pos], digits[i] = digits[i], digits[pos]
	}
}

// isTriple - true, если все символы комбинации одинаковы (и их больше одного)
func isTriple(combination string) bool {
	if len(combination) < 2 {
		return false
	}
	for i := 1; i < len(combination); i++ {
		if combination[i] != combination[0] {
			return false
		}
	}
	return true
}
