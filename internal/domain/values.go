package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeDate проверяет дату вида D-M-YYYY / DD-MM-YYYY и приводит её к DD-MM-YYYY.
// Проверяются только диапазоны частей (день 1-31, месяц 1-12, год 1-9999),
// календарная корректность (например, 31-02) не проверяется.
func NormalizeDate(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("date %q is not in DD-MM-YYYY form", s)
	}

	limits := [3][2]int{{1, 31}, {1, 12}, {1, 9999}}
	var nums [3]int
	for i, part := range parts {
		if part == "" || len(part) > 4 || strings.Trim(part, "0123456789") != "" {
			return "", fmt.Errorf("date %q is not in DD-MM-YYYY form", s)
		}
		n, _ := strconv.Atoi(part)
		if n < limits[i][0] || n > limits[i][1] {
			return "", fmt.Errorf("date %q is out of range", s)
		}
		nums[i] = n
	}

	return fmt.Sprintf("%02d-%02d-%04d", nums[0], nums[1], nums[2]), nil
}

// ParseDecimal разбирает денежное значение поля field.
// NaN и бесконечности отклоняются: в хранилище они не представимы.
func ParseDecimal(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !IsFinite(v) {
		return 0, NewValidationError(field, "must be a number")
	}
	return v, nil
}

// IsFinite сообщает, что v - обычное конечное число
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
