// Package timeofday переводит время суток "HH:MM" в минуты от полуночи и обратно.
package timeofday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// ErrInvalidFormat строка не соответствует формату "HH:MM"
var ErrInvalidFormat = errors.New("invalid time format, expected HH:MM")

// ToMinutes возвращает количество минут от полуночи для строки "HH:MM"
func ToMinutes(value string) (int, error) {
	hoursStr, minutesStr, ok := strings.Cut(value, ":")
	if !ok || len(hoursStr) == 0 || len(hoursStr) > 2 || len(minutesStr) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}

	hours, err := parseDigits(hoursStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}

	minutes, err := parseDigits(minutesStr)
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}

	total := hours*60 + minutes
	if total >= MinutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}

	return total, nil
}

// Format обратное преобразование: минуты от полуночи в "HH:MM"
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatRange форматирует окно "HH:MM-HH:MM"
func FormatRange(from, to int) string {
	return fmt.Sprintf("%s-%s", Format(from), Format(to))
}

// WeekdayName возвращает краткое название дня недели (0 = Sunday)
func WeekdayName(weekDay int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekDay >= 0 && weekDay < len(names) {
		return names[weekDay]
	}
	return "?"
}

// parseDigits разрешает только цифры: strconv.Atoi пропускает знак
func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidFormat
		}
	}
	return strconv.Atoi(s)
}
