package model

// ScheduleWindow еженедельное окно доступности класса
type ScheduleWindow struct {
	ID      int64 `json:"id"`
	ClassID int64 `json:"class_id"`
	WeekDay int   `json:"week_day"` // 0 = Sunday, 6 = Saturday
	From    int   `json:"from"`     // минуты от полуночи
	To      int   `json:"to"`       // минуты от полуночи, не включительно
}

// Contains проверяет попадает ли минута в окно: from <= minute < to
func (w ScheduleWindow) Contains(weekDay, minute int) bool {
	return w.WeekDay == weekDay && w.From <= minute && minute < w.To
}
