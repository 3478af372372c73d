package engine

import "studyquest_backend/internal/model"

// UpdateTimetableSlot 覆盖某一天某一节课的科目，不校验科目内容
func UpdateTimetableSlot(tt model.TimeTable, day model.Weekday, period int, subject string) (model.TimeTable, error) {
	if !day.IsValid() {
		return tt, ErrInvalidSlot
	}
	slots, ok := tt[day]
	if !ok || period < 0 || period >= len(slots) {
		return tt, ErrInvalidSlot
	}
	next := tt.Clone()
	next[day][period] = subject
	return next, nil
}
