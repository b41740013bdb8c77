package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	"github.com/m04kA/FSM-SchedulingService/pkg/types"
)

// generateSlots строит список доступных слотов на дату.
// Внутри каждого окна курсор идет от начала окна с фиксированным шагом
// domain.SlotStepMinutes независимо от длительности слота. Кандидат попадает
// в результат, если он целиком помещается в окно и не пересекается ни с одной
// блокирующей записью. Слоты из пересекающихся окон дедуплицируются по времени
// начала, результат отсортирован по возрастанию
func generateSlots(
	windows []*domain.AvailabilityWindow,
	appointments []*domain.Appointment,
	date time.Time,
	duration int,
	now time.Time,
) ([]Slot, error) {
	// Прошедшие даты слотов не имеют
	if isDateInPast(date, now) {
		return []Slot{}, nil
	}

	// Для сегодняшней даты слоты, начинающиеся в прошлом, отфильтровываются
	var minStart types.TimeString
	if isSameDay(date, now) {
		minStart = types.NewTimeString(now)
	}

	seen := make(map[types.TimeString]bool)
	slots := make([]Slot, 0)

	for _, w := range windows {
		if !w.AppliesTo(date) {
			continue
		}

		cursor := w.StartTime
		for {
			end, err := cursor.AddMinutes(duration)
			if err != nil {
				// Кандидат выходит за пределы суток
				break
			}
			// Кандидат должен целиком помещаться в окно
			if end.IsAfter(w.EndTime) {
				break
			}

			startAt, err := cursor.OnDate(date)
			if err != nil {
				return nil, err
			}
			endAt := startAt.Add(time.Duration(duration) * time.Minute)

			if !seen[cursor] && !minStart.IsAfter(cursor) && !overlapsBlocking(appointments, startAt, endAt) {
				seen[cursor] = true
				slots = append(slots, Slot{StartTime: cursor, EndTime: end})
			}

			next, err := cursor.AddMinutes(domain.SlotStepMinutes)
			if err != nil {
				break
			}
			cursor = next
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})

	return slots, nil
}

// overlapsBlocking проверяет, что интервал [start, end) пересекается хотя бы
// с одной блокирующей записью. Касание границ пересечением не считается,
// отмененные записи время не держат
func overlapsBlocking(appointments []*domain.Appointment, start, end time.Time) bool {
	for _, a := range appointments {
		if !a.Blocks() {
			continue
		}
		if a.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
