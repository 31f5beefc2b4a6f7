package stop_schedule

import (
	"math"
	"time"
)

const (
	// Фиксированная модель времени: 30 минут перегона между стопами
	// и 20 минут обслуживания на каждом стопе. Это не движок маршрутизации -
	// модель существует только чтобы расписание стопов монотонно росло.
	travelPerStop  = 30 * time.Minute
	servicePerStop = 20 * time.Minute

	travelHoursPerStop  = 0.5
	serviceHoursPerStop = 0.33
)

type ScheduleFactory struct{}

func New() *ScheduleFactory {
	return &ScheduleFactory{}
}

// PlannedArrival возвращает плановое время прибытия на стоп по его позиции
// (1-based). Первый стоп - в момент старта маршрута, каждый следующий
// накапливает перегон и обслуживание предыдущих.
func (f *ScheduleFactory) PlannedArrival(position int, routeStart time.Time) time.Time {
	if position < 1 {
		position = 1
	}
	n := time.Duration(position - 1)
	return routeStart.Add(n * (travelPerStop + servicePerStop))
}

// PlannedDeparture - прибытие плюс время обслуживания стопа.
func (f *ScheduleFactory) PlannedDeparture(position int, routeStart time.Time) time.Time {
	return f.PlannedArrival(position, routeStart).Add(servicePerStop)
}

// EstimatedDurationHours оценивает длительность маршрута в часах,
// округляя до двух знаков.
func (f *ScheduleFactory) EstimatedDurationHours(stopCount int) float64 {
	if stopCount <= 0 {
		return 0
	}
	hours := float64(stopCount)*travelHoursPerStop + float64(stopCount)*serviceHoursPerStop
	return math.Round(hours*100) / 100
}
