package clock

import "time"

// Clock абстрагирует системное время, чтобы бизнес-логика
// никогда не вызывала time.Now напрямую.
type Clock interface {
	Now() time.Time
}

type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) Now() time.Time {
	return time.Now().UTC()
}
