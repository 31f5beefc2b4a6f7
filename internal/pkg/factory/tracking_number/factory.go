package tracking_number

import (
	"fmt"
	"math/rand"
	"time"
)

const prefix = "RTX"

type nowFunc interface {
	Now() time.Time
}

// TrackingNumberFactory генерирует внешние трек-номера отправлений.
// Формат стабилен: RTX-YYYYMMDD-NNNNNN. Часы и источник случайности
// инжектируются, глобальный rand не используется.
type TrackingNumberFactory struct {
	clock nowFunc
	rnd   *rand.Rand
}

func New(clock nowFunc, source rand.Source) *TrackingNumberFactory {
	return &TrackingNumberFactory{
		clock: clock,
		rnd:   rand.New(source),
	}
}

func (f *TrackingNumberFactory) Generate() string {
	now := f.clock.Now()
	return fmt.Sprintf("%s-%s-%06d", prefix, now.Format("20060102"), f.rnd.Intn(1000000))
}
