package routing

import (
	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/pkg/geo"
)

// Sequence строит порядок объезда стопов: сначала все urgent/high стопы в
// исходном порядке, затем остальные жадным nearest-neighbor обходом от депо.
//
// Контракт: детерминированный порядок, expedited-first, локально жадный.
// Это не оптимальный TSP - при равных расстояниях побеждает первый
// встреченный стоп (линейный поиск минимума сохраняет первый минимум).
// Вход не мутируется, результат - перестановка входа.
func Sequence(depotLat, depotLon float64, stops []entities.Stop) []entities.Stop {
	if len(stops) == 0 {
		return []entities.Stop{}
	}

	ordered := make([]entities.Stop, 0, len(stops))
	remaining := make([]entities.Stop, 0, len(stops))

	// Приоритетные стопы не оптимизируются географически:
	// гарантия "urgent обслуживается первым" важнее длины маршрута.
	for _, s := range stops {
		if s.Priority.IsExpedited() {
			ordered = append(ordered, s)
		} else {
			remaining = append(remaining, s)
		}
	}

	// Жадный обход стартует от депо, а не от последнего приоритетного
	// стопа: приоритетный префикс не влияет на географию остального хвоста.
	currentLat, currentLon := depotLat, depotLon

	for len(remaining) > 0 {
		nearestIdx := 0
		nearestDist := geo.Distance(currentLat, currentLon, remaining[0].Latitude, remaining[0].Longitude)

		for i := 1; i < len(remaining); i++ {
			d := geo.Distance(currentLat, currentLon, remaining[i].Latitude, remaining[i].Longitude)
			if d < nearestDist {
				nearestDist = d
				nearestIdx = i
			}
		}

		next := remaining[nearestIdx]
		ordered = append(ordered, next)
		currentLat, currentLon = next.Latitude, next.Longitude

		remaining = append(remaining[:nearestIdx], remaining[nearestIdx+1:]...)
	}

	return ordered
}
