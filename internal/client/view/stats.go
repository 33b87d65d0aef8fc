package view

import (
	"fmt"

	"github.com/iudanet/leetkeeper/internal/models"
)

// Stats — агрегаты по полному (нефильтрованному) списку задач.
type Stats struct {
	Total   int
	Solved  int
	Starred int
	Percent string // доля решённых с одним знаком после запятой; "0" для пустого списка
}

// Aggregate считает агрегаты по полному списку задач.
func Aggregate(problems []models.Problem) Stats {
	stats := Stats{Total: len(problems)}
	for _, p := range problems {
		if p.Solved {
			stats.Solved++
		}
		if p.Starred {
			stats.Starred++
		}
	}

	if stats.Total == 0 {
		// Пустой список: не делим на ноль
		stats.Percent = "0"
	} else {
		stats.Percent = fmt.Sprintf("%.1f", float64(stats.Solved)/float64(stats.Total)*100)
	}

	return stats
}
