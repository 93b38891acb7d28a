package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/pkg/logger"
)

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Использует оптимизированный алгоритм Брезенхэма (только целочисленная
// арифметика). Линию блокируют только непроходимые клетки: юниты видимость
// не заслоняют.
func HasLineOfSight(b *domain.Board, p1, p2 domain.Position) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "sight_system",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		// Проверяем препятствия, ИСКЛЮЧАЯ стартовую и конечную точки.
		isStartPoint := x0 == p1.X && y0 == p1.Y
		isEndPoint := x0 == p2.X && y0 == p2.Y

		if !isStartPoint && !isEndPoint {
			cell := domain.Position{X: x0, Y: y0}
			if !b.InBounds(cell) {
				losLogger.WithField("blocking_point", cell).
					Debug("Line of sight blocked by map bounds")
				return false
			}
			if !b.IsWalkable(cell) {
				losLogger.WithField("blocking_point", cell).
					Debug("Line of sight blocked by wall")
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
