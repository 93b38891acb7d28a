package engine

import "github.com/slincem/landust/internal/domain"

// Config хранит параметры создания боя
type Config struct {
	// Board - готовое поле (например, из arena.ParseLayout).
	// nil означает пустое поле размеров по умолчанию.
	Board *domain.Board

	// Placements - юниты и их стартовые клетки. Порядок задает
	// ротацию ходов.
	Placements []Placement
}

// Placement - один юнит и его стартовая клетка
type Placement struct {
	Unit *domain.Unit
	At   domain.Position
}
