package domain

import "fmt"

// Position - координата клетки на поле. Сравнивается по значению.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanTo возвращает манхэттенское расстояние (4 направления, без диагоналей).
// Это основная метрика движка: и перемещение, и дальность заклинаний считаются в ней.
func (p Position) ManhattanTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// ChebyshevTo возвращает расстояние Чебышёва (диагональ считается за 1 шаг).
// Движком не используется, оставлено для хостов, которым нужна подсветка "квадратом".
func (p Position) ChebyshevTo(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// IsAdjacentTo возвращает true, если other - соседняя клетка по стороне (не диагонали).
func (p Position) IsAdjacentTo(other Position) bool {
	return p.ManhattanTo(other) == 1
}

// Shift возвращает новую позицию со смещением (не меняя текущую,
// т.к. Go передает структуры по значению).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DirectionTo возвращает единичный знаковый вектор (sx, sy) в сторону other.
func (p Position) DirectionTo(other Position) (int, int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
