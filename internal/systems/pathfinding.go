package systems

import (
	"github.com/slincem/landust/internal/domain"
)

// cardinalDirs - четыре направления сетки. Диагональных шагов в бою нет.
var cardinalDirs = [4]struct{ dx, dy int }{
	{0, -1}, // вверх
	{0, 1},  // вниз
	{-1, 0}, // влево
	{1, 0},  // вправо
}

// FindPath ищет кратчайший путь поиском в ширину. Все шаги стоят одинаково,
// поэтому BFS дает кратчайший путь без эвристик и без очереди с приоритетом.
// Занятые и непроходимые клетки непроницаемы - путь никогда не идет сквозь
// юнитов, включая союзников.
//
// Возвращает клетки пути БЕЗ стартовой, включая целевую.
// from == to дает пустой путь (не ошибку), недостижимая цель - nil.
func FindPath(b *domain.Board, from, to domain.Position) []domain.Position {
	if from == to {
		return []domain.Position{}
	}
	if !b.IsFree(to) {
		return nil
	}

	visited := map[domain.Position]bool{from: true}
	cameFrom := make(map[domain.Position]domain.Position)
	queue := []domain.Position{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == to {
			return reconstruct(cameFrom, from, to)
		}

		for _, d := range cardinalDirs {
			next := cur.Shift(d.dx, d.dy)
			if visited[next] || !b.IsFree(next) {
				continue
			}
			visited[next] = true
			cameFrom[next] = cur
			queue = append(queue, next)
		}
	}

	return nil
}

// reconstruct разворачивает цепочку cameFrom в путь от старта к цели.
func reconstruct(cameFrom map[domain.Position]domain.Position, from, to domain.Position) []domain.Position {
	path := []domain.Position{to}
	for cur := to; cur != from; {
		cur = cameFrom[cur]
		if cur == from {
			break
		}
		path = append(path, cur)
	}
	// Разворот: собирали с хвоста
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ReachableCells возвращает все клетки, достижимые не более чем за budget
// шагов (обычно budget = текущие ОП юнита). Стартовая клетка в результат
// не входит. Порядок обхода детерминирован - удобно для подсветки и тестов.
func ReachableCells(b *domain.Board, from domain.Position, budget int) []domain.Position {
	if budget <= 0 {
		return nil
	}

	type node struct {
		pos  domain.Position
		dist int
	}

	visited := map[domain.Position]bool{from: true}
	queue := []node{{pos: from, dist: 0}}
	var cells []domain.Position

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.dist >= budget {
			continue
		}

		for _, d := range cardinalDirs {
			next := cur.pos.Shift(d.dx, d.dy)
			if visited[next] || !b.IsFree(next) {
				continue
			}
			visited[next] = true
			cells = append(cells, next)
			queue = append(queue, node{pos: next, dist: cur.dist + 1})
		}
	}

	return cells
}
