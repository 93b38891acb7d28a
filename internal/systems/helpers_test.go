package systems

import (
	"testing"

	"github.com/slincem/landust/internal/domain"
)

// buildBoard строит поле из ASCII-схемы:
//
//	'.' - пол
//	'#' - стена
//	буква - юнит из карты units, поставленный на эту клетку
//
// Схема и расстановка видны прямо в тесте, без координатной арифметики.
func buildBoard(t *testing.T, rows []string, units map[rune]*domain.Unit) *domain.Board {
	t.Helper()

	board := domain.NewBoard(len([]rune(rows[0])), len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			pos := domain.Position{X: x, Y: y}
			switch r {
			case '.':
			case '#':
				board.SetWalkable(pos, false)
			default:
				u, ok := units[r]
				if !ok {
					t.Fatalf("layout uses rune %q with no unit bound to it", r)
				}
				if !board.Place(u, pos) {
					t.Fatalf("cannot place unit %q at %s", r, pos)
				}
			}
		}
	}
	return board
}

// newTestUnit создает юнита со стандартными ресурсами (20/6/3).
func newTestUnit(id string, team int) *domain.Unit {
	return domain.NewUnit(domain.UnitConfig{
		ID:    id,
		Name:  id,
		Team:  team,
		MaxHP: 20,
		MaxAP: 6,
		MaxMP: 3,
	})
}
