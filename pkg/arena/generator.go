package arena

import (
	"fmt"
	"math/rand"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/internal/systems"
)

// Константы генерации
const (
	// pillarSize - сторона квадратной колонны (как колонны стандартной арены)
	pillarSize = 2
	// cellsPerPillar - плотность: одна колонна на столько клеток поля
	cellsPerPillar = 50
	// placementTries - попыток на одну колонну, прежде чем сдаться
	placementTries = 8
)

// GenerateArena создает случайную арену: открытое поле, засеянное
// квадратными колоннами. Одинаковый seed дает одинаковую арену.
//
// Гарантии:
//   - внешнее кольцо клеток всегда свободно (есть куда расставлять бойцов);
//   - клетки keep никогда не застраиваются (стартовые позиции);
//   - пол остается связным - колонна, разрезающая арену на части,
//     отбрасывается и генерация пробует другое место.
func GenerateArena(width, height int, seed int64, keep ...domain.Position) (*domain.Board, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("arena %dx%d is too small", width, height)
	}

	board := domain.NewBoard(width, height)

	// Колоннам нужно внутреннее пространство: поле меньше 2+pillarSize+2
	// в любом измерении остается открытым
	if width < pillarSize+4 || height < pillarSize+4 {
		return board, nil
	}

	rng := rand.New(rand.NewSource(seed))
	want := width * height / cellsPerPillar

	placed := 0
	for try := 0; placed < want && try < want*placementTries; try++ {
		x := 1 + rng.Intn(width-pillarSize-2)
		y := 1 + rng.Intn(height-pillarSize-2)
		if tryPlacePillar(board, x, y, keep) {
			placed++
		}
	}

	return board, nil
}

// tryPlacePillar ставит колонну pillarSize x pillarSize с углом в (x,y).
// Откатывается, если колонна задевает стену, защищенную клетку или рвет
// связность пола.
func tryPlacePillar(board *domain.Board, x, y int, keep []domain.Position) bool {
	cells := make([]domain.Position, 0, pillarSize*pillarSize)
	for dy := 0; dy < pillarSize; dy++ {
		for dx := 0; dx < pillarSize; dx++ {
			pos := domain.Position{X: x + dx, Y: y + dy}
			if !board.IsWalkable(pos) {
				return false
			}
			for _, k := range keep {
				if pos == k {
					return false
				}
			}
			cells = append(cells, pos)
		}
	}

	for _, pos := range cells {
		board.SetWalkable(pos, false)
	}
	if floorConnected(board) {
		return true
	}

	// Откат: колонна разрезала арену
	for _, pos := range cells {
		board.SetWalkable(pos, true)
	}
	return false
}

// floorConnected проверяет, что весь пол арены образует одну область.
func floorConnected(board *domain.Board) bool {
	total := 0
	var start domain.Position
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			pos := domain.Position{X: x, Y: y}
			if board.IsWalkable(pos) {
				if total == 0 {
					start = pos
				}
				total++
			}
		}
	}
	if total == 0 {
		return false
	}

	// Обход без бюджета: юнитов на поле еще нет, блокируют только стены
	reached := systems.ReachableCells(board, start, board.Width()*board.Height())
	return len(reached) == total-1
}
