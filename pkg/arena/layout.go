package arena

import (
	"fmt"

	"github.com/slincem/landust/internal/domain"
)

// Обозначения клеток в ASCII-схеме арены
const (
	layoutFloor = '.'
	layoutWall  = '#'
)

// ParseLayout строит поле из ASCII-схемы: '.' - пол, '#' - стена.
// Все строки должны быть одной длины, неизвестный символ - ошибка.
func ParseLayout(rows []string) (*domain.Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("layout row 0 is empty")
	}

	board := domain.NewBoard(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("layout row %d: width %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			switch r {
			case layoutFloor:
				// пол - клетки проходимы по умолчанию
			case layoutWall:
				board.SetWalkable(domain.Position{X: x, Y: y}, false)
			default:
				return nil, fmt.Errorf("layout row %d: unknown symbol %q", y, r)
			}
		}
	}

	return board, nil
}

// defaultLayout - открытая арена с двумя колоннами.
var defaultLayout = []string{
	"..........",
	"..........",
	"...##.....",
	"...##.....",
	"..........",
	".....##...",
	".....##...",
	"..........",
	"..........",
	"..........",
}

// DefaultArena возвращает стандартное поле 10x10.
func DefaultArena() *domain.Board {
	board, err := ParseLayout(defaultLayout)
	if err != nil {
		panic("arena: default layout is broken: " + err.Error())
	}
	return board
}
