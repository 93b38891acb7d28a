package arena

import (
	"strings"
	"testing"

	"github.com/slincem/landust/internal/domain"
)

func TestParseLayout(t *testing.T) {
	board, err := ParseLayout([]string{
		"...",
		".#.",
	})
	if err != nil {
		t.Fatalf("valid layout rejected: %v", err)
	}

	if board.Width() != 3 || board.Height() != 2 {
		t.Errorf("expected a 3x2 board, got %dx%d", board.Width(), board.Height())
	}
	if board.IsWalkable(domain.Position{X: 1, Y: 1}) {
		t.Error("'#' must become a wall")
	}
	if !board.IsWalkable(domain.Position{X: 0, Y: 0}) {
		t.Error("'.' must stay walkable")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want string
	}{
		{"no rows", nil, "empty"},
		{"empty first row", []string{""}, "empty"},
		{"ragged rows", []string{"...", ".."}, "width"},
		{"unknown symbol", []string{".x."}, "unknown symbol"},
	}

	for _, tc := range cases {
		_, err := ParseLayout(tc.rows)
		if err == nil {
			t.Errorf("%s: expected a parse error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestDefaultArena(t *testing.T) {
	board := DefaultArena()

	if board.Width() != domain.DefaultBoardWidth || board.Height() != domain.DefaultBoardHeight {
		t.Fatalf("expected the standard %dx%d arena, got %dx%d",
			domain.DefaultBoardWidth, domain.DefaultBoardHeight, board.Width(), board.Height())
	}

	// Обе колонны на месте
	for _, wall := range []domain.Position{{X: 3, Y: 2}, {X: 4, Y: 3}, {X: 5, Y: 5}, {X: 6, Y: 6}} {
		if board.IsWalkable(wall) {
			t.Errorf("expected a wall at %s", wall)
		}
	}

	// Углы открыты: есть куда расставлять бойцов
	for _, corner := range []domain.Position{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 9}, {X: 9, Y: 9}} {
		if !board.IsFree(corner) {
			t.Errorf("expected the corner %s open", corner)
		}
	}
}
