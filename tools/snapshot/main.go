package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/slincem/landust/pkg/api"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	var data []byte
	var err error
	if os.Args[1] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(os.Args[1])
	}
	if err != nil {
		fmt.Printf("Cannot read snapshot: %v\n", err)
		os.Exit(1)
	}

	var view api.BattleView
	if err := json.Unmarshal(data, &view); err != nil {
		fmt.Printf("Broken snapshot JSON: %v\n", err)
		os.Exit(1)
	}
	if view.Grid == nil {
		fmt.Println("Snapshot has no grid metadata")
		os.Exit(1)
	}

	render(&view)
}

// render печатает арену и состояние бойцов на момент снимка.
func render(view *api.BattleView) {
	fmt.Printf("Круг %d, фаза %s", view.Round, view.Phase)
	if view.Winner != nil {
		fmt.Printf(" - бой окончен, победила команда %d", *view.Winner)
	}
	fmt.Println()

	// Поле: '.' - пол, '#' - стена, буква - боец, 'x' - павший
	grid := make([][]rune, view.Grid.Height)
	for y := range grid {
		grid[y] = make([]rune, view.Grid.Width)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for _, cell := range view.Cells {
		if cell.IsWall && inGrid(grid, cell.X, cell.Y) {
			grid[cell.Y][cell.X] = '#'
		}
	}

	marks := map[string]rune{}
	for _, u := range view.Units {
		mark := unitMark(u)
		marks[u.ID] = mark
		if u.Alive && inGrid(grid, u.Pos.X, u.Pos.Y) {
			grid[u.Pos.Y][u.Pos.X] = mark
		}
	}

	for _, row := range grid {
		fmt.Println(string(row))
	}

	fmt.Println()
	for _, u := range view.Units {
		status := fmt.Sprintf("%c %s [команда %d]  HP %d/%d  ОД %d  ОП %d  (%d,%d)",
			marks[u.ID], u.Name, u.Team, u.HP, u.MaxHP, u.AP, u.MP, u.Pos.X, u.Pos.Y)
		if !u.Alive {
			status += "  - пал"
		}
		if u.ID == view.ActiveUnitID {
			status += "  <- ходит"
		}
		fmt.Println(status)
	}

	if len(view.Logs) > 0 {
		fmt.Println()
		for _, entry := range view.Logs {
			fmt.Printf("[%s] %s\n", entry.Type, entry.Text)
		}
	}
}

// unitMark выбирает символ бойца: первая буква имени, павшие - 'x'.
func unitMark(u api.UnitView) rune {
	if !u.Alive {
		return 'x'
	}
	for _, r := range u.Name {
		return r
	}
	return '?'
}

func inGrid(grid [][]rune, x, y int) bool {
	return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y])
}

func printHelp() {
	fmt.Println(`Snapshot Viewer - просмотр снимка боя
Usage:
  snapshot <file>   - прочитать снимок из файла (JSON от sandbox -out)
  snapshot -        - прочитать снимок из stdin

Печатает арену в ASCII, состояние бойцов и журнал боя.`)
}
