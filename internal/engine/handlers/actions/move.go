package actions

import (
	"fmt"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/internal/engine/handlers"
	"github.com/slincem/landust/internal/systems"
	"github.com/slincem/landust/pkg/api"
)

// HandleMove ведет юнита к целевой клетке по кратчайшему пути.
// Частичных перемещений нет: не хватает ОП - юнит остается на месте.
func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	actor := ctx.Actor
	dest := domain.Position{X: p.X, Y: p.Y}

	// Стоять на месте - не ошибка, но и не событие
	if dest == actor.Pos {
		return handlers.EmptyResult(), nil
	}

	// Манхэттенская дистанция - нижняя граница длины пути, так что
	// заведомо недостижимые клетки отсекаем без обхода поля
	if !actor.CanMoveTo(dest) {
		return handlers.Result{
			Msg:     fmt.Sprintf("Слишком далеко: нужно не меньше %d ОП, есть %d.", actor.Pos.ManhattanTo(dest), actor.MP),
			MsgType: "ERROR",
		}, nil
	}

	path := systems.FindPath(ctx.Board, actor.Pos, dest)
	if path == nil {
		return handlers.Result{Msg: "Путь прегражден.", MsgType: "ERROR"}, nil
	}
	if len(path) > actor.MP {
		return handlers.Result{
			Msg:     fmt.Sprintf("Слишком далеко: нужно %d ОП, есть %d.", len(path), actor.MP),
			MsgType: "ERROR",
		}, nil
	}

	// Каждый шаг сразу синхронизирует занятость поля: даже посреди
	// перемещения юнит занимает ровно одну клетку
	from := actor.Pos
	prev := actor.Pos
	steps := actor.MoveAlong(path, func(cell domain.Position) {
		ctx.Board.SetOccupant(prev, nil)
		ctx.Board.SetOccupant(cell, actor)
		prev = cell
	})

	return handlers.Result{
		Msg:     fmt.Sprintf("%s перемещается %s -> %s (%d ОП).", actor.Name, from, actor.Pos, steps),
		MsgType: "INFO",
	}, nil
}
