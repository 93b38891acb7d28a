package actions

import (
	"errors"
	"fmt"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/internal/engine/handlers"
	"github.com/slincem/landust/internal/systems"
	"github.com/slincem/landust/pkg/api"
)

// HandleCast кастует ВЫБРАННОЕ заклинание в клетку. Несработавшие
// предусловия - игровая неудача (Result ERROR), а не ошибка протокола:
// ход не тратится, клиент просто выбирает другую цель.
func HandleCast(ctx handlers.Context, p api.CastPayload) (handlers.Result, error) {
	actor := ctx.Actor
	sp := actor.SelectedSpellRef()
	if sp == nil {
		return handlers.Result{Msg: "Сначала выберите заклинание.", MsgType: "ERROR"}, nil
	}

	cell := domain.Position{X: p.X, Y: p.Y}
	applied, err := systems.Cast(ctx.Board, actor, sp, cell)
	if err != nil {
		if msg := castFailureText(err); msg != "" {
			return handlers.Result{Msg: msg, MsgType: "ERROR"}, nil
		}
		// Битая конфигурация эффектов - это уже не игровой момент
		return handlers.EmptyResult(), err
	}

	if !applied {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s кастует %s - без эффекта.", actor.Name, sp.Name),
			MsgType: "COMBAT",
		}, nil
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s кастует %s в %s.", actor.Name, sp.Name, cell),
		MsgType: "COMBAT",
	}, nil
}

// castFailureText переводит ошибку предусловия в сообщение для игрока.
// Пустая строка - ошибка не игровая.
func castFailureText(err error) string {
	switch {
	case errors.Is(err, systems.ErrNotEnoughAP):
		return "Не хватает ОД."
	case errors.Is(err, systems.ErrSpellOnCooldown):
		return "Заклинание перезаряжается."
	case errors.Is(err, systems.ErrCastLimit):
		return "Лимит кастов этого заклинания на ход исчерпан."
	case errors.Is(err, systems.ErrOutOfRange):
		return "Цель вне дальности."
	case errors.Is(err, systems.ErrNoLineOfSight):
		return "Цель не видна."
	case errors.Is(err, systems.ErrBadTarget):
		return "Неверная цель."
	}
	return ""
}
