package actions

import (
	"fmt"

	"github.com/slincem/landust/internal/engine/handlers"
	"github.com/slincem/landust/pkg/api"
)

// HandleSelectSpell выбирает заклинание для последующего CAST.
// Index = -1 снимает выбор.
func HandleSelectSpell(ctx handlers.Context, p api.SelectSpellPayload) (handlers.Result, error) {
	actor := ctx.Actor

	if !actor.SelectSpell(p.Index) {
		return handlers.Result{Msg: "Нет заклинания с таким номером.", MsgType: "ERROR"}, nil
	}
	if p.Index < 0 {
		return handlers.EmptyResult(), nil
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s готовит %s.", actor.Name, actor.SelectedSpellRef().Name),
		MsgType: "INFO",
	}, nil
}
