package actions

import (
	"fmt"

	"github.com/slincem/landust/internal/engine/handlers"
)

// HandleEndTurn завершает ход активного юнита и передает его следующему
// живому по ротации.
func HandleEndTurn(ctx handlers.Context) (handlers.Result, error) {
	prev := ctx.Actor

	next := ctx.Turns.EndCurrentTurn()
	if next == nil {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s завершает ход. Живых не осталось.", prev.Name),
			MsgType: "INFO",
		}, nil
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s завершает ход. Ходит %s (круг %d).", prev.Name, next.Name, ctx.Turns.Round()),
		MsgType: "INFO",
	}, nil
}
