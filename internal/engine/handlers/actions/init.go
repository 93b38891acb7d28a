package actions

import "github.com/slincem/landust/internal/engine/handlers"

// HandleInit ничего не меняет: клиент запрашивает снимок боя,
// диспетчер построит его после выполнения команды.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать на арену Landust.",
		MsgType: "INFO",
	}, nil
}
