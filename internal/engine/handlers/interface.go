package handlers

import (
	"encoding/json"

	"github.com/slincem/landust/internal/domain"
)

// TurnController описывает то, что хендлерам нужно от менеджера ходов.
// Battle неявно реализует этот интерфейс (развязка от пакета engine).
type TurnController interface {
	// EndCurrentTurn завершает ход активного юнита и возвращает следующего
	// (nil - живых не осталось).
	EndCurrentTurn() *domain.Unit

	// Round возвращает номер текущего круга боя.
	Round() int
}

// Context передает хендлеру состояние боя.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Board *domain.Board
	Units []*domain.Unit // Все юниты боя, включая мертвых
	Turns TurnController
	Actor *domain.Unit // Тот, чей сейчас ход
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в журнал боя напрямую, он возвращает данные.
type Result struct {
	Msg     string `json:"msg,omitempty"`     // Текст для журнала
	MsgType string `json:"msgType,omitempty"` // Тип записи (INFO, COMBAT, ERROR)
}

// HandlerFunc - это контракт для любой команды (MOVE, CAST, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
