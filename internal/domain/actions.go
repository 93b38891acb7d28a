package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionCast
	ActionSelectSpell
	ActionEndTurn
	// В будущем: ActionSurrender, ActionTaunt...
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":         ActionInit,
	"MOVE":         ActionMove,
	"CAST":         ActionCast,
	"SELECT_SPELL": ActionSelectSpell,
	"END_TURN":     ActionEndTurn,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:        "INIT",
	ActionMove:        "MOVE",
	ActionCast:        "CAST",
	ActionSelectSpell: "SELECT_SPELL",
	ActionEndTurn:     "END_TURN",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
