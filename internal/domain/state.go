package domain

import "github.com/google/uuid"

// ExpirePhase - фаза хода, на которой тикает длительность стейта.
type ExpirePhase string

const (
	// ExpireStart - стейт тикает в начале хода владельца.
	ExpireStart ExpirePhase = "start"
	// ExpireEnd - стейт тикает в конце хода владельца.
	ExpireEnd ExpirePhase = "end"
)

// Известные типы стейтов. Тип - открытая строка: контент может
// вводить свои типы, движок интерпретирует только перечисленные.
const (
	StateBuffAP   = "buff_ap"
	StateDebuffAP = "debuff_ap"
	StateBuffMP   = "buff_mp"
	StateDebuffMP = "debuff_mp"
	// StateAPLoss - временная потеря ОД от дрейна. Особый стейт:
	// при истечении возвращает ОД к максимуму (см. Unit.EndTurn).
	StateAPLoss = "ap_loss"
	// StateMPLoss - аналог для ОП: пока висит, ОП не восстанавливаются.
	StateMPLoss = "mp_loss"
)

// State - временный модификатор на юните (бафф/дебафф).
type State struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Duration  int         `json:"duration"` // ходов до истечения, > 0 пока активен
	Value     int         `json:"value,omitempty"`
	Source    string      `json:"source,omitempty"` // имя заклинания-источника (дедуп баффов)
	Stackable bool        `json:"stackable,omitempty"`
	Expire    ExpirePhase `json:"expire"`
}

// NewStateID генерирует идентификатор экземпляра стейта.
func NewStateID() string {
	return "st_" + uuid.NewString()[:8]
}

// IsBonus сообщает, участвует ли стейт в пересчете ОД/ОП.
func (s State) IsBonus() bool {
	switch s.Type {
	case StateBuffAP, StateDebuffAP, StateBuffMP, StateDebuffMP:
		return true
	}
	return false
}
