package api

import (
	"encoding/json"
)

// --- ДВИЖОК -> КЛИЕНТ ---

// BattleView это корневой объект, который движок отдает клиенту.
// Он представляет собой полный "снимок" боя: поле, юниты, порядок ходов
// и журнал. Строится заново после каждой команды - клиент ничего не
// доращивает сам.
type BattleView struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Round номер текущего круга боя (каждый юнит сходил по разу = круг).
	Round int `json:"round"`

	// Phase текущая фаза хода активного юнита (start|main|end).
	Phase string `json:"phase"`

	// ActiveUnitID ID юнита, чей ход сейчас.
	// КЛИЕНТ ДОЛЖЕН СРАВНИВАТЬ ЭТО ПОЛЕ СО СВОИМ ID: совпало - значит,
	// можно принимать ввод от игрока.
	ActiveUnitID string `json:"activeUnitId,omitempty"`

	// Winner номер команды-победителя. Поле появляется только когда бой
	// закончен; -1 означает взаимное истребление.
	Winner *int `json:"winner,omitempty"`

	// Grid метаданные о размере поля.
	Grid *GridMeta `json:"grid,omitempty"`

	// Cells срез клеток поля. Пустые проходимые клетки без юнитов
	// опускаются - клиент дорисует их по Grid.
	Cells []CellView `json:"cells,omitempty"`

	// Units срез всех юнитов боя, включая мертвых (для мемориала).
	Units []UnitView `json:"units,omitempty"`

	// TurnOrder ID юнитов в порядке ротации ходов.
	TurnOrder []string `json:"turnOrder,omitempty"`

	// Logs срез новых сообщений, накопленных с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры поля, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// CellView это DTO для одной клетки поля.
type CellView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// IsWall true, если клетка является непроходимым препятствием.
	IsWall bool `json:"isWall,omitempty"`

	// OccupantID ID юнита, стоящего на клетке.
	OccupantID string `json:"occupantId,omitempty"`
}

// UnitView это DTO для юнита.
type UnitView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team int    `json:"team"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	AP    int `json:"ap"`
	MaxAP int `json:"maxAp"`
	MP    int `json:"mp"`
	MaxMP int `json:"maxMp"`

	Alive bool `json:"alive"`

	// SelectedSpell индекс выбранного заклинания, -1 = не выбрано.
	SelectedSpell int `json:"selectedSpell"`

	Spells []SpellView `json:"spells,omitempty"`
	States []StateView `json:"states,omitempty"`
}

// SpellView это DTO для заклинания в арсенале юнита.
type SpellView struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Range    int    `json:"range"`
	MinRange int    `json:"minRange,omitempty"`
	Target   string `json:"target"`

	// Cooldown сколько ходов осталось до готовности (0 = готово).
	Cooldown int `json:"cooldown,omitempty"`

	// MaxCastsPerTurn лимит кастов за ход, -1 = без лимита.
	MaxCastsPerTurn int `json:"maxCastsPerTurn,omitempty"`
}

// StateView это DTO для временного состояния на юните.
type StateView struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Value    int    `json:"value,omitempty"`
	Duration int    `json:"duration"`
	Source   string `json:"source,omitempty"`
	Expire   string `json:"expire"`
}

// LogEntry представляет одну запись в журнале боя.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> ДВИЖОК ---

// ClientCommand это корневой объект для всех команд клиента.
type ClientCommand struct {
	// Token ID юнита, от имени которого выполняется действие.
	// Пустой токен означает "текущий активный юнит" (локальная партия).
	Token string `json:"token,omitempty"`

	// Action название действия (MOVE, CAST, SELECT_SPELL, END_TURN, INIT).
	Action string `json:"action"`

	// Payload JSON-объект с данными. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// MovePayload используется для MOVE: целевая клетка, путь ищет движок.
type MovePayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CastPayload используется для CAST: клетка, в которую летит заклинание.
type CastPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SelectSpellPayload используется для SELECT_SPELL.
type SelectSpellPayload struct {
	// Index индекс заклинания в арсенале юнита; -1 снимает выбор.
	Index int `json:"index"`
}
