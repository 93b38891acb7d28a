package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/internal/engine/handlers"
	"github.com/slincem/landust/internal/engine/handlers/actions"
	"github.com/slincem/landust/pkg/api"
	"github.com/slincem/landust/pkg/logger"
)

// Ошибки диспетчера команд. Игровые неудачи (нет пути, не хватает ОД)
// ошибками НЕ являются - они возвращаются как Result с MsgType "ERROR".
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNotStarted    = errors.New("battle not started")
	ErrBattleOver    = errors.New("battle is over")
	ErrOutOfTurn     = errors.New("command out of turn")
)

// Battle - одна партия: поле, бойцы, ротация ходов и журнал.
// Все команды проходят через единую точку Dispatch; снаружи Battle
// управляется так же, как управлялся бы по сети.
type Battle struct {
	Board *domain.Board
	Units []*domain.Unit
	Turns *TurnManager

	Logs []api.LogEntry

	handlers  map[domain.ActionType]handlers.HandlerFunc
	started   bool
	announced bool
}

// NewBattle собирает бой из конфигурации: расставляет юнитов по клеткам
// и фиксирует ротацию ходов. Конфликт расстановки (занятая клетка, стена,
// выход за поле) - ошибка сборки, а не игровой момент.
func NewBattle(cfg Config) (*Battle, error) {
	board := cfg.Board
	if board == nil {
		board = domain.NewBoard(domain.DefaultBoardWidth, domain.DefaultBoardHeight)
	}
	if len(cfg.Placements) == 0 {
		return nil, fmt.Errorf("battle needs at least one unit")
	}

	units := make([]*domain.Unit, 0, len(cfg.Placements))
	for _, p := range cfg.Placements {
		if p.Unit == nil {
			return nil, fmt.Errorf("placement without unit")
		}
		if !board.InBounds(p.At) || !board.IsWalkable(p.At) {
			return nil, fmt.Errorf("unit %q: cell %s is not placeable", p.Unit.Name, p.At)
		}
		if board.IsOccupied(p.At) {
			return nil, fmt.Errorf("unit %q: cell %s is already taken", p.Unit.Name, p.At)
		}
		p.Unit.Pos = p.At
		board.SetOccupant(p.At, p.Unit)
		units = append(units, p.Unit)
	}

	b := &Battle{
		Board:    board,
		Units:    units,
		Turns:    NewTurnManager(units),
		Logs:     []api.LogEntry{},
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	b.registerHandlers()

	logger.Log.WithFields(logrus.Fields{
		"component": "battle",
		"units":     len(units),
		"board_w":   board.Width(),
		"board_h":   board.Height(),
	}).Info("Battle assembled")

	return b, nil
}

func (b *Battle) registerHandlers() {
	b.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	b.handlers[domain.ActionCast] = handlers.WithPayload(actions.HandleCast)
	b.handlers[domain.ActionSelectSpell] = handlers.WithPayload(actions.HandleSelectSpell)
	b.handlers[domain.ActionEndTurn] = handlers.WithEmptyPayload(actions.HandleEndTurn)
	b.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
}

// Start открывает бой: первый юнит ротации получает ход.
// Повторный вызов ничего не меняет.
func (b *Battle) Start() *domain.Unit {
	if b.started {
		return b.Turns.Current()
	}
	b.started = true
	first := b.Turns.Begin()
	if first != nil {
		b.AddLog(fmt.Sprintf("Бой начался. Первым ходит %s.", first.Name), "INFO")
	}
	return first
}

// Dispatch принимает команду от внешнего мира и исполняет ее.
//
// Ошибка возвращается за нарушение протокола: неизвестное действие, битый
// payload, команда не в свой ход, бой не начат или уже закончен. Игровые
// невозможности приходят как Result с MsgType "ERROR" - это легальный
// ответ, ход при этом не тратится.
func (b *Battle) Dispatch(cmd api.ClientCommand) (handlers.Result, error) {
	actionType := domain.ParseAction(cmd.Action)
	handler, ok := b.handlers[actionType]
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	if !b.started {
		return handlers.EmptyResult(), ErrNotStarted
	}

	actor := b.Turns.Current()

	// INIT не требует хода: снимок боя можно запросить всегда
	if actionType != domain.ActionInit {
		if _, over := b.Winner(); over {
			return handlers.EmptyResult(), ErrBattleOver
		}
		if actor == nil {
			return handlers.EmptyResult(), ErrBattleOver
		}
		if cmd.Token != "" && cmd.Token != actor.ID {
			return handlers.EmptyResult(), fmt.Errorf("%w: token %q, active %q", ErrOutOfTurn, cmd.Token, actor.ID)
		}
	}

	ctx := handlers.Context{
		Board: b.Board,
		Units: b.Units,
		Turns: b,
		Actor: actor,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		return result, err
	}

	// После каждой команды: уборка погибших и запись в журнал
	b.sweepDead()

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		b.AddLog(result.Msg, msgType)
	}

	if team, over := b.Winner(); over && !b.announced {
		b.announced = true
		if team >= 0 {
			b.AddLog(fmt.Sprintf("Бой окончен. Побеждает команда %d.", team), "INFO")
		} else {
			b.AddLog("Бой окончен. Победителей нет.", "INFO")
		}
	}

	return result, nil
}

// EndCurrentTurn реализует handlers.TurnController: завершает ход
// активного юнита и возвращает следующего.
func (b *Battle) EndCurrentTurn() *domain.Unit {
	return b.Turns.EndTurn()
}

// Round реализует handlers.TurnController.
func (b *Battle) Round() int {
	return b.Turns.Round()
}

// Winner возвращает команду-победителя. over=true, когда в живых осталась
// максимум одна команда; при полном взаимном истреблении team = -1.
func (b *Battle) Winner() (team int, over bool) {
	aliveTeams := make(map[int]bool)
	for _, u := range b.Units {
		if u.IsAlive() {
			aliveTeams[u.Team] = true
		}
	}
	switch len(aliveTeams) {
	case 0:
		return -1, true
	case 1:
		for t := range aliveTeams {
			return t, true
		}
	}
	return -1, false
}

// UnitByID находит юнита по ID (включая мертвых).
func (b *Battle) UnitByID(id string) *domain.Unit {
	for _, u := range b.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// AliveUnits возвращает живых юнитов в порядке ротации.
func (b *Battle) AliveUnits() []*domain.Unit {
	alive := make([]*domain.Unit, 0, len(b.Units))
	for _, u := range b.Units {
		if u.IsAlive() {
			alive = append(alive, u)
		}
	}
	return alive
}

// sweepDead убирает погибших с поля. Юнит остается в списке и в ротации
// (его пропустят), но клетку он больше не занимает.
func (b *Battle) sweepDead() {
	for _, u := range b.Units {
		if u.IsAlive() {
			continue
		}
		if b.Board.OccupantAt(u.Pos) == u {
			b.Board.SetOccupant(u.Pos, nil)
			b.AddLog(fmt.Sprintf("%s погибает.", u.Name), "COMBAT")
		}
	}
}

// AddLog добавляет запись в журнал боя
func (b *Battle) AddLog(text, logType string) {
	b.Logs = append(b.Logs, api.LogEntry{
		ID:        "log_" + uuid.NewString()[:8],
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"component": "battle_log",
		"log_type":  logType,
	}).Info(text)
}

// DrainLogs возвращает накопленные записи и очищает буфер.
// Копия нужна, чтобы снимок не делил память с живым журналом.
func (b *Battle) DrainLogs() []api.LogEntry {
	logs := make([]api.LogEntry, len(b.Logs))
	copy(logs, b.Logs)
	b.Logs = b.Logs[:0]
	return logs
}
