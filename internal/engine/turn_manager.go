package engine

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/pkg/logger"
)

// События фазовой машины хода
const (
	eventOpen   = "open"   // start -> main: ресурсы восстановлены, ход открыт
	eventClose  = "close"  // main -> end: поступила команда END_TURN
	eventRotate = "rotate" // end -> start: ход передан следующему юниту
)

// TurnManager ведет фиксированную ротацию ходов: юниты ходят строго в том
// порядке, в котором были добавлены в бой. Никаких очередей с приоритетом -
// инициатива в этой игре не перекупается.
//
// Мертвые юниты остаются в ротации, но пропускаются. Фазы внутри одного
// хода (start -> main -> end) охраняет конечный автомат: незаконный переход
// означает баг движка, а не ошибку игрока.
type TurnManager struct {
	units   []*domain.Unit
	current int
	round   int
	phase   *fsm.FSM
}

// NewTurnManager создает ротацию по переданному порядку юнитов.
// Бой открывается вызовом Begin.
func NewTurnManager(units []*domain.Unit) *TurnManager {
	return &TurnManager{
		units:   units,
		current: -1,
		round:   0,
		phase: fsm.NewFSM(
			domain.PhaseStart,
			fsm.Events{
				{Name: eventOpen, Src: []string{domain.PhaseStart}, Dst: domain.PhaseMain},
				{Name: eventClose, Src: []string{domain.PhaseMain}, Dst: domain.PhaseEnd},
				{Name: eventRotate, Src: []string{domain.PhaseEnd}, Dst: domain.PhaseStart},
			},
			fsm.Callbacks{
				"enter_state": func(_ context.Context, e *fsm.Event) {
					logger.Log.WithFields(logrus.Fields{
						"component": "turn_manager",
						"from":      e.Src,
						"to":        e.Dst,
					}).Debug("Turn phase changed")
				},
			},
		),
	}
}

// Begin открывает бой: первый живой юнит по порядку получает ход.
// Возвращает nil, если живых нет.
func (tm *TurnManager) Begin() *domain.Unit {
	tm.round = 1
	for i, u := range tm.units {
		if !u.IsAlive() {
			continue
		}
		tm.current = i
		u.StartTurn()
		tm.transition(eventOpen)
		return u
	}
	return nil
}

// Current возвращает активного юнита (nil до Begin и после гибели всех).
func (tm *TurnManager) Current() *domain.Unit {
	if tm.current < 0 || tm.current >= len(tm.units) {
		return nil
	}
	return tm.units[tm.current]
}

// Phase возвращает текущую фазу хода (start|main|end).
func (tm *TurnManager) Phase() string {
	return tm.phase.Current()
}

// Round возвращает номер круга. Круг закрывается, когда ротация
// возвращается к началу порядка.
func (tm *TurnManager) Round() int {
	return tm.round
}

// Units возвращает порядок ротации (включая мертвых).
func (tm *TurnManager) Units() []*domain.Unit {
	return tm.units
}

// EndTurn завершает ход активного юнита: фаза конца хода, передача хода
// следующему живому по кругу, его фаза начала хода. Возвращает нового
// активного юнита; nil - живых не осталось, ротация остановлена.
func (tm *TurnManager) EndTurn() *domain.Unit {
	cur := tm.Current()
	if cur == nil {
		return nil
	}

	tm.transition(eventClose)
	cur.EndTurn()
	tm.transition(eventRotate)

	next := tm.advance()
	if next == nil {
		tm.current = -1
		return nil
	}

	next.StartTurn()
	tm.transition(eventOpen)

	logger.Log.WithFields(logrus.Fields{
		"component": "turn_manager",
		"unit_id":   next.ID,
		"unit":      next.Name,
		"round":     tm.round,
	}).Info("Turn passed")

	return next
}

// advance ищет следующего живого юнита по кругу, начиная со следующей
// позиции. Возврат к началу порядка (или полный круг до себя самого)
// открывает новый раунд.
func (tm *TurnManager) advance() *domain.Unit {
	n := len(tm.units)
	for i := 1; i <= n; i++ {
		idx := (tm.current + i) % n
		u := tm.units[idx]
		if !u.IsAlive() {
			continue
		}
		if idx <= tm.current {
			tm.round++
		}
		tm.current = idx
		return u
	}
	return nil
}

// transition выполняет переход фазовой машины. Все переходы управляются
// самим движком, поэтому отказ - это баг, а не пользовательская ошибка.
func (tm *TurnManager) transition(event string) {
	if err := tm.phase.Event(context.Background(), event); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "turn_manager",
			"event":     event,
			"phase":     tm.phase.Current(),
		}).WithError(err).Error("Illegal turn phase transition")
	}
}
