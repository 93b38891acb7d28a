package systems

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/pkg/logger"
)

// Ошибки предусловий каста. Оркестрация сверяет их через errors.Is
// и превращает в сообщения для клиента.
var (
	ErrNotEnoughAP     = errors.New("not enough ap")
	ErrSpellOnCooldown = errors.New("spell on cooldown")
	ErrCastLimit       = errors.New("cast limit reached this turn")
	ErrOutOfRange      = errors.New("target out of range")
	ErrNoLineOfSight   = errors.New("no line of sight to target")
	ErrBadTarget       = errors.New("invalid target for spell")
)

// CanCast проверяет все предусловия каста, ничего не меняя.
// nil - кастовать можно. Порядок проверок фиксирован: ресурсы, кулдаун,
// лимит кастов, дальность, видимость, пригодность цели.
//
// Заклинания с целью "none" минуют ВСЕ общие проверки, кроме стоимости,
// кулдауна и лимита: у них нет клетки, к которой применимы дальность и цель.
func CanCast(b *domain.Board, caster *domain.Unit, sp *domain.Spell, cell domain.Position) error {
	if caster.AP < sp.Cost {
		return ErrNotEnoughAP
	}
	if !sp.IsReady() {
		return ErrSpellOnCooldown
	}
	if !sp.AllowsMoreCasts(caster.CastsOf(sp.Name)) {
		return ErrCastLimit
	}

	if sp.Target == domain.TargetNone {
		return nil
	}

	if !b.InBounds(cell) {
		return ErrBadTarget
	}

	dist := caster.Pos.ManhattanTo(cell)
	if dist > sp.Range || dist < sp.MinRange {
		return ErrOutOfRange
	}

	if sp.RequiresSight && !HasLineOfSight(b, caster.Pos, cell) {
		return ErrNoLineOfSight
	}

	occupant := b.OccupantAt(cell)
	switch sp.Target {
	case domain.TargetEnemy:
		if occupant == nil || !caster.IsEnemyOf(occupant) {
			return ErrBadTarget
		}
	case domain.TargetAlly:
		// Союзная цель включает самого кастера
		if occupant == nil || (occupant != caster && !caster.IsAllyOf(occupant)) {
			return ErrBadTarget
		}
	case domain.TargetSelfOnly:
		if occupant != caster {
			return ErrBadTarget
		}
	case domain.TargetUnit:
		if occupant == nil {
			return ErrBadTarget
		}
	case domain.TargetEmpty:
		if !b.IsFree(cell) {
			return ErrBadTarget
		}
	case domain.TargetUnitOrEmpty:
		if occupant == nil && !b.IsFree(cell) {
			return ErrBadTarget
		}
	default:
		return ErrBadTarget
	}

	return nil
}

// Cast выполняет каст заклинания в клетку.
//
// Стоимость списывается РОВНО ОДИН РАЗ, до применения эффектов, сколько бы
// эффектов ни несло заклинание и сколько бы из них ни сработало. Возврата
// ОД за полностью несработавший каст нет - предусловия пройдены, попытка
// состоялась.
//
// Возвращает true, если сработал хотя бы один эффект. Кулдаун и счетчик
// кастов взводятся только при успехе. Ошибка - только от предусловий или
// от битой конфигурации эффектов; (false, nil) - легальный "выстрел в
// молоко".
func Cast(b *domain.Board, caster *domain.Unit, sp *domain.Spell, cell domain.Position) (bool, error) {
	if err := CanCast(b, caster, sp, cell); err != nil {
		return false, err
	}

	effects, err := BuildEffects(sp)
	if err != nil {
		return false, err
	}

	caster.LoseAP(sp.Cost)

	// У заклинаний без цели эффекты применяются к самому кастеру:
	// клетка в команде при этом игнорируется
	target := b.OccupantAt(cell)
	if sp.Target == domain.TargetNone {
		target = caster
	}
	ctx := &Context{Board: b, Cell: cell}

	applied := false
	for _, eff := range effects {
		if eff.Apply(caster, target, ctx) {
			applied = true
		}
	}

	if applied {
		sp.ArmCooldown()
		caster.RecordCast(sp.Name)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "casting",
		"caster":    caster.Name,
		"spell":     sp.Name,
		"cell":      cell,
		"applied":   applied,
		"ap_left":   caster.AP,
	}).Info("Cast resolved")

	return applied, nil
}
