package systems

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/pkg/logger"
)

// Effect - одно атомарное воздействие заклинания. Заклинание несет конвейер
// эффектов; каждый применяется независимо и сам отвечает за свои проверки.
type Effect interface {
	// Apply применяет эффект к цели. false означает "эффект не сработал"
	// (мертвая цель, занятая клетка, повторный бафф). Это не ошибка
	// конвейера: остальные эффекты заклинания все равно применяются.
	Apply(caster, target *domain.Unit, ctx *Context) bool

	// Type - строковый тип эффекта для логов.
	Type() string
}

// Context - окружение применения эффекта: поле боя и клетка, в которую
// целился кастер. Цель-юнит (если она есть) передается в Apply отдельно.
type Context struct {
	Board *domain.Board
	Cell  domain.Position
}

// effectBuilder собирает эффект из конфигурации заклинания.
type effectBuilder func(cfg domain.EffectConfig) Effect

// Реестр типов эффектов. Новый эффект = новая структура + строка здесь.
var effectRegistry = map[string]effectBuilder{
	domain.EffectDamage: func(cfg domain.EffectConfig) Effect {
		return &DamageEffect{Value: cfg.Value}
	},
	domain.EffectHeal: func(cfg domain.EffectConfig) Effect {
		return &HealEffect{Value: cfg.Value}
	},
	domain.EffectBuffAP: func(cfg domain.EffectConfig) Effect {
		return &BuffAPEffect{Value: cfg.Value, Duration: cfg.Duration, Source: cfg.SourceSpell}
	},
	domain.EffectDrainAP: func(cfg domain.EffectConfig) Effect {
		return &DrainAPEffect{Value: cfg.Value, Duration: cfg.Duration}
	},
	domain.EffectTeleport: func(cfg domain.EffectConfig) Effect {
		return &TeleportEffect{}
	},
	domain.EffectPush: func(cfg domain.EffectConfig) Effect {
		return &PushEffect{Distance: cfg.Value}
	},
}

// NewEffect создает эффект по конфигурации. Неизвестный тип - ошибка:
// молча пропущенный эффект исказит бой сильнее, чем отказ при сборке.
func NewEffect(cfg domain.EffectConfig) (Effect, error) {
	build, ok := effectRegistry[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unknown effect type %q", cfg.Type)
	}
	return build(cfg), nil
}

// BuildEffects собирает весь конвейер эффектов заклинания.
func BuildEffects(sp *domain.Spell) ([]Effect, error) {
	effects := make([]Effect, 0, len(sp.Effects))
	for _, cfg := range sp.Effects {
		eff, err := NewEffect(cfg)
		if err != nil {
			return nil, fmt.Errorf("spell %q: %w", sp.Name, err)
		}
		effects = append(effects, eff)
	}
	return effects, nil
}

// --- УРОН И ЛЕЧЕНИЕ ---

// DamageEffect наносит цели прямой урон.
type DamageEffect struct {
	Value int
}

func (e *DamageEffect) Type() string { return domain.EffectDamage }

func (e *DamageEffect) Apply(caster, target *domain.Unit, ctx *Context) bool {
	if target == nil || !target.IsAlive() {
		return false
	}

	hpBefore := target.HP
	died := target.TakeDamage(e.Value)

	logger.Log.WithFields(logrus.Fields{
		"component": "effect",
		"type":      e.Type(),
		"caster":    caster.Name,
		"target":    target.Name,
		"value":     e.Value,
		"hp_before": hpBefore,
		"hp_after":  target.HP,
		"died":      died,
	}).Info("Damage resolved")

	return true
}

// HealEffect восстанавливает цели здоровье, не выше максимума.
// Мертвых не воскрешает.
type HealEffect struct {
	Value int
}

func (e *HealEffect) Type() string { return domain.EffectHeal }

func (e *HealEffect) Apply(caster, target *domain.Unit, ctx *Context) bool {
	if target == nil || !target.IsAlive() {
		return false
	}

	hpBefore := target.HP
	target.Heal(e.Value)

	logger.Log.WithFields(logrus.Fields{
		"component": "effect",
		"type":      e.Type(),
		"caster":    caster.Name,
		"target":    target.Name,
		"value":     e.Value,
		"hp_before": hpBefore,
		"hp_after":  target.HP,
	}).Info("Heal resolved")

	return true
}

// --- ОД: БАФФ И ДРЕЙН ---

// BuffAPEffect вешает на цель временный бонус ОД. Повторный каст того же
// заклинания на цель с уже висящим баффом отклоняется: бонусы одного
// источника не складываются. При касте на самого себя бонус выдается
// немедленно - получатель посреди своего хода, ждать StartTurn ему нечего.
type BuffAPEffect struct {
	Value    int
	Duration int
	Source   string
}

func (e *BuffAPEffect) Type() string { return domain.EffectBuffAP }

func (e *BuffAPEffect) Apply(caster, target *domain.Unit, ctx *Context) bool {
	if target == nil || !target.IsAlive() {
		return false
	}
	if target.HasStateFrom(domain.StateBuffAP, e.Source) {
		logger.Log.WithFields(logrus.Fields{
			"component": "effect",
			"type":      e.Type(),
			"target":    target.Name,
			"source":    e.Source,
		}).Debug("Buff rejected: same-source bonus already active")
		return false
	}

	target.ApplyState(domain.State{
		Type:     domain.StateBuffAP,
		Duration: e.Duration,
		Value:    e.Value,
		Source:   e.Source,
		Expire:   domain.ExpireStart,
	})
	if target == caster {
		target.AP += e.Value
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "effect",
		"type":      e.Type(),
		"caster":    caster.Name,
		"target":    target.Name,
		"value":     e.Value,
		"duration":  e.Duration,
		"source":    e.Source,
	}).Info("AP buff applied")

	return true
}

// DrainAPEffect отнимает у цели ОД и подавляет их ближайшее восстановление.
// В состоянии запоминается фактическая потеря, а не запрошенная: у цели
// могло остаться меньше ОД, чем снимает дрейн.
type DrainAPEffect struct {
	Value    int
	Duration int
}

func (e *DrainAPEffect) Type() string { return domain.EffectDrainAP }

func (e *DrainAPEffect) Apply(caster, target *domain.Unit, ctx *Context) bool {
	if target == nil || !target.IsAlive() {
		return false
	}

	drained := target.LoseAP(e.Value)
	target.ApplyState(domain.State{
		Type:     domain.StateAPLoss,
		Duration: e.Duration,
		Value:    drained,
		Expire:   domain.ExpireEnd,
	})
	target.SuppressAPRestore()

	logger.Log.WithFields(logrus.Fields{
		"component": "effect",
		"type":      e.Type(),
		"caster":    caster.Name,
		"target":    target.Name,
		"requested": e.Value,
		"drained":   drained,
		"ap_after":  target.AP,
	}).Info("AP drain resolved")

	return true
}

// --- ПЕРЕМЕЩАЮЩИЕ ЭФФЕКТЫ ---

// TeleportEffect мгновенно переносит САМОГО КАСТЕРА в выбранную клетку.
type TeleportEffect struct{}

func (e *TeleportEffect) Type() string { return domain.EffectTeleport }

func (e *TeleportEffect) Apply(caster, target *domain.Unit, ctx *Context) bool {
	if ctx == nil || ctx.Board == nil {
		return false
	}
	if !ctx.Board.IsFree(ctx.Cell) {
		return false
	}

	from := caster.Pos
	relocate(ctx.Board, caster, ctx.Cell)

	logger.Log.WithFields(logrus.Fields{
		"component": "effect",
		"type":      e.Type(),
		"caster":    caster.Name,
		"from":      from,
		"to":        ctx.Cell,
	}).Info("Teleport resolved")

	return true
}

// PushEffect отталкивает цель от кастера вдоль направляющего вектора.
// Дробное направление округляется до ближайшей клетки. Если итоговая
// клетка занята, непроходима или вне поля - толчок не удался целиком,
// цель остается на месте (частичного скольжения нет).
type PushEffect struct {
	Distance int
}

func (e *PushEffect) Type() string { return domain.EffectPush }

func (e *PushEffect) Apply(caster, target *domain.Unit, ctx *Context) bool {
	if target == nil || !target.IsAlive() || ctx == nil || ctx.Board == nil {
		return false
	}

	dx := float64(target.Pos.X - caster.Pos.X)
	dy := float64(target.Pos.Y - caster.Pos.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		// Кастер и цель в одной точке - направления нет
		return false
	}

	dest := domain.Position{
		X: target.Pos.X + int(math.Round(dx/length*float64(e.Distance))),
		Y: target.Pos.Y + int(math.Round(dy/length*float64(e.Distance))),
	}
	if dest == target.Pos || !ctx.Board.IsFree(dest) {
		logger.Log.WithFields(logrus.Fields{
			"component": "effect",
			"type":      e.Type(),
			"target":    target.Name,
			"dest":      dest,
		}).Debug("Push blocked: destination not free")
		return false
	}

	from := target.Pos
	relocate(ctx.Board, target, dest)

	logger.Log.WithFields(logrus.Fields{
		"component": "effect",
		"type":      e.Type(),
		"caster":    caster.Name,
		"target":    target.Name,
		"from":      from,
		"to":        dest,
	}).Info("Push resolved")

	return true
}

// relocate переносит юнита на новую клетку, синхронизируя занятость поля.
// Свободу клетки проверяет вызывающий.
func relocate(b *domain.Board, u *domain.Unit, to domain.Position) {
	b.SetOccupant(u.Pos, nil)
	u.Pos = to
	b.SetOccupant(to, u)
}
