package arena

import "github.com/slincem/landust/internal/domain"

// Справочник заклинаний. Здесь лежат ПРОТОТИПЫ: юниты получают личные
// копии через Clone, чтобы кулдауны и счетчики кастов не делились между
// бойцами. MaxCastsPerTurn = -1 означает "без лимита".

// --- УДАРЫ ---

var SwordStrike = &domain.Spell{
	Name:            "Удар меча",
	Cost:            3,
	Range:           1,
	MaxCastsPerTurn: 2,
	Target:          domain.TargetEnemy,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectDamage, Value: 5},
	},
}

var FireArrow = &domain.Spell{
	Name:            "Огненная стрела",
	Cost:            4,
	Range:           6,
	MinRange:        2,
	MaxCastsPerTurn: 1,
	Target:          domain.TargetEnemy,
	RequiresSight:   true,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectDamage, Value: 4},
	},
}

// Ram - составное заклинание: урон и отброс одним кастом.
// Оплата при этом одна, сколько бы эффектов ни сработало.
var Ram = &domain.Spell{
	Name:            "Таран",
	Cost:            3,
	Range:           1,
	MaxCastsPerTurn: 1,
	Target:          domain.TargetEnemy,
	Cooldown:        1,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectDamage, Value: 3},
		{Type: domain.EffectPush, Value: 2},
	},
}

// --- ПОДДЕРЖКА ---

var Mending = &domain.Spell{
	Name:            "Лечение",
	Cost:            3,
	Range:           4,
	MaxCastsPerTurn: 1,
	Target:          domain.TargetAlly,
	Cooldown:        1,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectHeal, Value: 4},
	},
}

var BattleCry = &domain.Spell{
	Name:            "Боевой клич",
	Cost:            2,
	Range:           3,
	MaxCastsPerTurn: 1,
	Target:          domain.TargetAlly,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectBuffAP, Value: 2, Duration: 3, SourceSpell: "Боевой клич"},
	},
}

// SecondWind - заклинание без цели: клетка в команде игнорируется,
// эффект ложится на самого кастера.
var SecondWind = &domain.Spell{
	Name:            "Второе дыхание",
	Cost:            2,
	MaxCastsPerTurn: 1,
	Target:          domain.TargetNone,
	Cooldown:        2,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectHeal, Value: 2},
	},
}

// --- КОНТРОЛЬ ---

var Exhaust = &domain.Spell{
	Name:            "Истощение",
	Cost:            4,
	Range:           5,
	MaxCastsPerTurn: 1,
	Target:          domain.TargetEnemy,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectDrainAP, Value: 2, Duration: 1},
	},
}

var Shove = &domain.Spell{
	Name:            "Толчок",
	Cost:            2,
	Range:           1,
	MaxCastsPerTurn: 2,
	Target:          domain.TargetEnemy,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectPush, Value: 2},
	},
}

// --- ПЕРЕМЕЩЕНИЕ ---

var Leap = &domain.Spell{
	Name:            "Скачок",
	Cost:            3,
	Range:           4,
	MaxCastsPerTurn: 1,
	Target:          domain.TargetEmpty,
	Cooldown:        3,
	Effects: []domain.EffectConfig{
		{Type: domain.EffectTeleport},
	},
}

// SpellTemplates - карта всех заклинаний справочника
var SpellTemplates = map[string]*domain.Spell{
	"sword_strike": SwordStrike,
	"fire_arrow":   FireArrow,
	"ram":          Ram,
	"mending":      Mending,
	"battle_cry":   BattleCry,
	"second_wind":  SecondWind,
	"exhaust":      Exhaust,
	"shove":        Shove,
	"leap":         Leap,
}
