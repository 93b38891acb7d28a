package arena

import "github.com/slincem/landust/internal/domain"

// ClassTemplate определяет боевой класс: базовые ресурсы и арсенал
type ClassTemplate struct {
	Name   string // отображаемое имя по умолчанию
	MaxHP  int
	MaxAP  int
	MaxMP  int
	Spells []*domain.Spell
}

// SpawnUnit создает юнита из шаблона. Заклинания КЛОНИРУЮТСЯ:
// кулдауны и счетчики у каждого бойца свои, шаблон остается чистым.
func (t ClassTemplate) SpawnUnit(id, name string, team int) *domain.Unit {
	spells := make([]*domain.Spell, 0, len(t.Spells))
	for _, sp := range t.Spells {
		spells = append(spells, sp.Clone())
	}
	if name == "" {
		name = t.Name
	}
	return domain.NewUnit(domain.UnitConfig{
		ID:     id,
		Name:   name,
		Team:   team,
		MaxHP:  t.MaxHP,
		MaxAP:  t.MaxAP,
		MaxMP:  t.MaxMP,
		Spells: spells,
	})
}

// --- КЛАССЫ ---

var Warrior = ClassTemplate{
	Name:   "Воин",
	MaxHP:  24,
	MaxAP:  domain.DefaultMaxAP,
	MaxMP:  4,
	Spells: []*domain.Spell{SwordStrike, Ram, BattleCry},
}

var Mage = ClassTemplate{
	Name:   "Маг",
	MaxHP:  16,
	MaxAP:  domain.DefaultMaxAP,
	MaxMP:  domain.DefaultMaxMP,
	Spells: []*domain.Spell{FireArrow, Exhaust, Leap},
}

var Priest = ClassTemplate{
	Name:   "Жрец",
	MaxHP:  18,
	MaxAP:  domain.DefaultMaxAP,
	MaxMP:  domain.DefaultMaxMP,
	Spells: []*domain.Spell{Mending, BattleCry, SecondWind, Shove},
}

// ClassTemplates - карта всех доступных классов
var ClassTemplates = map[string]ClassTemplate{
	"warrior": Warrior,
	"mage":    Mage,
	"priest":  Priest,
}
