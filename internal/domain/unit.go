package domain

import "github.com/google/uuid"

// Unit - один боец на поле. Ресурсы: здоровье, ОД (очки действия,
// тратятся на заклинания) и ОП (очки перемещения, тратятся на шаги).
type Unit struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Team int      `json:"team"` // номер команды; одинаковый = союзники
	Pos  Position `json:"pos"`

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	AP    int `json:"ap"`
	MaxAP int `json:"maxAp"`
	MP    int `json:"mp"`
	MaxMP int `json:"maxMp"`

	// Spells - личные экземпляры заклинаний (не общие с шаблоном класса).
	Spells []*Spell `json:"spells"`

	// SelectedSpell - индекс выбранного заклинания, -1 = ничего не выбрано.
	// Сбрасывается каждый ход: выбор не переносится.
	SelectedSpell int `json:"selectedSpell"`

	// CastsThisTurn - сколько раз каждое заклинание скастовано в этом ходу.
	CastsThisTurn map[string]int `json:"-"`

	States []State `json:"states"`

	// restoreAPOnce - одноразовый предохранитель восстановления ОД.
	// Дрейн сбрасывает его в false, и следующий StartTurn один раз
	// НЕ вернет ОД к максимуму. После проверки флаг взводится обратно.
	restoreAPOnce bool
}

// UnitConfig - явная конфигурация для создания юнита.
// Один конструктор вместо перегрузок: все поля видны по имени.
type UnitConfig struct {
	ID     string
	Name   string
	Team   int
	MaxHP  int
	MaxAP  int
	MaxMP  int
	Spells []*Spell
}

// NewUnit создает юнита с полными ресурсами.
// Пустой ID заменяется сгенерированным.
func NewUnit(cfg UnitConfig) *Unit {
	id := cfg.ID
	if id == "" {
		id = "u_" + uuid.NewString()[:8]
	}
	return &Unit{
		ID:            id,
		Name:          cfg.Name,
		Team:          cfg.Team,
		HP:            cfg.MaxHP,
		MaxHP:         cfg.MaxHP,
		AP:            cfg.MaxAP,
		MaxAP:         cfg.MaxAP,
		MP:            cfg.MaxMP,
		MaxMP:         cfg.MaxMP,
		Spells:        cfg.Spells,
		SelectedSpell: -1,
		CastsThisTurn: make(map[string]int),
		restoreAPOnce: true,
	}
}

// IsAlive возвращает true, пока у юнита остается здоровье.
// Мертвый юнит навсегда выбывает из очереди ходов и с поля.
func (u *Unit) IsAlive() bool {
	return u.HP > 0
}

// TakeDamage наносит урон. Возвращает true, если этот удар убил юнита.
func (u *Unit) TakeDamage(amount int) bool {
	if !u.IsAlive() {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	u.HP -= amount
	if u.HP <= 0 {
		u.HP = 0
		return true
	}
	return false
}

// Heal лечит юнита, не выше максимума. Трупы не лечим.
func (u *Unit) Heal(amount int) {
	if !u.IsAlive() || amount <= 0 {
		return
	}
	u.HP += amount
	if u.HP > u.MaxHP {
		u.HP = u.MaxHP
	}
}

// LoseAP снимает до amount ОД, не опуская их ниже нуля.
// Возвращает фактическую потерю: дрейн сообщает цели именно её,
// а не запрошенную величину.
func (u *Unit) LoseAP(amount int) int {
	if amount <= 0 {
		return 0
	}
	loss := amount
	if loss > u.AP {
		loss = u.AP
	}
	u.AP -= loss
	return loss
}

// SpendAP списывает стоимость каста. Возвращает false, если ОД не хватает
// (частичного списания нет).
func (u *Unit) SpendAP(cost int) bool {
	if u.AP < cost {
		return false
	}
	u.AP -= cost
	return true
}

// SuppressAPRestore сбрасывает одноразовый предохранитель:
// ближайший StartTurn не восстановит ОД. Вызывается эффектом дрейна.
func (u *Unit) SuppressAPRestore() {
	u.restoreAPOnce = false
}

// --- ПЕРЕМЕЩЕНИЕ ---

// CanMoveTo проверяет только запас ОП (манхэттенская дистанция).
// Проходимость и занятость клеток - забота поиска пути, не юнита.
func (u *Unit) CanMoveTo(to Position) bool {
	return u.Pos.ManhattanTo(to) <= u.MP
}

// MoveAlong проходит по клеткам пути, тратя 1 ОП за клетку, но не больше,
// чем есть ОП. После каждого обновления позиции вызывает onStep - через
// него хост синхронизирует занятость поля и анимацию. Возвращает число
// пройденных клеток.
func (u *Unit) MoveAlong(path []Position, onStep func(Position)) int {
	steps := 0
	for _, cell := range path {
		if u.MP <= 0 {
			break
		}
		u.MP--
		u.Pos = cell
		steps++
		if onStep != nil {
			onStep(cell)
		}
	}
	return steps
}

// --- ОТНОШЕНИЯ КОМАНД ---

// IsAllyOf - союзник: та же команда, но НЕ сам юнит.
// Таргетинг "ally" дополнительно допускает самого кастера (см. systems).
func (u *Unit) IsAllyOf(other *Unit) bool {
	if other == nil || other == u {
		return false
	}
	return u.Team == other.Team
}

// IsEnemyOf - враг: другая команда.
func (u *Unit) IsEnemyOf(other *Unit) bool {
	if other == nil {
		return false
	}
	return u.Team != other.Team
}

// --- ЗАКЛИНАНИЯ ---

// SpellAt возвращает заклинание по индексу или nil.
func (u *Unit) SpellAt(i int) *Spell {
	if i < 0 || i >= len(u.Spells) {
		return nil
	}
	return u.Spells[i]
}

// SelectSpell выбирает заклинание (-1 снимает выбор).
func (u *Unit) SelectSpell(i int) bool {
	if i < -1 || i >= len(u.Spells) {
		return false
	}
	u.SelectedSpell = i
	return true
}

// SelectedSpellRef возвращает выбранное заклинание или nil.
func (u *Unit) SelectedSpellRef() *Spell {
	return u.SpellAt(u.SelectedSpell)
}

// CastsOf возвращает, сколько раз заклинание уже кастовалось в этом ходу.
func (u *Unit) CastsOf(name string) int {
	return u.CastsThisTurn[name]
}

// RecordCast отмечает успешный каст. Ведет счет оркестрация, не Spell.
func (u *Unit) RecordCast(name string) {
	if u.CastsThisTurn == nil {
		u.CastsThisTurn = make(map[string]int)
	}
	u.CastsThisTurn[name]++
}
