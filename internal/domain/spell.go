package domain

// TargetType - категория допустимых целей заклинания.
// Определяет и проверку клетки/юнита при прицеливании, и подсветку на клиенте.
type TargetType string

const (
	TargetEnemy       TargetType = "enemy"       // живой юнит другой команды
	TargetAlly        TargetType = "ally"        // живой юнит своей команды (включая себя)
	TargetSelfOnly    TargetType = "selfOnly"    // только сам кастер
	TargetUnit        TargetType = "unit"        // любой живой юнит
	TargetEmpty       TargetType = "empty"       // проходимая свободная клетка
	TargetUnitOrEmpty TargetType = "unitOrEmpty" // живой юнит ИЛИ свободная клетка
	TargetNone        TargetType = "none"        // цель не нужна
)

// Типы эффектов, известные фабрике. Незнакомый тип в контенте -
// ошибка конструирования, а не тихий no-op.
const (
	EffectDamage   = "damage"
	EffectHeal     = "heal"
	EffectBuffAP   = "buff_ap"
	EffectDrainAP  = "drain_ap"
	EffectTeleport = "teleport"
	EffectPush     = "push"
)

// EffectConfig - декларативное описание одного эффекта заклинания.
// Чистые данные: в поведение превращается фабрикой на этапе сборки юнита.
type EffectConfig struct {
	Type        string `json:"type"`
	Value       int    `json:"value"`
	Duration    int    `json:"duration,omitempty"`
	SourceSpell string `json:"sourceSpell,omitempty"`
}

// Spell - заклинание юнита. Шаблонная часть (имя, стоимость, дальность,
// эффекты) неизменна; мутируется только счетчик кулдауна.
// Дальность считается в манхэттенской метрике (как и перемещение).
type Spell struct {
	Name            string         `json:"name"`
	Cost            int            `json:"cost"`  // ОД за каст
	Range           int            `json:"range"` // максимум клеток до цели
	MinRange        int            `json:"minRange,omitempty"`
	MaxCastsPerTurn int            `json:"maxCastsPerTurn"` // -1 = без ограничения
	Target          TargetType     `json:"targetType"`
	Effects         []EffectConfig `json:"effects"`
	Cooldown        int            `json:"cooldown,omitempty"` // ходов до повторного каста
	CooldownCounter int            `json:"cooldownCounter,omitempty"`
	RequiresSight   bool           `json:"requiresSight,omitempty"` // прямая видимость до цели
}

// Clone возвращает независимую копию заклинания для конкретного юнита.
// Шаблоны классов никогда не раздают общие экземпляры: кулдауны у каждого свои.
func (s *Spell) Clone() *Spell {
	cp := *s
	cp.Effects = make([]EffectConfig, len(s.Effects))
	copy(cp.Effects, s.Effects)
	return &cp
}

// IsReady возвращает true, когда кулдаун не тикает.
func (s *Spell) IsReady() bool {
	return s.CooldownCounter <= 0
}

// ArmCooldown взводит счетчик после успешного каста.
func (s *Spell) ArmCooldown() {
	if s.Cooldown > 0 {
		s.CooldownCounter = s.Cooldown
	}
}

// TickCooldown списывает один ход кулдауна (не ниже нуля).
// Вызывается в конце хода владельца.
func (s *Spell) TickCooldown() {
	if s.CooldownCounter > 0 {
		s.CooldownCounter--
	}
}

// AllowsMoreCasts проверяет лимит кастов за ход против уже сделанного числа.
func (s *Spell) AllowsMoreCasts(castsThisTurn int) bool {
	if s.MaxCastsPerTurn < 0 {
		return true
	}
	return castsThisTurn < s.MaxCastsPerTurn
}
