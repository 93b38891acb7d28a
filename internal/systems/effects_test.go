package systems

import (
	"strings"
	"testing"

	"github.com/slincem/landust/internal/domain"
)

func TestNewEffectUnknownType(t *testing.T) {
	if _, err := NewEffect(domain.EffectConfig{Type: "polymorph"}); err == nil {
		t.Error("expected an error for an unregistered effect type")
	}

	sp := &domain.Spell{
		Name:    "Гниль",
		Effects: []domain.EffectConfig{{Type: domain.EffectDamage, Value: 1}, {Type: "polymorph"}},
	}
	_, err := BuildEffects(sp)
	if err == nil {
		t.Fatal("expected BuildEffects to fail on the broken config")
	}
	if !strings.Contains(err.Error(), "Гниль") {
		t.Errorf("error must name the spell, got: %v", err)
	}
}

func TestDamageEffect(t *testing.T) {
	caster := newTestUnit("caster", 0)
	target := newTestUnit("target", 1)
	eff := &DamageEffect{Value: 5}

	// Test 1: обычный удар
	if !eff.Apply(caster, target, nil) {
		t.Fatal("damage on a living target must apply")
	}
	if target.HP != 15 {
		t.Errorf("expected 15 HP after 5 damage, got %d", target.HP)
	}

	// Test 2: добивание не уводит HP в минус
	target.HP = 3
	eff.Apply(caster, target, nil)
	if target.HP != 0 || target.IsAlive() {
		t.Errorf("expected a clean kill at 0 HP, got %d", target.HP)
	}

	// Test 3: по трупу эффект не проходит
	if eff.Apply(caster, target, nil) {
		t.Error("damage on a corpse must not apply")
	}
	if eff.Apply(caster, nil, nil) {
		t.Error("damage with no target must not apply")
	}
}

func TestHealEffect(t *testing.T) {
	caster := newTestUnit("caster", 0)
	target := newTestUnit("target", 0)
	target.HP = 14
	eff := &HealEffect{Value: 4}

	if !eff.Apply(caster, target, nil) {
		t.Fatal("heal on a living target must apply")
	}
	if target.HP != 18 {
		t.Errorf("expected 18 HP, got %d", target.HP)
	}

	// Лечение не превышает максимум
	eff.Apply(caster, target, nil)
	if target.HP != target.MaxHP {
		t.Errorf("heal must clamp at MaxHP, got %d", target.HP)
	}

	// И не воскрешает
	target.HP = 0
	if eff.Apply(caster, target, nil) {
		t.Error("heal must not raise the dead")
	}
}

func TestBuffAPEffect(t *testing.T) {
	caster := newTestUnit("caster", 0)
	ally := newTestUnit("ally", 0)
	eff := &BuffAPEffect{Value: 2, Duration: 3, Source: "Боевой клич"}

	// Test 1: бафф на союзника вешает состояние, но ОД этого хода не трогает
	if !eff.Apply(caster, ally, nil) {
		t.Fatal("first buff must apply")
	}
	if ally.AP != ally.MaxAP {
		t.Errorf("ally buff must wait for their StartTurn, got AP %d", ally.AP)
	}
	if !ally.HasStateFrom(domain.StateBuffAP, "Боевой клич") {
		t.Error("expected a buff_ap state from the spell")
	}

	// Test 2: повторный бафф из того же источника отклоняется
	if eff.Apply(caster, ally, nil) {
		t.Error("same-source buff must not stack")
	}

	// Test 3: другой источник сосуществует
	other := &BuffAPEffect{Value: 1, Duration: 2, Source: "Кураж"}
	if !other.Apply(caster, ally, nil) {
		t.Error("a different source must be allowed alongside")
	}

	// Test 4: бафф на самого себя начисляет ОД немедленно
	self := &BuffAPEffect{Value: 2, Duration: 3, Source: "Боевой клич"}
	caster.AP = 4
	if !self.Apply(caster, caster, nil) {
		t.Fatal("self-buff must apply")
	}
	if caster.AP != 6 {
		t.Errorf("self-buff grants AP immediately, got %d", caster.AP)
	}
}

func TestDrainAPEffect(t *testing.T) {
	caster := newTestUnit("caster", 0)
	target := newTestUnit("target", 1)
	eff := &DrainAPEffect{Value: 2, Duration: 1}

	if !eff.Apply(caster, target, nil) {
		t.Fatal("drain on a living target must apply")
	}
	if target.AP != 4 {
		t.Errorf("expected 4 AP after draining 2, got %d", target.AP)
	}
	if !target.HasState(domain.StateAPLoss) {
		t.Error("expected an ap_loss state on the target")
	}

	// Состояние запоминает фактическую потерю, не запрошенную
	poor := newTestUnit("poor", 1)
	poor.AP = 1
	big := &DrainAPEffect{Value: 5, Duration: 1}
	big.Apply(caster, poor, nil)
	if poor.AP != 0 {
		t.Errorf("expected AP drained to 0, got %d", poor.AP)
	}
	found := false
	for _, s := range poor.States {
		if s.Type == domain.StateAPLoss {
			found = true
			if s.Value != 1 {
				t.Errorf("state must record the actual loss of 1, got %d", s.Value)
			}
		}
	}
	if !found {
		t.Error("expected an ap_loss state on the drained unit")
	}
}

func TestTeleportEffect(t *testing.T) {
	caster := newTestUnit("caster", 0)
	board := buildBoard(t, []string{
		"c..",
		".#.",
	}, map[rune]*domain.Unit{'c': caster})
	eff := &TeleportEffect{}

	// Test 1: перенос на свободную клетку с синхронизацией занятости
	ctx := &Context{Board: board, Cell: domain.Position{X: 2, Y: 0}}
	if !eff.Apply(caster, nil, ctx) {
		t.Fatal("teleport to a free cell must apply")
	}
	if caster.Pos != (domain.Position{X: 2, Y: 0}) {
		t.Errorf("caster position not updated, got %s", caster.Pos)
	}
	if board.OccupantAt(domain.Position{X: 0, Y: 0}) != nil {
		t.Error("old cell must be vacated")
	}
	if board.OccupantAt(domain.Position{X: 2, Y: 0}) != caster {
		t.Error("new cell must hold the caster")
	}

	// Test 2: стена не годится
	if eff.Apply(caster, nil, &Context{Board: board, Cell: domain.Position{X: 1, Y: 1}}) {
		t.Error("teleport into a wall must fail")
	}

	// Test 3: занятая клетка не годится
	bystander := newTestUnit("bystander", 1)
	if !board.Place(bystander, domain.Position{X: 0, Y: 1}) {
		t.Fatal("setup: cannot place bystander")
	}
	if eff.Apply(caster, nil, &Context{Board: board, Cell: bystander.Pos}) {
		t.Error("teleport onto a unit must fail")
	}
	if caster.Pos != (domain.Position{X: 2, Y: 0}) {
		t.Error("failed teleport must not move the caster")
	}
}

func TestPushEffect(t *testing.T) {
	caster := newTestUnit("caster", 0)
	target := newTestUnit("target", 1)
	board := buildBoard(t, []string{
		"ct...",
		".....",
	}, map[rune]*domain.Unit{'c': caster, 't': target})
	eff := &PushEffect{Distance: 2}

	ctx := &Context{Board: board, Cell: target.Pos}

	// Test 1: толчок по прямой на две клетки
	if !eff.Apply(caster, target, ctx) {
		t.Fatal("push along an open row must apply")
	}
	if target.Pos != (domain.Position{X: 3, Y: 0}) {
		t.Errorf("expected target at (3,0), got %s", target.Pos)
	}
	if board.OccupantAt(domain.Position{X: 1, Y: 0}) != nil {
		t.Error("old cell must be vacated")
	}
	if board.OccupantAt(target.Pos) != target {
		t.Error("occupancy must follow the target")
	}
}

func TestPushEffectBlocked(t *testing.T) {
	caster := newTestUnit("caster", 0)
	target := newTestUnit("target", 1)

	// Стена сразу за целью: лететь некуда, цель не двигается
	board := buildBoard(t, []string{
		"ct#",
	}, map[rune]*domain.Unit{'c': caster, 't': target})
	eff := &PushEffect{Distance: 1}

	if eff.Apply(caster, target, &Context{Board: board, Cell: target.Pos}) {
		t.Error("push into a wall must fail outright")
	}
	if target.Pos != (domain.Position{X: 1, Y: 0}) {
		t.Errorf("blocked push must not move the target, got %s", target.Pos)
	}

	// Выталкивание за край поля тоже срывается
	edge := buildBoard(t, []string{
		"ct",
	}, map[rune]*domain.Unit{'c': newTestUnit("c2", 0), 't': newTestUnit("t2", 1)})
	tgt := edge.OccupantAt(domain.Position{X: 1, Y: 0})
	if eff.Apply(edge.OccupantAt(domain.Position{X: 0, Y: 0}), tgt, &Context{Board: edge, Cell: tgt.Pos}) {
		t.Error("push off the board must fail")
	}
}

func TestPushEffectDiagonalRounding(t *testing.T) {
	caster := newTestUnit("caster", 0)
	target := newTestUnit("target", 1)

	// Цель по диагонали: вектор (1,1)/sqrt(2)*2 = (1.41, 1.41), округление до (1,1)
	board := buildBoard(t, []string{
		"c....",
		".t...",
		".....",
		".....",
	}, map[rune]*domain.Unit{'c': caster, 't': target})
	eff := &PushEffect{Distance: 2}

	if !eff.Apply(caster, target, &Context{Board: board, Cell: target.Pos}) {
		t.Fatal("diagonal push must apply")
	}
	if target.Pos != (domain.Position{X: 2, Y: 2}) {
		t.Errorf("expected rounding to land the target at (2,2), got %s", target.Pos)
	}
}

func TestPushEffectNoDirection(t *testing.T) {
	// Кастер и цель в одной точке - вектор нулевой, толкать некуда.
	// В бою такое не случается, но эффект обязан не делить на ноль.
	caster := newTestUnit("caster", 0)
	target := newTestUnit("target", 1)
	target.Pos = caster.Pos
	board := buildBoard(t, []string{"..."}, nil)

	eff := &PushEffect{Distance: 2}
	if eff.Apply(caster, target, &Context{Board: board, Cell: target.Pos}) {
		t.Error("push with no direction must fail")
	}
}
