package domain

import "testing"

func TestSpellClone(t *testing.T) {
	proto := &Spell{
		Name:            "Таран",
		Cost:            3,
		Range:           1,
		MaxCastsPerTurn: 1,
		Target:          TargetEnemy,
		Cooldown:        2,
		Effects: []EffectConfig{
			{Type: EffectDamage, Value: 3},
			{Type: EffectPush, Value: 2},
		},
	}

	clone := proto.Clone()

	// Test 1: the clone carries the same data
	if clone.Name != proto.Name || clone.Cost != proto.Cost || len(clone.Effects) != 2 {
		t.Fatal("expected clone to copy the prototype")
	}

	// Test 2: cooldown state is private to the clone
	clone.ArmCooldown()
	if proto.CooldownCounter != 0 {
		t.Errorf("arming the clone must not touch the prototype, counter %d", proto.CooldownCounter)
	}

	// Test 3: effects slice does not alias the prototype
	clone.Effects[0].Value = 99
	if proto.Effects[0].Value != 3 {
		t.Errorf("expected prototype effect untouched, got %d", proto.Effects[0].Value)
	}
}

func TestAllowsMoreCasts(t *testing.T) {
	tests := []struct {
		limit    int
		casts    int
		expected bool
	}{
		{-1, 0, true},
		{-1, 50, true}, // -1 means unlimited
		{2, 0, true},
		{2, 1, true},
		{2, 2, false},
		{1, 1, false},
	}

	for _, tt := range tests {
		sp := &Spell{Name: "x", MaxCastsPerTurn: tt.limit}
		if got := sp.AllowsMoreCasts(tt.casts); got != tt.expected {
			t.Errorf("limit %d with %d casts: got %v, want %v", tt.limit, tt.casts, got, tt.expected)
		}
	}
}

func TestCooldownLifecycle(t *testing.T) {
	sp := &Spell{Name: "Скачок", Cooldown: 2}

	if !sp.IsReady() {
		t.Error("a fresh spell must be ready")
	}

	sp.ArmCooldown()
	if sp.IsReady() {
		t.Error("expected spell on cooldown after arming")
	}

	sp.TickCooldown()
	if sp.IsReady() {
		t.Error("expected spell still cooling down")
	}
	sp.TickCooldown()
	if !sp.IsReady() {
		t.Error("expected spell ready after the cooldown ran out")
	}

	// Нулевой кулдаун не запирает заклинание
	free := &Spell{Name: "Удар"}
	free.ArmCooldown()
	if !free.IsReady() {
		t.Error("a spell without cooldown must stay ready")
	}
}
