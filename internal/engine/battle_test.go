package engine

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/pkg/api"
)

func testStrike() *domain.Spell {
	return &domain.Spell{
		Name:            "Удар",
		Cost:            3,
		Range:           1,
		MaxCastsPerTurn: -1,
		Target:          domain.TargetEnemy,
		Effects: []domain.EffectConfig{
			{Type: domain.EffectDamage, Value: 5},
		},
	}
}

// Helper: дуэль на поле 5x3, бойцы вплотную.
// [ . . . . . ]
// [ a b . . . ]  <- a (команда 0) и b (команда 1)
// [ . . . . . ]
func createDuel(t *testing.T) (*Battle, *domain.Unit, *domain.Unit) {
	t.Helper()

	a := domain.NewUnit(domain.UnitConfig{
		ID: "u_a", Name: "Атлас", Team: 0,
		MaxHP: 20, MaxAP: 6, MaxMP: 3,
		Spells: []*domain.Spell{testStrike()},
	})
	b := domain.NewUnit(domain.UnitConfig{
		ID: "u_b", Name: "Зорн", Team: 1,
		MaxHP: 20, MaxAP: 6, MaxMP: 3,
		Spells: []*domain.Spell{testStrike()},
	})

	battle, err := NewBattle(Config{
		Board: domain.NewBoard(5, 3),
		Placements: []Placement{
			{Unit: a, At: domain.Position{X: 0, Y: 1}},
			{Unit: b, At: domain.Position{X: 1, Y: 1}},
		},
	})
	if err != nil {
		t.Fatalf("cannot assemble the duel: %v", err)
	}
	return battle, a, b
}

func command(t *testing.T, token, action string, payload any) api.ClientCommand {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("cannot marshal payload: %v", err)
	}
	return api.ClientCommand{Token: token, Action: action, Payload: raw}
}

func TestNewBattleRejectsBadPlacements(t *testing.T) {
	walled := domain.NewBoard(3, 3)
	walled.SetWalkable(domain.Position{X: 1, Y: 1}, false)
	u := func(id string) *domain.Unit {
		return domain.NewUnit(domain.UnitConfig{ID: id, Name: id, MaxHP: 10, MaxAP: 6, MaxMP: 3})
	}

	cases := []struct {
		name       string
		board      *domain.Board
		placements []Placement
	}{
		{"no units", nil, nil},
		{"missing unit", nil, []Placement{{Unit: nil, At: domain.Position{X: 0, Y: 0}}}},
		{"out of bounds", nil, []Placement{{Unit: u("x"), At: domain.Position{X: 9, Y: 9}}}},
		{"on a wall", walled, []Placement{{Unit: u("x"), At: domain.Position{X: 1, Y: 1}}}},
		{"same cell twice", nil, []Placement{
			{Unit: u("x"), At: domain.Position{X: 0, Y: 0}},
			{Unit: u("y"), At: domain.Position{X: 0, Y: 0}},
		}},
	}

	for _, tc := range cases {
		board := tc.board
		if board == nil {
			board = domain.NewBoard(3, 3)
		}
		if _, err := NewBattle(Config{Board: board, Placements: tc.placements}); err == nil {
			t.Errorf("%s: expected an assembly error", tc.name)
		}
	}
}

func TestDispatchProtocolErrors(t *testing.T) {
	battle, a, b := createDuel(t)

	// Test 1: до Start команды не принимаются
	if _, err := battle.Dispatch(command(t, a.ID, "MOVE", api.MovePayload{X: 0, Y: 0})); !errors.Is(err, ErrNotStarted) {
		t.Errorf("expected ErrNotStarted, got %v", err)
	}

	battle.Start()

	// Test 2: неизвестное действие
	if _, err := battle.Dispatch(command(t, a.ID, "DANCE", struct{}{})); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}

	// Test 3: команда чужим токеном
	if _, err := battle.Dispatch(command(t, b.ID, "END_TURN", struct{}{})); !errors.Is(err, ErrOutOfTurn) {
		t.Errorf("expected ErrOutOfTurn, got %v", err)
	}

	// Test 4: пустой токен принимается (доверенный локальный режим)
	if _, err := battle.Dispatch(command(t, "", "END_TURN", struct{}{})); err != nil {
		t.Errorf("expected a trusted command to pass, got %v", err)
	}
	if battle.Turns.Current() != b {
		t.Errorf("expected the turn to pass to %q", b.ID)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	battle, a, _ := createDuel(t)

	if first := battle.Start(); first != a {
		t.Fatalf("expected %q to open the battle", a.ID)
	}
	// Повторный Start не перезапускает ротацию и не дублирует журнал
	logsBefore := len(battle.Logs)
	if again := battle.Start(); again != a {
		t.Error("restart must keep the current unit")
	}
	if len(battle.Logs) != logsBefore {
		t.Error("restart must not write new log entries")
	}
}

func TestMoveCommand(t *testing.T) {
	battle, a, _ := createDuel(t)
	battle.Start()

	// Test 1: обычный шаг на соседнюю клетку
	res, err := battle.Dispatch(command(t, a.ID, "MOVE", api.MovePayload{X: 0, Y: 0}))
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if res.MsgType != "INFO" {
		t.Errorf("expected an INFO result, got %q: %q", res.MsgType, res.Msg)
	}
	if a.Pos != (domain.Position{X: 0, Y: 0}) {
		t.Errorf("unit did not move, at %s", a.Pos)
	}
	if battle.Board.OccupantAt(domain.Position{X: 0, Y: 1}) != nil {
		t.Error("the old cell must be vacated")
	}
	if battle.Board.OccupantAt(domain.Position{X: 0, Y: 0}) != a {
		t.Error("the new cell must hold the unit")
	}
	if a.MP != 2 {
		t.Errorf("expected 2 MP left, got %d", a.MP)
	}

	// Test 2: цель дальше оставшихся ОП - игровая неудача, не ошибка
	res, err = battle.Dispatch(command(t, a.ID, "MOVE", api.MovePayload{X: 4, Y: 2}))
	if err != nil {
		t.Fatalf("an impossible move is not a protocol error: %v", err)
	}
	if res.MsgType != "ERROR" {
		t.Errorf("expected an ERROR result, got %q", res.MsgType)
	}
	if a.Pos != (domain.Position{X: 0, Y: 0}) {
		t.Error("a refused move must not change the position")
	}

	// Test 3: отрицательная координата отклоняется валидатором payload
	if _, err := battle.Dispatch(command(t, a.ID, "MOVE", api.MovePayload{X: -1, Y: 0})); err == nil {
		t.Error("expected a payload validation error")
	}
}

func TestSelectSpellCommand(t *testing.T) {
	battle, a, _ := createDuel(t)
	battle.Start()

	// Test 1: выбор существующего заклинания
	res, err := battle.Dispatch(command(t, a.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 0}))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if a.SelectedSpell != 0 {
		t.Errorf("expected spell 0 selected, got %d", a.SelectedSpell)
	}
	if !strings.Contains(res.Msg, "Удар") {
		t.Errorf("expected the spell name in the message, got %q", res.Msg)
	}

	// Test 2: номер за пределами книги - игровая неудача
	res, _ = battle.Dispatch(command(t, a.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 5}))
	if res.MsgType != "ERROR" {
		t.Errorf("expected an ERROR result, got %q", res.MsgType)
	}
	if a.SelectedSpell != 0 {
		t.Error("a refused selection must keep the previous choice")
	}

	// Test 3: -1 снимает выбор молча
	res, err = battle.Dispatch(command(t, a.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: -1}))
	if err != nil || res.Msg != "" {
		t.Errorf("clearing the selection must be silent, got %q / %v", res.Msg, err)
	}
	if a.SelectedSpell != -1 {
		t.Errorf("expected the selection cleared, got %d", a.SelectedSpell)
	}
}

func TestCastWithoutSelection(t *testing.T) {
	battle, a, b := createDuel(t)
	battle.Start()

	res, err := battle.Dispatch(command(t, a.ID, "CAST", api.CastPayload{X: b.Pos.X, Y: b.Pos.Y}))
	if err != nil {
		t.Fatalf("cast without selection is a game failure, not an error: %v", err)
	}
	if res.MsgType != "ERROR" {
		t.Errorf("expected an ERROR result, got %q", res.MsgType)
	}
	if b.HP != b.MaxHP {
		t.Error("no spell may fire without a selection")
	}
}

func TestCastKillAndVictory(t *testing.T) {
	battle, a, b := createDuel(t)
	battle.Start()
	b.HP = 5 // один удар до гибели

	battle.Dispatch(command(t, a.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 0}))
	res, err := battle.Dispatch(command(t, a.ID, "CAST", api.CastPayload{X: b.Pos.X, Y: b.Pos.Y}))
	if err != nil {
		t.Fatalf("cast failed: %v", err)
	}
	if res.MsgType != "COMBAT" {
		t.Errorf("expected a COMBAT result, got %q", res.MsgType)
	}

	// Test 1: погибший убран с поля, но остался в списке
	if b.IsAlive() {
		t.Fatal("the target must be dead")
	}
	if battle.Board.OccupantAt(domain.Position{X: 1, Y: 1}) != nil {
		t.Error("the corpse must not occupy the cell")
	}
	if battle.UnitByID(b.ID) == nil {
		t.Error("dead units stay listed")
	}

	// Test 2: победа объявлена
	team, over := battle.Winner()
	if !over || team != 0 {
		t.Errorf("expected team 0 victory, got team %d over %v", team, over)
	}

	// Test 3: в журнале ровно одна гибель и ровно одно объявление победы
	deaths, victories := 0, 0
	for _, entry := range battle.Logs {
		if strings.Contains(entry.Text, "погибает") {
			deaths++
		}
		if strings.Contains(entry.Text, "Побеждает") {
			victories++
		}
	}
	if deaths != 1 {
		t.Errorf("expected exactly one death entry, got %d", deaths)
	}
	if victories != 1 {
		t.Errorf("expected exactly one victory entry, got %d", victories)
	}

	// Test 4: после конца боя игровые команды отклоняются...
	if _, err := battle.Dispatch(command(t, a.ID, "END_TURN", struct{}{})); !errors.Is(err, ErrBattleOver) {
		t.Errorf("expected ErrBattleOver, got %v", err)
	}
	// ...а снимок боя по-прежнему доступен
	if _, err := battle.Dispatch(command(t, "", "INIT", struct{}{})); err != nil {
		t.Errorf("INIT must survive the end of the battle, got %v", err)
	}
}

func TestEndTurnCommandRotates(t *testing.T) {
	battle, a, b := createDuel(t)
	battle.Start()

	res, err := battle.Dispatch(command(t, a.ID, "END_TURN", struct{}{}))
	if err != nil {
		t.Fatalf("end turn failed: %v", err)
	}
	if battle.Turns.Current() != b {
		t.Errorf("expected the turn to pass to %q", b.ID)
	}
	if !strings.Contains(res.Msg, b.Name) {
		t.Errorf("expected the next unit in the message, got %q", res.Msg)
	}

	// Команда старым токеном больше не проходит
	if _, err := battle.Dispatch(command(t, a.ID, "END_TURN", struct{}{})); !errors.Is(err, ErrOutOfTurn) {
		t.Errorf("expected ErrOutOfTurn for the stale token, got %v", err)
	}
}

func TestBuildViewSnapshot(t *testing.T) {
	battle, a, b := createDuel(t)
	battle.Board.SetWalkable(domain.Position{X: 4, Y: 0}, false)
	battle.Start()

	view := battle.BuildView()

	// Test 1: метаданные поля
	if view.Grid == nil || view.Grid.Width != 5 || view.Grid.Height != 3 {
		t.Fatalf("bad grid meta: %+v", view.Grid)
	}
	if view.Type != "UPDATE" {
		t.Errorf("expected an UPDATE snapshot, got %q", view.Type)
	}

	// Test 2: клетки - только стены и занятые
	if len(view.Cells) != 3 {
		t.Fatalf("expected 2 occupied cells + 1 wall, got %d: %+v", len(view.Cells), view.Cells)
	}
	walls, occupied := 0, 0
	for _, c := range view.Cells {
		if c.IsWall {
			walls++
		}
		if c.OccupantID != "" {
			occupied++
		}
	}
	if walls != 1 || occupied != 2 {
		t.Errorf("expected 1 wall and 2 occupants, got %d/%d", walls, occupied)
	}

	// Test 3: все юниты и порядок ходов
	if len(view.Units) != 2 {
		t.Errorf("expected both units in the snapshot, got %d", len(view.Units))
	}
	if len(view.TurnOrder) != 2 || view.TurnOrder[0] != a.ID || view.TurnOrder[1] != b.ID {
		t.Errorf("bad turn order: %v", view.TurnOrder)
	}
	if view.ActiveUnitID != a.ID {
		t.Errorf("expected %q active, got %q", a.ID, view.ActiveUnitID)
	}
	if view.Winner != nil {
		t.Errorf("no winner while both teams stand, got %v", *view.Winner)
	}

	// Test 4: журнал отдается один раз
	if len(view.Logs) == 0 {
		t.Error("expected the start-of-battle entry in the first snapshot")
	}
	if again := battle.BuildView(); len(again.Logs) != 0 {
		t.Errorf("logs must drain on publish, got %d stale entries", len(again.Logs))
	}
}

func TestBuildViewWinner(t *testing.T) {
	battle, a, b := createDuel(t)
	battle.Start()
	b.HP = 5

	battle.Dispatch(command(t, a.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 0}))
	battle.Dispatch(command(t, a.ID, "CAST", api.CastPayload{X: b.Pos.X, Y: b.Pos.Y}))

	view := battle.BuildView()
	if view.Winner == nil || *view.Winner != 0 {
		t.Fatalf("expected team 0 in the snapshot, got %v", view.Winner)
	}

	// Мертвый юнит остается в снимке с Alive=false
	for _, uv := range view.Units {
		if uv.ID == b.ID && uv.Alive {
			t.Error("the dead unit must be flagged in the snapshot")
		}
	}
}
