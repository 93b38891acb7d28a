package engine

import (
	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/pkg/api"
)

// BuildView создает полный "снимок" боя для клиента. Снимок строится
// заново при каждом вызове; записи журнала отдаются один раз - буфер
// очищается, как при рассылке по сети.
func (b *Battle) BuildView() *api.BattleView {
	// 1. Клетки: отдаем только "интересные" - стены и занятые.
	// Пустые проходимые клетки клиент дорисует сам по размерам поля.
	var cells []api.CellView
	for y := 0; y < b.Board.Height(); y++ {
		for x := 0; x < b.Board.Width(); x++ {
			pos := domain.Position{X: x, Y: y}
			occupant := b.Board.OccupantAt(pos)
			isWall := !b.Board.IsWalkable(pos)
			if !isWall && occupant == nil {
				continue
			}

			cell := api.CellView{X: x, Y: y, IsWall: isWall}
			if occupant != nil {
				cell.OccupantID = occupant.ID
			}
			cells = append(cells, cell)
		}
	}

	// 2. Юниты - ВСЕ, включая мертвых: клиенту нужен мемориал
	unitViews := make([]api.UnitView, 0, len(b.Units))
	order := make([]string, 0, len(b.Units))
	for _, u := range b.Units {
		unitViews = append(unitViews, toUnitView(u))
		order = append(order, u.ID)
	}

	view := &api.BattleView{
		Type:      "UPDATE",
		Round:     b.Turns.Round(),
		Phase:     b.Turns.Phase(),
		Grid:      &api.GridMeta{Width: b.Board.Width(), Height: b.Board.Height()},
		Cells:     cells,
		Units:     unitViews,
		TurnOrder: order,
		Logs:      b.DrainLogs(),
	}

	if active := b.Turns.Current(); active != nil {
		view.ActiveUnitID = active.ID
	}
	if team, over := b.Winner(); over {
		view.Winner = &team
	}

	return view
}

// toUnitView конвертирует доменного юнита в DTO для отправки клиенту.
func toUnitView(u *domain.Unit) api.UnitView {
	view := api.UnitView{
		ID:            u.ID,
		Name:          u.Name,
		Team:          u.Team,
		HP:            u.HP,
		MaxHP:         u.MaxHP,
		AP:            u.AP,
		MaxAP:         u.MaxAP,
		MP:            u.MP,
		MaxMP:         u.MaxMP,
		Alive:         u.IsAlive(),
		SelectedSpell: u.SelectedSpell,
	}
	view.Pos.X = u.Pos.X
	view.Pos.Y = u.Pos.Y

	for _, sp := range u.Spells {
		view.Spells = append(view.Spells, api.SpellView{
			Name:            sp.Name,
			Cost:            sp.Cost,
			Range:           sp.Range,
			MinRange:        sp.MinRange,
			Target:          string(sp.Target),
			Cooldown:        sp.CooldownCounter,
			MaxCastsPerTurn: sp.MaxCastsPerTurn,
		})
	}
	for _, s := range u.States {
		view.States = append(view.States, api.StateView{
			ID:       s.ID,
			Type:     s.Type,
			Value:    s.Value,
			Duration: s.Duration,
			Source:   s.Source,
			Expire:   string(s.Expire),
		})
	}

	return view
}
