package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/slincem/landust/internal/domain"
	"github.com/slincem/landust/internal/engine"
	"github.com/slincem/landust/internal/version"
	"github.com/slincem/landust/pkg/api"
	"github.com/slincem/landust/pkg/arena"
	"github.com/slincem/landust/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var outPath string
	var seed int64
	flag.StringVar(&outPath, "out", "", "Write final battle snapshot JSON to file (default stdout)")
	flag.Int64Var(&seed, "seed", 0, "Generate a random arena from this seed (0 = fixed default arena)")
	flag.Parse()

	logger.Log.Info("Starting Landust arena sandbox...")
	logger.Log.Info(version.String())

	// 2. Сборка боя: двое на двое
	atlas := arena.Warrior.SpawnUnit("u_atlas", "Атлас", domain.TeamBlue)
	mira := arena.Priest.SpawnUnit("u_mira", "Мира", domain.TeamBlue)
	zorn := arena.Mage.SpawnUnit("u_zorn", "Зорн", domain.TeamRed)
	grom := arena.Warrior.SpawnUnit("u_grom", "Гром", domain.TeamRed)

	spawns := []engine.Placement{
		{Unit: atlas, At: domain.Position{X: 2, Y: 4}},
		{Unit: mira, At: domain.Position{X: 1, Y: 5}},
		{Unit: zorn, At: domain.Position{X: 7, Y: 4}},
		{Unit: grom, At: domain.Position{X: 6, Y: 3}},
	}

	// Скрипт ниже выверен под стандартную арену; со случайной (-seed)
	// часть ходов упрется в колонны - это нормальная демонстрация отказов
	board := arena.DefaultArena()
	if seed != 0 {
		cells := make([]domain.Position, 0, len(spawns))
		for _, p := range spawns {
			cells = append(cells, p.At)
		}
		var gerr error
		board, gerr = arena.GenerateArena(domain.DefaultBoardWidth, domain.DefaultBoardHeight, seed, cells...)
		if gerr != nil {
			logger.Log.Fatal("Failed to generate arena: ", gerr)
		}
		logger.Log.WithField("seed", seed).Info("Random arena generated")
	}

	battle, err := engine.NewBattle(engine.Config{
		Board:      board,
		Placements: spawns,
	})
	if err != nil {
		logger.Log.Fatal("Failed to assemble battle: ", err)
	}

	logger.Log.Info("⚔️  Battle begins")
	battle.Start()

	// 3. Скриптованная партия: два круга, прогоняющие весь набор команд.
	// Отказы (вне дальности, не хватает ОД) оставлены нарочно - это
	// демонстрация игровых ошибок, а не баги скрипта.
	script := []struct {
		token   string
		action  string
		payload any
	}{
		// Круг 1: Атлас кричит, сближается и дважды бьет Грома
		{atlas.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 2}},
		{atlas.ID, "CAST", api.CastPayload{X: 2, Y: 4}},
		{atlas.ID, "MOVE", api.MovePayload{X: 6, Y: 4}},
		{atlas.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 0}},
		{atlas.ID, "CAST", api.CastPayload{X: 6, Y: 3}},
		{atlas.ID, "CAST", api.CastPayload{X: 6, Y: 3}},
		{atlas.ID, "END_TURN", nil},

		// Мира подходит и ловит второе дыхание (каст без цели)
		{mira.ID, "MOVE", api.MovePayload{X: 3, Y: 5}},
		{mira.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 2}},
		{mira.ID, "CAST", api.CastPayload{X: 0, Y: 0}},
		{mira.ID, "END_TURN", nil},

		// Зорн истощает Миру и отходит
		{zorn.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 1}},
		{zorn.ID, "CAST", api.CastPayload{X: 3, Y: 5}},
		{zorn.ID, "MOVE", api.MovePayload{X: 7, Y: 6}},
		{zorn.ID, "END_TURN", nil},

		// Гром отвечает Атласу и отступает
		{grom.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 0}},
		{grom.ID, "CAST", api.CastPayload{X: 6, Y: 4}},
		{grom.ID, "CAST", api.CastPayload{X: 6, Y: 4}},
		{grom.ID, "MOVE", api.MovePayload{X: 6, Y: 1}},
		{grom.ID, "END_TURN", nil},

		// Круг 2: удар Атласа не достает до отступившего Грома
		{atlas.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 0}},
		{atlas.ID, "CAST", api.CastPayload{X: 6, Y: 1}},
		{atlas.ID, "MOVE", api.MovePayload{X: 6, Y: 2}},
		{atlas.ID, "END_TURN", nil},

		// Мира догоняет строй
		{mira.ID, "MOVE", api.MovePayload{X: 5, Y: 4}},
		{mira.ID, "END_TURN", nil},

		// Зорн стреляет сквозь арену
		{zorn.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 0}},
		{zorn.ID, "CAST", api.CastPayload{X: 6, Y: 2}},
		{zorn.ID, "MOVE", api.MovePayload{X: 7, Y: 8}},
		{zorn.ID, "END_TURN", nil},

		// Гром таранит Атласа: урон и отброс одним кастом
		{grom.ID, "SELECT_SPELL", api.SelectSpellPayload{Index: 1}},
		{grom.ID, "CAST", api.CastPayload{X: 6, Y: 2}},
		{grom.ID, "END_TURN", nil},
	}

	for i, st := range script {
		raw := json.RawMessage(`{}`)
		if st.payload != nil {
			data, merr := json.Marshal(st.payload)
			if merr != nil {
				logger.Log.WithError(merr).Fatal("Broken script payload")
			}
			raw = data
		}

		if _, derr := battle.Dispatch(api.ClientCommand{
			Token:   st.token,
			Action:  st.action,
			Payload: raw,
		}); derr != nil {
			logger.Log.WithFields(logrus.Fields{
				"step":   i,
				"action": st.action,
			}).WithError(derr).Warn("Command rejected by dispatcher")
		}
	}

	// 4. Итоги
	for _, u := range battle.Units {
		logger.Log.WithFields(logrus.Fields{
			"unit": u.Name,
			"team": u.Team,
			"hp":   u.HP,
			"ap":   u.AP,
			"mp":   u.MP,
			"pos":  u.Pos,
		}).Info("Unit after skirmish")
	}

	snapshot, err := json.MarshalIndent(battle.BuildView(), "", "  ")
	if err != nil {
		logger.Log.Fatal("Failed to build snapshot: ", err)
	}

	if outPath == "" {
		os.Stdout.Write(append(snapshot, '\n'))
	} else {
		if werr := os.WriteFile(outPath, append(snapshot, '\n'), 0o644); werr != nil {
			logger.Log.Fatal("Failed to write snapshot: ", werr)
		}
		logger.Log.Info("Snapshot written to ", outPath)
	}
}
