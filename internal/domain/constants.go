package domain

// Размеры арены по умолчанию
const (
	DefaultBoardWidth  = 10
	DefaultBoardHeight = 10
)

// Базовые ресурсы юнита (типовой боец без классовых модификаторов)
const (
	DefaultMaxHP = 20
	DefaultMaxAP = 6
	DefaultMaxMP = 3
)

// Команды
const (
	TeamBlue = 0
	TeamRed  = 1
)

// Фазы хода
const (
	PhaseStart = "start"
	PhaseMain  = "main"
	PhaseEnd   = "end"
)
