package domain

// Cell - одна клетка поля: проходимость рельефа и тот, кто на ней стоит.
// Инвариант: в клетке не больше одного юнита.
type Cell struct {
	Walkable bool
	occupant *Unit
}

// Board - прямоугольное поле боя фиксированного размера.
// Геометрия (размер, рельеф) неизменна после сборки арены;
// меняется только занятость клеток.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard создает поле w x h, полностью проходимое и пустое.
func NewBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		for x := 0; x < width; x++ {
			row[x] = Cell{Walkable: true}
		}
		cells[y] = row
	}
	return &Board{width: width, height: height, cells: cells}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds проверяет, что позиция лежит внутри поля.
func (b *Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < b.width && pos.Y >= 0 && pos.Y < b.height
}

// IsWalkable возвращает true для проходимой клетки.
// За границами поля - всегда false, без паники.
func (b *Board) IsWalkable(pos Position) bool {
	if !b.InBounds(pos) {
		return false
	}
	return b.cells[pos.Y][pos.X].Walkable
}

// IsOccupied возвращает true, если в клетке кто-то стоит.
// За границами поля - всегда false.
func (b *Board) IsOccupied(pos Position) bool {
	if !b.InBounds(pos) {
		return false
	}
	return b.cells[pos.Y][pos.X].occupant != nil
}

// OccupantAt возвращает юнита в клетке или nil.
func (b *Board) OccupantAt(pos Position) *Unit {
	if !b.InBounds(pos) {
		return nil
	}
	return b.cells[pos.Y][pos.X].occupant
}

// IsFree - проходимая И свободная клетка. Используется таргетингом
// (empty/unitOrEmpty) и телепортом.
func (b *Board) IsFree(pos Position) bool {
	return b.IsWalkable(pos) && !b.IsOccupied(pos)
}

// SetOccupant - единственный мутатор занятости. Низкоуровневый примитив
// БЕЗ валидации: вызывающий сам освобождает старую клетку прежде, чем
// занять новую. Позиции за границами молча игнорируются.
func (b *Board) SetOccupant(pos Position, u *Unit) {
	if !b.InBounds(pos) {
		return
	}
	b.cells[pos.Y][pos.X].occupant = u
}

// SetWalkable меняет рельеф клетки. Применяется только при сборке арены.
func (b *Board) SetWalkable(pos Position, walkable bool) {
	if !b.InBounds(pos) {
		return
	}
	b.cells[pos.Y][pos.X].Walkable = walkable
}

// Place ставит юнита на клетку и синхронизирует его позицию.
// Удобство для сборки боя; по ходу боя занятость ведет оркестрация
// через SetOccupant.
func (b *Board) Place(u *Unit, pos Position) bool {
	if !b.IsFree(pos) {
		return false
	}
	b.SetOccupant(pos, u)
	u.Pos = pos
	return true
}
