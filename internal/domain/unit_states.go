package domain

// Операции над временными состояниями юнита и жизненный цикл хода.
// Порядок шагов в StartTurn/EndTurn жестко зафиксирован: от него зависят
// дрейн ОД, баффы и кулдауны. Менять местами нельзя.

// ApplyState вешает состояние на юнита. State передается по значению,
// поэтому в список всегда попадает копия - никакого разделения с кастером.
//
// Нестакающиеся состояния одного типа замещают друг друга; buff_ap
// дополнительно ключуется источником, так что баффы от разных заклинаний
// сосуществуют.
func (u *Unit) ApplyState(s State) {
	if !s.Stackable {
		for i := len(u.States) - 1; i >= 0; i-- {
			ex := u.States[i]
			if ex.Type != s.Type {
				continue
			}
			if s.Type == StateBuffAP && ex.Source != s.Source {
				continue
			}
			u.States = append(u.States[:i], u.States[i+1:]...)
		}
	}
	if s.ID == "" {
		s.ID = NewStateID()
	}
	u.States = append(u.States, s)
}

// RemoveState снимает состояние по ID. Возвращает true, если нашлось.
func (u *Unit) RemoveState(id string) bool {
	for i, s := range u.States {
		if s.ID == id {
			u.States = append(u.States[:i], u.States[i+1:]...)
			return true
		}
	}
	return false
}

// HasState проверяет наличие активного состояния данного типа.
func (u *Unit) HasState(stateType string) bool {
	for _, s := range u.States {
		if s.Type == stateType {
			return true
		}
	}
	return false
}

// HasStateFrom проверяет наличие состояния данного типа от конкретного
// источника. Нужен баффу ОД: повторный каст того же заклинания на ту же
// цель запрещен, пока висит его бафф.
func (u *Unit) HasStateFrom(stateType, source string) bool {
	for _, s := range u.States {
		if s.Type == stateType && s.Source == source {
			return true
		}
	}
	return false
}

// apBonus - суммарный модификатор ОД от активных состояний (знаковый).
func (u *Unit) apBonus() int {
	total := 0
	for _, s := range u.States {
		switch s.Type {
		case StateBuffAP:
			total += s.Value
		case StateDebuffAP:
			total -= s.Value
		}
	}
	return total
}

// mpBonus - суммарный модификатор ОП от активных состояний (знаковый).
func (u *Unit) mpBonus() int {
	total := 0
	for _, s := range u.States {
		switch s.Type {
		case StateBuffMP:
			total += s.Value
		case StateDebuffMP:
			total -= s.Value
		}
	}
	return total
}

// expireStates тикает состояния указанной фазы: duration--, истекшие
// удаляются. У истекшего ap_loss есть побочный эффект - дрейн отпускает,
// и ОД немедленно возвращаются к максимуму.
func (u *Unit) expireStates(phase ExpirePhase) {
	kept := u.States[:0]
	for _, s := range u.States {
		if s.Expire != phase {
			kept = append(kept, s)
			continue
		}
		s.Duration--
		if s.Duration > 0 {
			kept = append(kept, s)
			continue
		}
		if s.Type == StateAPLoss {
			u.AP = u.MaxAP
		}
	}
	u.States = kept
}

// StartTurn выполняет фазу начала хода юнита:
//  1. тикают состояния с экспирацией "start";
//  2. базовое восстановление: ОП к максимуму (если не висит mp_loss),
//     ОД к максимуму (если не висит ap_loss с потраченным предохранителем);
//     предохранитель взводится обратно в любом случае;
//  3. к восстановленным значениям прибавляются модификаторы активных
//     баффов/дебаффов, итог не опускается ниже нуля;
//  4. сбрасываются счетчик кастов и выбор заклинания.
func (u *Unit) StartTurn() {
	u.expireStates(ExpireStart)

	if !u.HasState(StateMPLoss) {
		u.MP = u.MaxMP
	}
	blockAP := u.HasState(StateAPLoss) && !u.restoreAPOnce
	u.restoreAPOnce = true
	if !blockAP {
		u.AP = u.MaxAP
	}

	u.AP += u.apBonus()
	if u.AP < 0 {
		u.AP = 0
	}
	u.MP += u.mpBonus()
	if u.MP < 0 {
		u.MP = 0
	}

	u.CastsThisTurn = make(map[string]int)
	u.SelectedSpell = -1
}

// EndTurn выполняет фазу конца хода юнита:
//  1. тикают состояния с экспирацией "end" (истекший ap_loss вернет ОД);
//  2. ОД и ОП пересчитываются заново: максимум плюс оставшиеся
//     модификаторы, не ниже нуля. Именно пересчет, а не декремент -
//     результат не зависит от порядка снятия состояний;
//  3. тикают кулдауны всех заклинаний.
func (u *Unit) EndTurn() {
	u.expireStates(ExpireEnd)

	u.AP = u.MaxAP + u.apBonus()
	if u.AP < 0 {
		u.AP = 0
	}
	u.MP = u.MaxMP + u.mpBonus()
	if u.MP < 0 {
		u.MP = 0
	}

	for _, sp := range u.Spells {
		sp.TickCooldown()
	}
}
