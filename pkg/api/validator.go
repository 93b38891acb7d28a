package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p MovePayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("destination must be non-negative")
	}
	return nil
}

func (p CastPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("target cell must be non-negative")
	}
	return nil
}

func (p SelectSpellPayload) Validate() error {
	if p.Index < -1 {
		return errors.New("spell index must be -1 or greater")
	}
	return nil
}
