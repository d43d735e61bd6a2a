package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs used to correlate one unit of work across log lines.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return value.String(), nil
}

// Static returns the same id every time; tests use it to assert log correlation.
type Static string

func (s Static) NewID() (string, error) {
	return string(s), nil
}
