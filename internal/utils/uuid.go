package utils

import "github.com/google/uuid"

// UUIDGenerator issues random (version 4) UUIDs for new records.
// Repositories take it as a field so tests can substitute a
// deterministic generator.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a ready to use UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewUUID returns a new random UUID.
func (g *UUIDGenerator) NewUUID() uuid.UUID {
	return uuid.New()
}
