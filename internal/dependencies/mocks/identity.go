package mocks

import (
	"fmt"

	"github.com/mcoot/gamenight-go/internal/dependencies/identity"
)

// MockIDGenerator is a mock implementation of Generator for testing
type MockIDGenerator struct {
	// IDResults is a queue of results to return from NewID
	IDResults []string
	idIndex   int

	// fallback counter for when the queue is exhausted
	counter int
}

// Ensure MockIDGenerator implements Generator
var _ identity.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a new MockIDGenerator
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

// NewID returns the next queued result, or a sequential "id-N" fallback
func (g *MockIDGenerator) NewID() string {
	if g.idIndex < len(g.IDResults) {
		result := g.IDResults[g.idIndex]
		g.idIndex++
		return result
	}
	g.counter++
	return fmt.Sprintf("id-%d", g.counter)
}

// QueueID adds values to the NewID result queue
func (g *MockIDGenerator) QueueID(values ...string) {
	g.IDResults = append(g.IDResults, values...)
}

// Reset clears all queued results and the fallback counter
func (g *MockIDGenerator) Reset() {
	g.IDResults = nil
	g.idIndex = 0
	g.counter = 0
}
