package factory

import (
	"time"

	"github.com/mcoot/gamenight-go/internal/dependencies/mocks"
	"github.com/mcoot/gamenight-go/internal/storage/memory"
	"github.com/mcoot/gamenight-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDGenerator
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDGenerator()

	app := newWithDependencies(store, mockClock, mockRandom, mockIDs, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}
