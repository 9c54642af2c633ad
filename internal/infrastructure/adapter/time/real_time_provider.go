package time

import (
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
)

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

// Now returns the current time in UTC, truncated to microseconds so values
// survive a round trip through postgres timestamps unchanged
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
