package schedule

import (
	"fmt"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
)

const (
	// DefaultBlockLimit is the time budget of a lesson block: 1h45m.
	DefaultBlockLimit = 1*3600 + 45*60

	// DefaultWeeklyBlocks is the number of blocks after which a subject
	// gets a weekly review.
	DefaultWeeklyBlocks = 7

	// DefaultMonthlyWeeklies is the number of weekly reviews every subject
	// must reach before the monthly review round.
	DefaultMonthlyWeeklies = 4
)

// Config holds the scheduling thresholds.
type Config struct {
	BlockLimit      int // seconds
	WeeklyBlocks    int
	MonthlyWeeklies int
}

// DefaultConfig returns the standard 1h45m / 7 blocks / 4 weeks setup.
func DefaultConfig() Config {
	return Config{
		BlockLimit:      DefaultBlockLimit,
		WeeklyBlocks:    DefaultWeeklyBlocks,
		MonthlyWeeklies: DefaultMonthlyWeeklies,
	}
}

// Validate checks that every threshold is positive.
func (c Config) Validate() error {
	if c.BlockLimit <= 0 {
		return fmt.Errorf("%w: block limit %s", ErrInvalidLimit, duration.Format(c.BlockLimit))
	}
	if c.WeeklyBlocks <= 0 {
		return fmt.Errorf("%w: weekly blocks %d", ErrInvalidLimit, c.WeeklyBlocks)
	}
	if c.MonthlyWeeklies <= 0 {
		return fmt.Errorf("%w: monthly weeklies %d", ErrInvalidLimit, c.MonthlyWeeklies)
	}
	return nil
}
