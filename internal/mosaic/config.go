package mosaic

import "time"

// Config holds the population and blink tunables.
type Config struct {
	// BaseAbsence is the gap between glances beyond which eyes start popping out.
	BaseAbsence time.Duration

	// PopoutPeriod is how often, past BaseAbsence, another eye pops out.
	PopoutPeriod time.Duration

	// GlancesPerEye is how many glances it takes to bring in a new eye.
	GlancesPerEye int

	// ConsecutiveWindow is the longest gap for two glances to count as a streak.
	ConsecutiveWindow time.Duration

	// StreakTrigger is how many consecutive glances force every eye wide open.
	StreakTrigger int

	// BlinkRatio is the blink chance gained per new eye and lost per popout.
	BlinkRatio float64

	// BlinkChanceFactor scales the per-frame behavior probability down by
	// eyeCount * BlinkChanceFactor.
	BlinkChanceFactor int
}

// DefaultConfig returns the tuning the watch face ships with.
func DefaultConfig() Config {
	return Config{
		BaseAbsence:       10 * time.Minute,
		PopoutPeriod:      5 * time.Minute,
		GlancesPerEye:     1,
		ConsecutiveWindow: 30 * time.Second,
		StreakTrigger:     3,
		BlinkRatio:        0.50,
		BlinkChanceFactor: 5,
	}
}

// withDivisorDefaults fills in the fields the policy divides by.
func (c Config) withDivisorDefaults() Config {
	d := DefaultConfig()
	if c.PopoutPeriod <= 0 {
		c.PopoutPeriod = d.PopoutPeriod
	}
	if c.GlancesPerEye <= 0 {
		c.GlancesPerEye = d.GlancesPerEye
	}
	if c.BlinkChanceFactor <= 0 {
		c.BlinkChanceFactor = d.BlinkChanceFactor
	}
	return c
}
