package adapt

// Config holds the engine's tuning knobs. All values have sensible
// defaults from DefaultConfig; zero values are normalized at use.
type Config struct {
	// AccuracySmoothing is the exponential-smoothing factor for the
	// overall accuracy estimate. Higher weights recent answers more.
	AccuracySmoothing float64

	// ResponseSmoothing is the smoothing factor for the average
	// response time.
	ResponseSmoothing float64

	// StreakThreshold is the consecutive same-outcome run length that
	// triggers a difficulty transition. Single events never move the
	// level.
	StreakThreshold int

	// ExpectedResponseSecs is the pacing reference: the estimated time
	// per question for the content being answered.
	ExpectedResponseSecs float64

	// FastRatio marks an answer as notably fast when response time is
	// below this fraction of the learner's average.
	FastRatio float64

	// SlowRatio marks an answer as dragging when response time exceeds
	// this multiple of the pacing reference.
	SlowRatio float64

	// EngagementStep is the size of a single engagement nudge.
	EngagementStep float64
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		AccuracySmoothing:    0.3,
		ResponseSmoothing:    0.3,
		StreakThreshold:      3,
		ExpectedResponseSecs: 30.0,
		FastRatio:            0.5,
		SlowRatio:            2.0,
		EngagementStep:       0.05,
	}
}

// normalized fills zero-valued fields with defaults so a partially
// constructed Config still behaves.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.AccuracySmoothing <= 0 || c.AccuracySmoothing > 1 {
		c.AccuracySmoothing = def.AccuracySmoothing
	}
	if c.ResponseSmoothing <= 0 || c.ResponseSmoothing > 1 {
		c.ResponseSmoothing = def.ResponseSmoothing
	}
	if c.StreakThreshold <= 0 {
		c.StreakThreshold = def.StreakThreshold
	}
	if c.ExpectedResponseSecs <= 0 {
		c.ExpectedResponseSecs = def.ExpectedResponseSecs
	}
	if c.FastRatio <= 0 {
		c.FastRatio = def.FastRatio
	}
	if c.SlowRatio <= 0 {
		c.SlowRatio = def.SlowRatio
	}
	if c.EngagementStep <= 0 {
		c.EngagementStep = def.EngagementStep
	}
	return c
}
