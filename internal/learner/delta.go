package learner

// Delta is a proposed profile update. The adaptation engine returns one
// per answer event; the caller decides when to apply it. Applying never
// mutates the original profile.
type Delta struct {
	// OverallAccuracy is the new smoothed accuracy, in [0,1].
	OverallAccuracy float64

	// AvgResponseSecs is the new smoothed response time.
	AvgResponseSecs float64

	// EngagementScore is the new engagement estimate, in [0,1].
	EngagementScore float64

	// PreferredDifficulty is the difficulty after any streak-gated
	// transition. Equal to the prior level on most answers.
	PreferredDifficulty Difficulty

	// Record is the answer event to append to the recent-answer window.
	Record AnswerRecord
}

// Apply returns a copy of p with the delta folded in. The recent-answer
// window gains the new record; everything else is replaced wholesale.
func (d Delta) Apply(p Profile) Profile {
	next := p
	next.OverallAccuracy = d.OverallAccuracy
	next.AvgResponseSecs = d.AvgResponseSecs
	next.EngagementScore = d.EngagementScore
	next.PreferredDifficulty = d.PreferredDifficulty
	next.Recent = p.Recent.Append(d.Record)
	if p.TopicAffinity != nil {
		next.TopicAffinity = make(map[string]float64, len(p.TopicAffinity))
		for k, v := range p.TopicAffinity {
			next.TopicAffinity[k] = v
		}
	}
	return next
}

// CompletionDelta is the profile update proposed when a quiz finishes:
// the completion counter ticks up and the quiz topic's affinity is
// nudged toward the quiz accuracy.
type CompletionDelta struct {
	Topic        string
	QuizAccuracy float64
}

// topicSmoothing weights the just-finished quiz against prior affinity.
const topicSmoothing = 0.4

// Apply returns a copy of p with the completion folded in.
func (d CompletionDelta) Apply(p Profile) Profile {
	next := p
	next.QuizzesCompleted = p.QuizzesCompleted + 1

	next.TopicAffinity = make(map[string]float64, len(p.TopicAffinity)+1)
	for k, v := range p.TopicAffinity {
		next.TopicAffinity[k] = v
	}
	if d.Topic != "" {
		prior, ok := next.TopicAffinity[d.Topic]
		if !ok {
			prior = d.QuizAccuracy
		}
		aff := (1-topicSmoothing)*prior + topicSmoothing*d.QuizAccuracy
		next.TopicAffinity[d.Topic] = clamp01(aff)
	}
	return next
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
