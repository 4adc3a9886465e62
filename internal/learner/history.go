package learner

// DefaultHistoryWindow is the default number of recent answers retained
// on a profile for streak evaluation.
const DefaultHistoryWindow = 10

// AnswerRecord is one answered question as seen by the profile: the
// outcome, how long it took, and the difficulty the learner was working
// at when it happened.
type AnswerRecord struct {
	Correct      bool
	ResponseSecs float64
	Difficulty   Difficulty
}

// History is a fixed-size rolling window of recent answers, newest last.
type History struct {
	Records []AnswerRecord
	Window  int
}

// NewHistory returns an empty history with the default window size.
func NewHistory() History {
	return History{Window: DefaultHistoryWindow}
}

// Append adds a record, evicting the oldest when the window is full.
// Returns the updated history; the receiver is not modified.
func (h History) Append(r AnswerRecord) History {
	window := h.Window
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	records := make([]AnswerRecord, len(h.Records), len(h.Records)+1)
	copy(records, h.Records)
	records = append(records, r)
	if len(records) > window {
		records = records[len(records)-window:]
	}
	return History{Records: records, Window: window}
}

// Streak counts consecutive answers at the tail of the history that share
// the given outcome and were answered at the given difficulty. A record
// at a different difficulty ends the run: answers from before a level
// change never count toward a streak at the new level.
func (h History) Streak(correct bool, at Difficulty) int {
	n := 0
	for i := len(h.Records) - 1; i >= 0; i-- {
		r := h.Records[i]
		if r.Correct != correct || r.Difficulty != at {
			break
		}
		n++
	}
	return n
}

// Len returns the number of records currently in the window.
func (h History) Len() int {
	return len(h.Records)
}
