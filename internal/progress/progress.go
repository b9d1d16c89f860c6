// Package progress owns the mutable learner state: the learned set, the
// revision list, the daily new-card counter, and the per-day history log.
// All mutation rules live here; callers persist the whole struct after every
// mutation.
package progress

import "encoding/json"

// DefaultDailyGoal is the new-card quota applied when none is configured.
const DefaultDailyGoal = 5

// Progress is the persisted learner state. The JSON field names match the
// blob format that earlier releases stored, so old blobs load unchanged.
type Progress struct {
	// Learned holds composite character ids marked as known. Grows through
	// study and dashboard actions, shrinks only via explicit unlearn.
	Learned []string `json:"learned"`

	// RevisionList holds composite ids flagged for review.
	RevisionList []string `json:"revisionList"`

	// DailyProgress counts new cards marked seen today. The stored date may
	// be stale; reads go through EffectiveCounter for the lazy rollover.
	DailyProgress DailyProgress `json:"dailyProgress"`

	// History has one entry per calendar day touched, ordered by date.
	History []DailyStats `json:"history"`

	Settings Settings `json:"settings"`
}

// DailyProgress tracks new-card intake for a single day.
type DailyProgress struct {
	Date  string `json:"date"` // ISO date, "2006-01-02"
	Count int    `json:"count"`
}

// DailyStats is one day's activity log.
type DailyStats struct {
	Date        string  `json:"date"`
	StudyCount  int     `json:"studyCount"`
	QuizCorrect int     `json:"quizCorrect"`
	QuizTotal   int     `json:"quizTotal"`
	Sessions    []Burst `json:"sessions,omitempty"`
}

// Burst is a contiguous run of quiz answers. Answers within five minutes of
// the burst's end extend it; a longer gap starts a new burst.
type Burst struct {
	StartTime int64 `json:"startTime"` // epoch millis
	EndTime   int64 `json:"endTime"`
	Correct   int   `json:"correct"`
	Total     int   `json:"total"`
}

// Settings holds learner-tunable preferences stored with the progress blob.
type Settings struct {
	DailyGoal int `json:"dailyGoal"`
}

// New returns an all-empty progress with default settings.
func New() *Progress {
	return &Progress{
		Learned:      []string{},
		RevisionList: []string{},
		Settings:     Settings{DailyGoal: DefaultDailyGoal},
	}
}

// Decode parses a persisted blob, merging recovered fields over defaults.
// Absent collections stay empty and absent counters stay zero; a blob that is
// not valid JSON at all yields pristine defaults along with the parse error
// so the caller can log it. The returned progress is always usable.
func Decode(data []byte) (*Progress, error) {
	p := New()
	err := json.Unmarshal(data, p)
	if err != nil {
		return New(), err
	}
	p.normalize()
	return p, nil
}

// Encode serializes the progress for persistence.
func (p *Progress) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// normalize repairs a decoded progress so no field can trip up callers.
func (p *Progress) normalize() {
	if p.Learned == nil {
		p.Learned = []string{}
	}
	if p.RevisionList == nil {
		p.RevisionList = []string{}
	}
	if p.Settings.DailyGoal < 1 {
		p.Settings.DailyGoal = DefaultDailyGoal
	}
	if p.DailyProgress.Count < 0 {
		p.DailyProgress.Count = 0
	}
}

// HasLearned reports whether the composite id is in the learned set.
func (p *Progress) HasLearned(id string) bool {
	return contains(p.Learned, id)
}

// LearnedSet returns the learned ids as a lookup set.
func (p *Progress) LearnedSet() map[string]bool {
	set := make(map[string]bool, len(p.Learned))
	for _, id := range p.Learned {
		set[id] = true
	}
	return set
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func remove(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
