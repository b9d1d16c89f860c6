package progress

import "time"

// MarkSeen records that the learner studied a new character: the id joins the
// learned set, leaves the revision list, and today's new-card counter and
// study count both advance. The daily counter lazily resets first if its
// stored date is not today.
func (p *Progress) MarkSeen(id string, now time.Time) {
	today := DateOf(now)

	dp := EffectiveCounter(p.DailyProgress, today)
	dp.Count++
	p.DailyProgress = dp

	if !contains(p.Learned, id) {
		p.Learned = append(p.Learned, id)
	}
	p.RevisionList = remove(p.RevisionList, id)

	p.statsFor(today).StudyCount++
}

// AddToRevision flags a character for review. Adding is idempotent and leaves
// the learned set and daily counter untouched.
func (p *Progress) AddToRevision(id string) {
	if !contains(p.RevisionList, id) {
		p.RevisionList = append(p.RevisionList, id)
	}
}

// RemoveFromRevision clears the review flag for a character. It does not add
// the id to the learned set; mastering a revision item only ends the review.
func (p *Progress) RemoveFromRevision(id string) {
	p.RevisionList = remove(p.RevisionList, id)
}

// Unlearn removes a character from the learned set.
func (p *Progress) Unlearn(id string) {
	p.Learned = remove(p.Learned, id)
}

// SetDailyGoal updates the new-card quota, clamped to at least one.
func (p *Progress) SetDailyGoal(goal int) {
	if goal < 1 {
		goal = 1
	}
	p.Settings.DailyGoal = goal
}
