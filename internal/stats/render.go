package stats

import (
	"fmt"
	"io"
)

// Render prints the report as plain text.
func Render(w io.Writer, r Report) error {
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Learned: %d/%d\n", r.LearnedCount, r.CatalogCount); err != nil {
		return err
	}
	for _, sp := range r.PerScript {
		if _, err := fmt.Fprintf(w, "  %s: %d/%d\n", sp.Script, sp.Learned, sp.Total); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "In revision: %d\n", r.RevisionCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Cards studied: %d\n", r.TotalStudied); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Quiz accuracy: %.1f%% (%d/%d)\n", r.Accuracy()*100, r.QuizCorrect, r.QuizTotal); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Streak: %d (best %d)\n", r.CurrentStreak, r.BestStreak); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	if len(r.Days) == 0 {
		_, err := fmt.Fprintln(w, "No activity yet.")
		return err
	}

	if _, err := fmt.Fprintln(w, "History"); err != nil {
		return err
	}
	headers := []string{"Date", "Studied", "Quiz", "Accuracy", "Sessions"}
	rows := make([][]string, 0, len(r.Days))
	for _, d := range r.Days {
		acc := "-"
		if d.QuizTotal > 0 {
			acc = fmt.Sprintf("%.0f%%", float64(d.QuizCorrect)/float64(d.QuizTotal)*100)
		}
		rows = append(rows, []string{
			d.Date,
			fmt.Sprintf("%d", d.StudyCount),
			fmt.Sprintf("%d/%d", d.QuizCorrect, d.QuizTotal),
			acc,
			fmt.Sprintf("%d", d.Sessions),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
