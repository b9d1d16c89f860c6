package quizgen

import "github.com/abhisek/kanazen/internal/catalog"

// maxDistractors is the number of wrong options per question.
const maxDistractors = 3

// SelectDistractors picks up to three wrong romaji for the target from the
// candidate pool, by strict priority:
//
//  1. Visual-confusion cluster (same script). A resolved cluster with at
//     least two pool members contributes exactly its first two; a cluster of
//     one contributes that one.
//  2. Same phonetic group and script, randomized.
//  3. Any same-script pool character, randomized.
//
// Each stage only fills remaining slots. The result never contains the
// target's own romaji and never repeats a romaji. Fewer than three results
// means the pool cannot support a question; the caller must treat that as
// "no question available".
func SelectDistractors(target catalog.Character, pool []catalog.Character) []string {
	used := map[string]bool{target.Romaji: true}
	out := make([]string, 0, maxDistractors)

	add := func(romaji string) {
		if len(out) < maxDistractors && !used[romaji] {
			used[romaji] = true
			out = append(out, romaji)
		}
	}

	// Stage 1: visual similarity.
	var visual []catalog.Character
	for _, key := range clusterFor(target) {
		romaji := stripKataSuffix(key)
		for _, ch := range pool {
			if ch.Script == target.Script && ch.Romaji == romaji {
				visual = append(visual, ch)
				break
			}
		}
	}
	if len(visual) >= 2 {
		add(visual[0].Romaji)
		add(visual[1].Romaji)
	} else if len(visual) == 1 {
		add(visual[0].Romaji)
	}

	// Stage 2: same phonetic group.
	var group []catalog.Character
	for _, ch := range pool {
		if ch.Script == target.Script && ch.Group == target.Group && ch.Romaji != target.Romaji {
			group = append(group, ch)
		}
	}
	for _, ch := range shuffled(group) {
		add(ch.Romaji)
	}

	// Stage 3: same-script fallback.
	var script []catalog.Character
	for _, ch := range pool {
		if ch.Script == target.Script && ch.Romaji != target.Romaji {
			script = append(script, ch)
		}
	}
	for _, ch := range shuffled(script) {
		add(ch.Romaji)
	}

	return out
}
