package quizgen

import (
	"testing"

	"github.com/abhisek/kanazen/internal/catalog"
)

func mustChar(t *testing.T, script catalog.Script, romaji string) catalog.Character {
	t.Helper()
	ch, ok := catalog.ByScriptRomaji(script, romaji)
	if !ok {
		t.Fatalf("catalog has no %s %q", script, romaji)
	}
	return ch
}

func TestSelectDistractors_VisualClusterFirst(t *testing.T) {
	// し confuses with つ and そ; with the full catalog as pool, exactly the
	// first two cluster members fill the visual slots.
	target := mustChar(t, catalog.Hiragana, "shi")
	got := SelectDistractors(target, catalog.All())

	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %v", got)
	}
	if got[0] != "tsu" || got[1] != "so" {
		t.Fatalf("expected visual pair [tsu so] first, got %v", got)
	}
}

func TestSelectDistractors_SingleVisualMember(t *testing.T) {
	// わ lists ら and ふ; restrict the pool so only ら survives. The lone
	// visual member still leads.
	target := mustChar(t, catalog.Hiragana, "wa")
	pool := []catalog.Character{
		mustChar(t, catalog.Hiragana, "ra"),
		mustChar(t, catalog.Hiragana, "ma"),
		mustChar(t, catalog.Hiragana, "ya"),
		mustChar(t, catalog.Hiragana, "yo"),
	}
	got := SelectDistractors(target, pool)

	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %v", got)
	}
	if got[0] != "ra" {
		t.Fatalf("expected visual member first, got %v", got)
	}
}

func TestSelectDistractors_KatakanaClusterStaysInScript(t *testing.T) {
	// シ has its own katakana cluster; distractors must be katakana readings,
	// never hiragana pool entries.
	target := mustChar(t, catalog.Katakana, "shi")
	got := SelectDistractors(target, catalog.All())

	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %v", got)
	}
	if got[0] != "tsu" || got[1] != "so" {
		t.Fatalf("expected katakana visual pair [tsu so] first, got %v", got)
	}
}

func TestSelectDistractors_GroupFallback(t *testing.T) {
	// ち has no visual cluster; its distractors come from the ta row first.
	target := mustChar(t, catalog.Hiragana, "chi")
	got := SelectDistractors(target, catalog.All())

	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %v", got)
	}
	row := map[string]bool{"ta": true, "tsu": true, "te": true, "to": true}
	for _, romaji := range got {
		if !row[romaji] {
			t.Fatalf("expected ta-row distractors, got %v", got)
		}
	}
}

func TestSelectDistractors_NeverTargetNeverDuplicate(t *testing.T) {
	for _, target := range catalog.All() {
		got := SelectDistractors(target, catalog.All())
		seen := map[string]bool{}
		for _, romaji := range got {
			if romaji == target.Romaji {
				t.Fatalf("%s: distractors contain the answer", target.ID())
			}
			if seen[romaji] {
				t.Fatalf("%s: duplicate distractor %q", target.ID(), romaji)
			}
			seen[romaji] = true
		}
		if len(got) != 3 {
			t.Fatalf("%s: expected 3 distractors from full catalog, got %v", target.ID(), got)
		}
	}
}

func TestSelectDistractors_TinyPool(t *testing.T) {
	target := mustChar(t, catalog.Hiragana, "a")
	pool := []catalog.Character{
		target,
		mustChar(t, catalog.Hiragana, "i"),
		mustChar(t, catalog.Hiragana, "u"),
	}
	got := SelectDistractors(target, pool)
	if len(got) != 2 {
		t.Fatalf("expected 2 distractors from a 3-character pool, got %v", got)
	}
}
