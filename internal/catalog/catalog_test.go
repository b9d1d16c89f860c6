package catalog

import "testing"

func TestValidateSeed(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestCompositeIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ch := range All() {
		if seen[ch.ID()] {
			t.Errorf("duplicate composite id %q", ch.ID())
		}
		seen[ch.ID()] = true
	}
}

func TestRomajiSharedAcrossScripts(t *testing.T) {
	// "ka" exists in hiragana, katakana, and kanji; the composite ids must
	// disambiguate all three.
	hira, ok := ByID("hiragana-ka")
	if !ok || hira.Glyph != "か" {
		t.Errorf("hiragana-ka = %q, %v; want か, true", hira.Glyph, ok)
	}
	kata, ok := ByID("katakana-ka")
	if !ok || kata.Glyph != "カ" {
		t.Errorf("katakana-ka = %q, %v; want カ, true", kata.Glyph, ok)
	}
	kan, ok := ByID("kanji-ka")
	if !ok || kan.Glyph != "火" {
		t.Errorf("kanji-ka = %q, %v; want 火, true", kan.Glyph, ok)
	}
}

func TestByScriptGroup(t *testing.T) {
	raRow := ByScriptGroup(Hiragana, "ra")
	if len(raRow) != 5 {
		t.Fatalf("hiragana ra row has %d characters, want 5", len(raRow))
	}
	want := map[string]bool{"ra": true, "ri": true, "ru": true, "re": true, "ro": true}
	for _, ch := range raRow {
		if !want[ch.Romaji] {
			t.Errorf("unexpected romaji %q in ra row", ch.Romaji)
		}
	}
}

func TestCatalogOrderStable(t *testing.T) {
	all := All()
	if all[0].ID() != "hiragana-a" {
		t.Errorf("first catalog entry = %q, want hiragana-a", all[0].ID())
	}

	// Hiragana precedes katakana precedes kanji.
	lastHira, firstKata, firstKanji := -1, -1, -1
	for i, ch := range all {
		switch ch.Script {
		case Hiragana:
			lastHira = i
		case Katakana:
			if firstKata == -1 {
				firstKata = i
			}
		case Kanji:
			if firstKanji == -1 {
				firstKanji = i
			}
		}
	}
	if lastHira > firstKata || firstKata > firstKanji {
		t.Errorf("scripts out of order: lastHira=%d firstKata=%d firstKanji=%d", lastHira, firstKata, firstKanji)
	}
}

func TestResolveDropsUnknown(t *testing.T) {
	got := Resolve([]string{"hiragana-a", "hiragana-nonsense", "katakana-shi"})
	if len(got) != 2 {
		t.Fatalf("Resolve returned %d characters, want 2", len(got))
	}
	if got[0].Glyph != "あ" || got[1].Glyph != "シ" {
		t.Errorf("Resolve = [%q %q], want [あ シ]", got[0].Glyph, got[1].Glyph)
	}
}
