package catalog

import "fmt"

// Script identifies the writing system a character belongs to.
type Script string

const (
	Hiragana Script = "hiragana"
	Katakana Script = "katakana"
	Kanji    Script = "kanji"
)

// AllScripts returns the scripts in presentation order.
func AllScripts() []Script {
	return []Script{Hiragana, Katakana, Kanji}
}

// Character is one entry of the reference catalog. Characters are immutable;
// the catalog is seeded once at init and never mutated.
type Character struct {
	// Glyph is the rendered character, e.g. "あ" or "山".
	Glyph string

	// Romaji is the romanized reading, e.g. "a" or "yama".
	Romaji string

	// Script is the writing system.
	Script Script

	// Group is the phonetic row (kana, e.g. "ka") or thematic group
	// (kanji, e.g. "numbers").
	Group string
}

// ID returns the composite identifier "<script>-<romaji>". Romaji alone is
// ambiguous across scripts (hiragana "ka" vs katakana "ka"); the composite id
// is unique across the whole catalog.
func (c Character) ID() string {
	return fmt.Sprintf("%s-%s", c.Script, c.Romaji)
}
