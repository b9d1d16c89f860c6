package catalog

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks the integrity of the seeded catalog. It runs once at init;
// a failure means the seed tables themselves are broken.
func Validate() error {
	validScripts := map[Script]bool{
		Hiragana: true,
		Katakana: true,
		Kanji:    true,
	}

	seen := make(map[string]string, len(c.chars))
	for _, ch := range c.chars {
		if ch.Glyph == "" {
			return fmt.Errorf("character %q has empty glyph", ch.ID())
		}
		if utf8.RuneCountInString(ch.Glyph) != 1 {
			return fmt.Errorf("character %q glyph %q is not a single rune", ch.ID(), ch.Glyph)
		}
		if ch.Romaji == "" {
			return fmt.Errorf("character %q has empty romaji", ch.Glyph)
		}
		if ch.Group == "" {
			return fmt.Errorf("character %q has empty group", ch.ID())
		}
		if !validScripts[ch.Script] {
			return fmt.Errorf("character %q has unknown script %q", ch.Glyph, ch.Script)
		}

		id := ch.ID()
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("duplicate composite id %q (glyphs %q and %q)", id, prev, ch.Glyph)
		}
		seen[id] = ch.Glyph
	}

	return nil
}
