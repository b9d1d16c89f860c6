package catalog

import "fmt"

// cat holds the seeded catalog with precomputed indices.
type cat struct {
	chars         []Character
	byID          map[string]*Character
	byScript      map[Script][]Character
	byScriptGroup map[Script]map[string][]Character
}

// c is the package-level catalog singleton, set by init() in data.go.
var c *cat

func buildCatalog(chars []Character) *cat {
	ct := &cat{
		chars:         chars,
		byID:          make(map[string]*Character, len(chars)),
		byScript:      make(map[Script][]Character),
		byScriptGroup: make(map[Script]map[string][]Character),
	}

	for i := range ct.chars {
		ch := &ct.chars[i]
		ct.byID[ch.ID()] = ch
		ct.byScript[ch.Script] = append(ct.byScript[ch.Script], *ch)

		groups := ct.byScriptGroup[ch.Script]
		if groups == nil {
			groups = make(map[string][]Character)
			ct.byScriptGroup[ch.Script] = groups
		}
		groups[ch.Group] = append(groups[ch.Group], *ch)
	}

	return ct
}

// All returns every character in fixed catalog order. The order is the
// pedagogical presentation order: hiragana rows first, then katakana, then
// kanji by group. Callers must not mutate the returned slice.
func All() []Character {
	return c.chars
}

// Count returns the total number of characters in the catalog.
func Count() int {
	return len(c.chars)
}

// ByID looks up a character by its composite id.
func ByID(id string) (Character, bool) {
	ch, ok := c.byID[id]
	if !ok {
		return Character{}, false
	}
	return *ch, true
}

// ByScript returns all characters of the given script, in catalog order.
func ByScript(s Script) []Character {
	return c.byScript[s]
}

// ByScriptGroup returns all characters sharing a script and group.
func ByScriptGroup(s Script, group string) []Character {
	groups := c.byScriptGroup[s]
	if groups == nil {
		return nil
	}
	return groups[group]
}

// ByScriptRomaji looks up a character by script and romaji reading.
func ByScriptRomaji(s Script, romaji string) (Character, bool) {
	return ByID(fmt.Sprintf("%s-%s", s, romaji))
}

// Resolve maps composite ids to characters, silently dropping ids that no
// longer resolve (e.g. stale ids from an older catalog revision in a persisted
// progress blob). Catalog order of the input is preserved.
func Resolve(ids []string) []Character {
	out := make([]Character, 0, len(ids))
	for _, id := range ids {
		if ch, ok := ByID(id); ok {
			out = append(out, ch)
		}
	}
	return out
}
