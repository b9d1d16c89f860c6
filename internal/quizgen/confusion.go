package quizgen

import "github.com/abhisek/kanazen/internal/catalog"

// kataSuffix marks katakana-specific confusion clusters in the lookup key.
const kataSuffix = "_kata"

// visualClusters maps a normalized romaji key to visually confusable romaji,
// based on stroke shape, hooks, loops, and direction. The table is
// hand-authored and intentionally asymmetric in places (some pairs are listed
// one-directionally); do not "fix" the symmetry without reviewing each pair.
var visualClusters = map[string][]string{
	// ろ る ら れ
	"ro": {"ru", "ra", "re"},
	"ru": {"ro", "re", "ra"},
	"ra": {"ro", "ru", "re"},
	"re": {"ru", "ro", "ra"},

	// し つ そ
	"shi": {"tsu", "so"},
	"tsu": {"shi", "so"},
	"so":  {"shi", "tsu"},

	// ん り
	"n":  {"ri"},
	"ri": {"n"},

	// わ ら ふ
	"wa": {"ra", "fu"},

	// か け
	"ka": {"ke"},
	"ke": {"ka"},

	// は ほ
	"ha": {"ho"},
	"ho": {"ha"},

	// ま む
	"ma": {"mu"},
	"mu": {"ma"},

	// ぬ め
	"nu": {"me"},
	"me": {"nu"},

	// あ お
	"a": {"o"},
	"o": {"a"},

	// や な
	"ya": {"na"},
	"na": {"ya"},

	// き さ
	"ki": {"sa"},
	"sa": {"ki"},

	// こ ゆ
	"ko": {"yu"},
	"yu": {"ko"},

	// ふ わ
	"fu": {"wa"},

	// ノ フ ソ (long-stroke katakana)
	"no": {"fu", "so"},

	// シ ツ ソ
	"shi_kata": {"tsu_kata", "so_kata"},
	"tsu_kata": {"shi_kata", "so_kata"},
	"so_kata":  {"shi_kata", "tsu_kata"},
}

// normalizeKey builds the cluster lookup key for a character. Katakana get a
// suffixed key so the katakana-specific clusters win over the shared ones.
func normalizeKey(ch catalog.Character) string {
	if ch.Script == catalog.Katakana {
		return ch.Romaji + kataSuffix
	}
	return ch.Romaji
}

// clusterFor resolves the visual-confusion cluster for a character, falling
// back from the script-specific key to the plain romaji key.
func clusterFor(ch catalog.Character) []string {
	if cluster, ok := visualClusters[normalizeKey(ch)]; ok {
		return cluster
	}
	return visualClusters[ch.Romaji]
}

// stripKataSuffix recovers the plain romaji from a cluster entry.
func stripKataSuffix(romaji string) string {
	if n := len(romaji) - len(kataSuffix); n > 0 && romaji[n:] == kataSuffix {
		return romaji[:n]
	}
	return romaji
}
