package catalog

// Seed data. Rows follow gojūon order; dakuten/handakuten rows come after the
// base rows of each script. The ぢ/づ and ヂ/ヅ readings are romanized "dji"
// and "dzu" so that every (script, romaji) pair stays unique.

var hiraganaBase = []Character{
	{"あ", "a", Hiragana, "a"}, {"い", "i", Hiragana, "a"}, {"う", "u", Hiragana, "a"}, {"え", "e", Hiragana, "a"}, {"お", "o", Hiragana, "a"},
	{"か", "ka", Hiragana, "ka"}, {"き", "ki", Hiragana, "ka"}, {"く", "ku", Hiragana, "ka"}, {"け", "ke", Hiragana, "ka"}, {"こ", "ko", Hiragana, "ka"},
	{"さ", "sa", Hiragana, "sa"}, {"し", "shi", Hiragana, "sa"}, {"す", "su", Hiragana, "sa"}, {"せ", "se", Hiragana, "sa"}, {"そ", "so", Hiragana, "sa"},
	{"た", "ta", Hiragana, "ta"}, {"ち", "chi", Hiragana, "ta"}, {"つ", "tsu", Hiragana, "ta"}, {"て", "te", Hiragana, "ta"}, {"と", "to", Hiragana, "ta"},
	{"な", "na", Hiragana, "na"}, {"に", "ni", Hiragana, "na"}, {"ぬ", "nu", Hiragana, "na"}, {"ね", "ne", Hiragana, "na"}, {"の", "no", Hiragana, "na"},
	{"は", "ha", Hiragana, "ha"}, {"ひ", "hi", Hiragana, "ha"}, {"ふ", "fu", Hiragana, "ha"}, {"へ", "he", Hiragana, "ha"}, {"ほ", "ho", Hiragana, "ha"},
	{"ま", "ma", Hiragana, "ma"}, {"み", "mi", Hiragana, "ma"}, {"む", "mu", Hiragana, "ma"}, {"め", "me", Hiragana, "ma"}, {"も", "mo", Hiragana, "ma"},
	{"や", "ya", Hiragana, "ya"}, {"ゆ", "yu", Hiragana, "ya"}, {"よ", "yo", Hiragana, "ya"},
	{"ら", "ra", Hiragana, "ra"}, {"り", "ri", Hiragana, "ra"}, {"る", "ru", Hiragana, "ra"}, {"れ", "re", Hiragana, "ra"}, {"ろ", "ro", Hiragana, "ra"},
	{"わ", "wa", Hiragana, "wa"}, {"を", "wo", Hiragana, "wa"}, {"ん", "n", Hiragana, "wa"},
}

var hiraganaDakuten = []Character{
	{"が", "ga", Hiragana, "ga"}, {"ぎ", "gi", Hiragana, "ga"}, {"ぐ", "gu", Hiragana, "ga"}, {"げ", "ge", Hiragana, "ga"}, {"ご", "go", Hiragana, "ga"},
	{"ざ", "za", Hiragana, "za"}, {"じ", "ji", Hiragana, "za"}, {"ず", "zu", Hiragana, "za"}, {"ぜ", "ze", Hiragana, "za"}, {"ぞ", "zo", Hiragana, "za"},
	{"だ", "da", Hiragana, "da"}, {"ぢ", "dji", Hiragana, "da"}, {"づ", "dzu", Hiragana, "da"}, {"で", "de", Hiragana, "da"}, {"ど", "do", Hiragana, "da"},
	{"ば", "ba", Hiragana, "ba"}, {"び", "bi", Hiragana, "ba"}, {"ぶ", "bu", Hiragana, "ba"}, {"べ", "be", Hiragana, "ba"}, {"ぼ", "bo", Hiragana, "ba"},
	{"ぱ", "pa", Hiragana, "pa"}, {"ぴ", "pi", Hiragana, "pa"}, {"ぷ", "pu", Hiragana, "pa"}, {"ぺ", "pe", Hiragana, "pa"}, {"ぽ", "po", Hiragana, "pa"},
}

var katakanaBase = []Character{
	{"ア", "a", Katakana, "a"}, {"イ", "i", Katakana, "a"}, {"ウ", "u", Katakana, "a"}, {"エ", "e", Katakana, "a"}, {"オ", "o", Katakana, "a"},
	{"カ", "ka", Katakana, "ka"}, {"キ", "ki", Katakana, "ka"}, {"ク", "ku", Katakana, "ka"}, {"ケ", "ke", Katakana, "ka"}, {"コ", "ko", Katakana, "ka"},
	{"サ", "sa", Katakana, "sa"}, {"シ", "shi", Katakana, "sa"}, {"ス", "su", Katakana, "sa"}, {"セ", "se", Katakana, "sa"}, {"ソ", "so", Katakana, "sa"},
	{"タ", "ta", Katakana, "ta"}, {"チ", "chi", Katakana, "ta"}, {"ツ", "tsu", Katakana, "ta"}, {"テ", "te", Katakana, "ta"}, {"ト", "to", Katakana, "ta"},
	{"ナ", "na", Katakana, "na"}, {"ニ", "ni", Katakana, "na"}, {"ヌ", "nu", Katakana, "na"}, {"ネ", "ne", Katakana, "na"}, {"ノ", "no", Katakana, "na"},
	{"ハ", "ha", Katakana, "ha"}, {"ヒ", "hi", Katakana, "ha"}, {"フ", "fu", Katakana, "ha"}, {"ヘ", "he", Katakana, "ha"}, {"ホ", "ho", Katakana, "ha"},
	{"マ", "ma", Katakana, "ma"}, {"ミ", "mi", Katakana, "ma"}, {"ム", "mu", Katakana, "ma"}, {"メ", "me", Katakana, "ma"}, {"モ", "mo", Katakana, "ma"},
	{"ヤ", "ya", Katakana, "ya"}, {"ユ", "yu", Katakana, "ya"}, {"ヨ", "yo", Katakana, "ya"},
	{"ラ", "ra", Katakana, "ra"}, {"リ", "ri", Katakana, "ra"}, {"ル", "ru", Katakana, "ra"}, {"レ", "re", Katakana, "ra"}, {"ロ", "ro", Katakana, "ra"},
	{"ワ", "wa", Katakana, "wa"}, {"ヲ", "wo", Katakana, "wa"}, {"ン", "n", Katakana, "wa"},
}

var katakanaDakuten = []Character{
	{"ガ", "ga", Katakana, "ga"}, {"ギ", "gi", Katakana, "ga"}, {"グ", "gu", Katakana, "ga"}, {"ゲ", "ge", Katakana, "ga"}, {"ゴ", "go", Katakana, "ga"},
	{"ザ", "za", Katakana, "za"}, {"ジ", "ji", Katakana, "za"}, {"ズ", "zu", Katakana, "za"}, {"ゼ", "ze", Katakana, "za"}, {"ゾ", "zo", Katakana, "za"},
	{"ダ", "da", Katakana, "da"}, {"ヂ", "dji", Katakana, "da"}, {"ヅ", "dzu", Katakana, "da"}, {"デ", "de", Katakana, "da"}, {"ド", "do", Katakana, "da"},
	{"バ", "ba", Katakana, "ba"}, {"ビ", "bi", Katakana, "ba"}, {"ブ", "bu", Katakana, "ba"}, {"ベ", "be", Katakana, "ba"}, {"ボ", "bo", Katakana, "ba"},
	{"パ", "pa", Katakana, "pa"}, {"ピ", "pi", Katakana, "pa"}, {"プ", "pu", Katakana, "pa"}, {"ペ", "pe", Katakana, "pa"}, {"ポ", "po", Katakana, "pa"},
}

// kanjiN5 covers a beginner (JLPT N5) subset, grouped thematically.
var kanjiN5 = []Character{
	{"一", "ichi", Kanji, "numbers"}, {"二", "ni", Kanji, "numbers"}, {"三", "san", Kanji, "numbers"},
	{"四", "yon", Kanji, "numbers"}, {"五", "go", Kanji, "numbers"}, {"六", "roku", Kanji, "numbers"},
	{"七", "nana", Kanji, "numbers"}, {"八", "hachi", Kanji, "numbers"}, {"九", "kyuu", Kanji, "numbers"},
	{"十", "juu", Kanji, "numbers"}, {"百", "hyaku", Kanji, "numbers"}, {"千", "sen", Kanji, "numbers"},
	{"万", "man", Kanji, "numbers"}, {"円", "en", Kanji, "numbers"},

	{"日", "nichi", Kanji, "time"}, {"月", "getsu", Kanji, "time"}, {"火", "ka", Kanji, "time"},
	{"水", "sui", Kanji, "time"}, {"木", "moku", Kanji, "time"}, {"金", "kin", Kanji, "time"},
	{"土", "do", Kanji, "time"}, {"年", "toshi", Kanji, "time"}, {"時", "toki", Kanji, "time"},
	{"今", "ima", Kanji, "time"},

	{"山", "yama", Kanji, "nature"}, {"川", "kawa", Kanji, "nature"}, {"雨", "ame", Kanji, "nature"},
	{"空", "sora", Kanji, "nature"}, {"花", "hana", Kanji, "nature"}, {"天", "ten", Kanji, "nature"},

	{"人", "hito", Kanji, "people"}, {"男", "otoko", Kanji, "people"}, {"女", "onna", Kanji, "people"},
	{"子", "ko", Kanji, "people"}, {"友", "tomo", Kanji, "people"},

	{"目", "me", Kanji, "body"}, {"口", "kuchi", Kanji, "body"}, {"手", "te", Kanji, "body"},
	{"足", "ashi", Kanji, "body"}, {"耳", "mimi", Kanji, "body"},
}

func init() {
	all := make([]Character, 0,
		len(hiraganaBase)+len(hiraganaDakuten)+len(katakanaBase)+len(katakanaDakuten)+len(kanjiN5))
	all = append(all, hiraganaBase...)
	all = append(all, hiraganaDakuten...)
	all = append(all, katakanaBase...)
	all = append(all, katakanaDakuten...)
	all = append(all, kanjiN5...)

	c = buildCatalog(all)

	if err := Validate(); err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
}
