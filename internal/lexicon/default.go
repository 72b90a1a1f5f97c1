package lexicon

// DefaultName is the name of the built-in lexicon.
const DefaultName = "standard"

// The built-in tables cover four magnitude tiers (up to kei, 10^16), which is
// enough for every uint64.
var defaultLexicon = mustNew(DefaultName,
	Words{
		Digits:     [DigitCount]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十"},
		Hundred:    "百",
		Thousand:   "千",
		Magnitudes: []string{"万", "億", "兆", "京"},
	},
	Words{
		Digits:     [DigitCount]string{"レイ", "イチ", "ニ", "サン", "ヨン", "ゴ", "ロク", "ナナ", "ハチ", "キュウ", "ジュウ"},
		Hundred:    "ヒャク",
		Thousand:   "セン",
		Magnitudes: []string{"マン", "オク", "チョウ", "ケイ"},
		Separator:  " ",
		Compounds: map[uint64]string{
			300:  "サンビャク",
			600:  "ロッピャク",
			800:  "ハッピャク",
			3000: "サンゼン",
			8000: "ハッセン",
		},
	},
	Words{
		Digits:     [DigitCount]string{"rei", "ichi", "ni", "san", "yon", "go", "roku", "nana", "hachi", "kyū", "jū"},
		Hundred:    "hyaku",
		Thousand:   "sen",
		Magnitudes: []string{"man", "oku", "chō", "kei"},
		Separator:  " ",
		Compounds: map[uint64]string{
			300:  "sanbyaku",
			600:  "roppyaku",
			800:  "happyaku",
			3000: "sanzen",
			8000: "hassen",
		},
	},
)

// Default returns the built-in lexicon. It is shared and read-only.
func Default() *Lexicon {
	return defaultLexicon
}

func mustNew(name string, kanji, katakana, romaji Words) *Lexicon {
	l, err := New(name, kanji, katakana, romaji)
	if err != nil {
		panic(err)
	}
	return l
}
