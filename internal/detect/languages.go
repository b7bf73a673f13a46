package detect

import "strings"

// OtherLanguage is the fallback label when the model cannot decide or
// answers outside the canonical set.
const OtherLanguage = "Other"

// canonicalLanguages is the closed set of labels a detection may return,
// excluding the fallback. The list is also embedded into the detection
// prompt so the model answers with one of these names.
var canonicalLanguages = []string{
	"English",
	"Chinese",
	"Japanese",
	"Korean",
	"French",
	"German",
	"Spanish",
	"Portuguese",
	"Italian",
	"Russian",
	"Arabic",
	"Hindi",
	"Bengali",
	"Dutch",
	"Swedish",
	"Norwegian",
	"Danish",
	"Finnish",
	"Polish",
	"Czech",
	"Hungarian",
	"Romanian",
	"Greek",
	"Turkish",
	"Hebrew",
	"Thai",
	"Vietnamese",
	"Indonesian",
	"Malay",
	"Ukrainian",
	"Bulgarian",
	"Croatian",
	"Serbian",
}

// synonyms maps common alternative spellings the model tends to produce,
// including Chinese and native language names, onto canonical labels.
var synonyms = map[string]string{
	"中文":         "Chinese",
	"汉语":         "Chinese",
	"简体中文":       "Chinese",
	"繁体中文":       "Chinese",
	"mandarin":   "Chinese",
	"英文":         "English",
	"英语":         "English",
	"日文":         "Japanese",
	"日语":         "Japanese",
	"日本語":        "Japanese",
	"韩文":         "Korean",
	"韩语":         "Korean",
	"한국어":        "Korean",
	"法文":         "French",
	"法语":         "French",
	"français":   "French",
	"francais":   "French",
	"德文":         "German",
	"德语":         "German",
	"deutsch":    "German",
	"西班牙文":       "Spanish",
	"西班牙语":       "Spanish",
	"español":    "Spanish",
	"espanol":    "Spanish",
	"castilian":  "Spanish",
	"葡萄牙语":       "Portuguese",
	"português":  "Portuguese",
	"portugues":  "Portuguese",
	"意大利语":       "Italian",
	"italiano":   "Italian",
	"俄文":         "Russian",
	"俄语":         "Russian",
	"русский":    "Russian",
	"阿拉伯语":       "Arabic",
	"العربية":    "Arabic",
	"印地语":        "Hindi",
	"荷兰语":        "Dutch",
	"nederlands": "Dutch",
	"瑞典语":        "Swedish",
	"svenska":    "Swedish",
	"挪威语":        "Norwegian",
	"norsk":      "Norwegian",
	"丹麦语":        "Danish",
	"dansk":      "Danish",
	"芬兰语":        "Finnish",
	"suomi":      "Finnish",
	"波兰语":        "Polish",
	"polski":     "Polish",
	"捷克语":        "Czech",
	"匈牙利语":       "Hungarian",
	"magyar":     "Hungarian",
	"罗马尼亚语":      "Romanian",
	"română":     "Romanian",
	"希腊语":        "Greek",
	"ελληνικά":   "Greek",
	"土耳其语":       "Turkish",
	"türkçe":     "Turkish",
	"turkce":     "Turkish",
	"希伯来语":       "Hebrew",
	"עברית":      "Hebrew",
	"泰语":         "Thai",
	"ไทย":        "Thai",
	"越南语":        "Vietnamese",
	"tiếng việt": "Vietnamese",
	"印尼语":        "Indonesian",
	"印度尼西亚语":     "Indonesian",
	"马来语":        "Malay",
	"乌克兰语":       "Ukrainian",
	"українська": "Ukrainian",
	"保加利亚语":      "Bulgarian",
	"克罗地亚语":      "Croatian",
	"塞尔维亚语":      "Serbian",
	"其他":         OtherLanguage,
	"未知":         OtherLanguage,
	"unknown":    OtherLanguage,
}

// Canonical returns the closed label set, fallback included, as handed to
// the detection prompt.
func Canonical() []string {
	out := make([]string, 0, len(canonicalLanguages)+1)
	out = append(out, canonicalLanguages...)
	out = append(out, OtherLanguage)
	return out
}

// Normalize maps a raw model answer onto a canonical label. Decorations the
// model tends to add around the name are stripped first, then the synonym
// table and a case-insensitive match against the canonical set apply. An
// unmapped label passes through unchanged; an empty answer becomes
// OtherLanguage.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "【】\"'“”‘’`")
	s = strings.TrimRight(s, ":：.。")
	s = strings.TrimSpace(s)
	if s == "" {
		return OtherLanguage
	}

	if canonical, ok := synonyms[strings.ToLower(s)]; ok {
		return canonical
	}
	for _, lang := range canonicalLanguages {
		if strings.EqualFold(s, lang) {
			return lang
		}
	}
	if strings.EqualFold(s, OtherLanguage) {
		return OtherLanguage
	}
	return s
}
