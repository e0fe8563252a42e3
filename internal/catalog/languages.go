package catalog

// Languages lists every supported spoken language in canonical form.
var Languages = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Portuguese",
	"Hindi",
	"Japanese",
	"Korean",
	"Mandarin",
	"Thai",
}

// LanguageAliases maps canonical language names to accepted lowercase
// aliases. The canonical name itself is always implied. Aliases shorter than
// the resolver's minimum input length would be unreachable, so only ISO 639-2
// style three-letter codes are listed.
var LanguageAliases = map[string][]string{
	"English":    {"eng"},
	"Spanish":    {"spa", "espanol", "castilian"},
	"French":     {"fra", "fre", "francais"},
	"German":     {"deu", "ger", "deutsch"},
	"Portuguese": {"por", "portugues", "brazilian portuguese"},
	"Hindi":      {"hin"},
	"Japanese":   {"jpn", "nihongo"},
	"Korean":     {"kor"},
	"Mandarin":   {"zho", "chi", "chinese", "mandarin chinese"},
	"Thai":       {"tha"},
}
