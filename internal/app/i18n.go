package app

type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
	LangArabic  Language = "ar"
)

// Strings is the user-facing string table for one locale.
type Strings struct {
	Title       string
	Placeholder string
	NewChat     string
	ClearChat   string
	Language    string
	ExportChat  string
	History     string
	NoHistory   string
	Typing      string
	Error       string
	Copy        string
	Copied      string
}

var translations = map[Language]Strings{
	LangEnglish: {
		Title:       "AI Portfolio RAG Assistant",
		Placeholder: "Ask me anything about CVs...",
		NewChat:     "New chat",
		ClearChat:   "Clear chat",
		Language:    "Language",
		ExportChat:  "Export chat",
		History:     "Recent chats",
		NoHistory:   "No previous conversations",
		Typing:      "Typing",
		Error:       "Something went wrong",
		Copy:        "Copy",
		Copied:      "Copied!",
	},
	LangFrench: {
		Title:       "Assistant RAG Portfolio IA",
		Placeholder: "Posez-moi une question sur les CV...",
		NewChat:     "Nouvelle discussion",
		ClearChat:   "Effacer la discussion",
		Language:    "Langue",
		ExportChat:  "Exporter",
		History:     "Discussions récentes",
		NoHistory:   "Aucune conversation précédente",
		Typing:      "Tape",
		Error:       "Une erreur s'est produite",
		Copy:        "Copier",
		Copied:      "Copié!",
	},
	LangArabic: {
		Title:       "مساعد السيرة الذاتية بالذكاء الاصطناعي",
		Placeholder: "اسألني أي شيء عن السير الذاتية...",
		NewChat:     "محادثة جديدة",
		ClearChat:   "مسح المحادثة",
		Language:    "اللغة",
		ExportChat:  "تصدير",
		History:     "المحادثات الأخيرة",
		NoHistory:   "لا توجد محادثات سابقة",
		Typing:      "يكتب",
		Error:       "حدث خطأ ما",
		Copy:        "نسخ",
		Copied:      "تم النسخ!",
	},
}

// Lookup returns the string table for lang, falling back to English
// for unknown keys.
func Lookup(lang Language) Strings {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[LangEnglish]
}

// ParseLanguage maps a raw config/flag value to a supported locale,
// defaulting to English.
func ParseLanguage(raw string) Language {
	switch Language(raw) {
	case LangFrench:
		return LangFrench
	case LangArabic:
		return LangArabic
	default:
		return LangEnglish
	}
}

// RTL reports whether lang lays out right-to-left.
func RTL(lang Language) bool { return lang == LangArabic }

// Languages lists the supported locales in UI cycle order.
func Languages() []Language {
	return []Language{LangEnglish, LangFrench, LangArabic}
}
