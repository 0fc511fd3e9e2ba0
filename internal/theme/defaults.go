package theme

// defaultTokens is the complete token table. Every name the renderer refers
// to appears here with a usable value, so a partial or empty theme can never
// produce an undefined visual property. The map itself is never handed out;
// Derive copies it.
var defaultTokens = map[string]string{
	// page surfaces
	"pageBg":     "#fdfaf4",
	"pageBorder": "#e8e1d3",
	"pageText":   "#3f3a33",

	// calendar
	"dateHeaderBg":       "#f3ead9",
	"dateHeaderText":     "#5d5142",
	"calendarCellBg":     "#ffffff",
	"calendarCellBorder": "#ece5d8",
	"calendarDayText":    "#6b6254",
	"calendarTodayRing":  "#e8927c",
	"countBadgeBg":       "#e8927c",
	"countBadgeText":     "#ffffff",

	// tab strip
	"tabStripBg":      "#efe7d7",
	"tabBg":           "#f7f1e5",
	"tabActiveBg":     "#ffffff",
	"tabText":         "#8a7f6c",
	"tabActiveText":   "#3f3a33",
	"tabPopulatedDot": "#e8927c",

	// dashboard widgets
	"dashboardCardBg":     "#ffffff",
	"dashboardCardBorder": "#ece5d8",
	"dashboardTitleText":  "#5d5142",
	"widgetText":          "#4a4437",
	"checklistDoneText":   "#b0a692",

	// detail pages and cards
	"detailBg":         "#faf6ec",
	"cardShadow":       "0 2px 10px rgba(63, 58, 51, 0.14)",
	"noteCardBg":       "#fffdf6",
	"noteCardText":     "#3f3a33",
	"linkCardBg":       "#ffffff",
	"linkCardText":     "#3f3a33",
	"linkCardHostText": "#a39a86",
	"placeholderBg":    "#f0ece1",
	"placeholderText":  "#8a7f6c",
	"linkBarBg":        "#f3ead9",
	"linkBarText":      "#5d5142",

	// action colors
	"primary": "#e8927c",
	"danger":  "#d9534f",
	"success": "#7aa874",

	// typography and layout
	"font":         `"Georgia", "Times New Roman", serif`,
	"baseFontSize": "16px",

	// computed at derivation; listed so the table stays total
	"seamShadow":      "0 0 24px 0 rgba(63, 58, 51, 0.18)",
	"backgroundSize":  "cover",
	"backgroundImage": "none",
}

// DefaultTokenNames returns the sorted list of every token name in the
// default table. Exposed for tests and the review tooling.
func DefaultTokenNames() []string {
	names := make([]string, 0, len(defaultTokens))
	for name := range defaultTokens {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}
