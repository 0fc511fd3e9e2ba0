package theme

// migration copies a deprecated palette key forward to its replacement.
// The chain is additive and non-destructive: the old value is copied through
// Transform only when the new key is absent from the user's theme, and the
// user's theme itself is never rewritten.
type migration struct {
	Old       string
	New       string
	Transform func(string) string
}

func identity(v string) string { return v }

// pixels appends a "px" suffix to bare legacy numbers.
func pixels(v string) string {
	if v == "" {
		return v
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return v
		}
	}
	return v + "px"
}

// migrations is the ordered chain, applied once per derivation. Order
// matters: a later rule may read a key produced by an earlier one.
var migrations = []migration{
	{Old: "calendarHeaderBannerBg", New: "dateHeaderBg", Transform: identity},
	{Old: "calendarHeaderBannerText", New: "dateHeaderText", Transform: identity},
	{Old: "paperColor", New: "pageBg", Transform: identity},
	{Old: "paperBorderColor", New: "pageBorder", Transform: identity},
	{Old: "accentColor", New: "primary", Transform: identity},
	{Old: "monthTabHighlight", New: "tabActiveBg", Transform: identity},
	{Old: "dayBadgeColor", New: "countBadgeBg", Transform: identity},
	{Old: "bodyFontSize", New: "baseFontSize", Transform: pixels},
}

// applyMigrations returns a copy of user with deprecated keys carried
// forward to their replacements.
func applyMigrations(user map[string]string) map[string]string {
	out := make(map[string]string, len(user))
	for k, v := range user {
		out[k] = v
	}
	for _, m := range migrations {
		old, ok := out[m.Old]
		if !ok {
			continue
		}
		if _, exists := out[m.New]; exists {
			continue
		}
		out[m.New] = m.Transform(old)
	}
	return out
}
