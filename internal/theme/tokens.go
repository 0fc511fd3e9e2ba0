// Package theme flattens a possibly partial or legacy diary theme into the
// complete token table the renderer consumes.
package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// Tokens is the fully derived flat token table. Every name from the default
// table is present with a non-empty value.
type Tokens map[string]string

// Derive merges the user's theme over the default table: defaults, then
// user palette and action overrides (with the legacy-key migration chain
// applied first), then the computed tokens. The input theme is never
// mutated.
func Derive(t diary.Theme) Tokens {
	out := make(Tokens, len(defaultTokens))
	for k, v := range defaultTokens {
		out[k] = v
	}

	user := applyMigrations(t.Palette)
	for k, v := range user {
		if _, known := out[k]; known && v != "" {
			out[k] = v
		}
	}
	for k, v := range t.Actions {
		if _, known := out[k]; known && v != "" {
			out[k] = v
		}
	}

	out["seamShadow"] = seamShadowValue(t.Seam, out["pageText"])
	out["backgroundSize"] = backgroundSizeValue(t.BackgroundFit, t.BackgroundZoom)
	if t.BackgroundImage != "" {
		out["backgroundImage"] = fmt.Sprintf("url(%q)", t.BackgroundImage)
	}
	if t.Font != "" {
		out["font"] = t.Font
	}
	if t.Compact {
		out["baseFontSize"] = "14px"
	}
	return out
}

// CSS renders the consolidated token block. Names are emitted sorted so the
// block is byte-stable across derivations; exactly one of these blocks may
// appear in an artifact.
func (tk Tokens) CSS() string {
	names := make([]string, 0, len(tk))
	for name := range tk {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  --%s: %s;\n", name, tk[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// seamShadowValue combines the seam descriptor into one box-shadow value.
// Opacity clamps to [0,1] and width to [0,40] pixels; a zero-value
// descriptor keeps the defaults.
func seamShadowValue(s diary.SeamShadow, fallbackColor string) string {
	color := s.Color
	if color == "" {
		color = fallbackColor
	}
	opacity := s.Opacity
	if opacity == 0 {
		opacity = 0.18
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	width := s.Width
	if width == 0 {
		width = 24
	}
	if width < 0 {
		width = 0
	}
	if width > 40 {
		width = 40
	}
	r, g, b := parseHexColor(color)
	return fmt.Sprintf("0 0 %dpx 0 rgba(%d, %d, %d, %s)", width, r, g, b,
		strconv.FormatFloat(opacity, 'g', -1, 64))
}

// backgroundSizeValue maps a fit mode and zoom percentage to one CSS
// background-size value. Zoom clamps to [50,200].
func backgroundSizeValue(fit diary.BackgroundFit, zoom int) string {
	switch fit {
	case diary.FitContain:
		return "contain"
	case diary.FitZoom:
		if zoom == 0 {
			zoom = 100
		}
		if zoom < 50 {
			zoom = 50
		}
		if zoom > 200 {
			zoom = 200
		}
		return strconv.Itoa(zoom) + "%"
	default:
		return "cover"
	}
}

// parseHexColor reads #rgb or #rrggbb; anything unreadable falls back to a
// neutral dark gray rather than failing.
func parseHexColor(s string) (r, g, b int) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 63, 58, 51
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 63, 58, 51
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func sortStrings(s []string) { sort.Strings(s) }
