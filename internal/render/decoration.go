package render

import (
	"fmt"
	"strings"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// presetFamily groups decoration presets by how they wrap the card.
type presetFamily int

const (
	familyNone presetFamily = iota
	familyStyle
	familyFrame
)

// preset is the data behind one decoration treatment. All presets render
// through the same wrapper; the struct keeps wrapper output a stable
// function of its values.
type preset struct {
	family  presetFamily
	class   string
	padding int // frame family only; device-style presets pad wider
	color   string
	width   int
	radius  int
	shadow  bool
}

// presets is the current preset table.
var presets = map[string]preset{
	"none":      {family: familyNone},
	"polaroid":  {family: familyStyle, class: "deco-polaroid", color: "#ffffff", width: 2, radius: 2, shadow: true},
	"tape":      {family: familyStyle, class: "deco-tape", color: "#f6eec9", width: 0, radius: 0, shadow: false},
	"shadowbox": {family: familyStyle, class: "deco-shadowbox", color: "#3f3a33", width: 1, radius: 4, shadow: true},
	"frame":     {family: familyFrame, class: "deco-frame", padding: 12, color: "#d9c9a5", width: 3, radius: 6, shadow: true},
	"device":    {family: familyFrame, class: "deco-device", padding: 28, color: "#1b1b1f", width: 2, radius: 18, shadow: true},
}

// legacyPresets carries retired preset ids forward, in order. Anything not
// reachable through this table or presets normalizes to the minimal wrap.
var legacyPresets = []struct{ old, new string }{
	{"polaroid-classic", "polaroid"},
	{"polaroid-wide", "polaroid"},
	{"washi", "tape"},
	{"film", "frame"},
	{"wood-frame", "frame"},
	{"phone", "device"},
	{"browser", "device"},
}

// minimalWrap is the fallback for unknown preset ids.
var minimalWrap = preset{family: familyStyle, class: "deco-plain", width: 1, shadow: true}

// normalizePreset resolves a preset id to a defined preset. Unknown and
// legacy ids never fail: they map to a current preset or the minimal wrap.
func normalizePreset(id string) preset {
	if id == "" {
		return presets["none"]
	}
	id = strings.ToLower(strings.TrimSpace(id))
	for _, m := range legacyPresets {
		if id == m.old {
			id = m.new
			break
		}
	}
	if p, ok := presets[id]; ok {
		return p
	}
	return minimalWrap
}

// decorate wraps a rendered card in its decorative frame. A nil or "none"
// decoration passes the card through untouched.
func decorate(card string, d *diary.Decoration) string {
	if d == nil {
		return card
	}
	p := normalizePreset(d.PresetID)
	if p.family == familyNone {
		return card
	}

	// Per-item overrides ride on top of the preset's values.
	if d.Color != "" {
		p.color = d.Color
	}
	if d.Width > 0 {
		p.width = d.Width
	}
	if d.Radius > 0 {
		p.radius = d.Radius
	}
	if d.Shadow {
		p.shadow = true
	}

	var style strings.Builder
	if p.color != "" {
		fmt.Fprintf(&style, "--decoColor: %s;", p.color)
	}
	if p.width > 0 {
		fmt.Fprintf(&style, "border-width: %dpx;", p.width)
	}
	if p.radius > 0 {
		fmt.Fprintf(&style, "border-radius: %dpx;", p.radius)
	}
	if p.shadow {
		style.WriteString("box-shadow: var(--cardShadow);")
	}

	if p.family == familyFrame {
		// Two-tier wrap: outer frame surface plus an offset inner layer.
		return fmt.Sprintf(
			`<div class="deco %s" style="padding: %dpx;%s"><div class="deco-inner">%s</div></div>`,
			p.class, p.padding, style.String(), card)
	}
	return fmt.Sprintf(`<div class="deco %s" style="%s">%s</div>`, p.class, style.String(), card)
}
