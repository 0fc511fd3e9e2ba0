package render

import (
	"strings"
	"testing"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

func TestDecorateNilPassthrough(t *testing.T) {
	card := `<div class="card note-card"></div>`
	if got := decorate(card, nil); got != card {
		t.Errorf("nil decoration should pass through, got %q", got)
	}
	if got := decorate(card, &diary.Decoration{PresetID: "none"}); got != card {
		t.Errorf("preset none should pass through, got %q", got)
	}
}

func TestDecorateStylePreset(t *testing.T) {
	got := decorate("<div>x</div>", &diary.Decoration{PresetID: "polaroid"})
	if !strings.Contains(got, "deco-polaroid") {
		t.Errorf("got %q, want polaroid wrap", got)
	}
	if strings.Contains(got, "deco-inner") {
		t.Error("style presets are single-tier")
	}
}

func TestDecorateFramePresets(t *testing.T) {
	frame := decorate("<div>x</div>", &diary.Decoration{PresetID: "frame"})
	device := decorate("<div>x</div>", &diary.Decoration{PresetID: "device"})

	for _, got := range []string{frame, device} {
		if !strings.Contains(got, "deco-inner") {
			t.Errorf("frame-family wrap should be two-tier, got %q", got)
		}
	}
	if !strings.Contains(frame, "padding: 12px;") {
		t.Errorf("frame should use the narrow padding, got %q", frame)
	}
	if !strings.Contains(device, "padding: 28px;") {
		t.Errorf("device should use the wide padding, got %q", device)
	}
}

func TestDecorateUnknownPresetMinimalWrap(t *testing.T) {
	got := decorate("<div>x</div>", &diary.Decoration{PresetID: "glitter-explosion"})
	if !strings.Contains(got, "deco-plain") {
		t.Errorf("unknown preset should fall back to the minimal wrap, got %q", got)
	}
}

func TestLegacyPresetNormalization(t *testing.T) {
	tests := []struct{ old, class string }{
		{"polaroid-classic", "deco-polaroid"},
		{"washi", "deco-tape"},
		{"film", "deco-frame"},
		{"phone", "deco-device"},
	}
	for _, tt := range tests {
		got := decorate("<div>x</div>", &diary.Decoration{PresetID: tt.old})
		if !strings.Contains(got, tt.class) {
			t.Errorf("legacy preset %q should map to %s, got %q", tt.old, tt.class, got)
		}
	}
}

func TestDecorateOverrides(t *testing.T) {
	got := decorate("<div>x</div>", &diary.Decoration{PresetID: "polaroid", Color: "#abcdef", Width: 7, Radius: 9})
	for _, want := range []string{"--decoColor: #abcdef;", "border-width: 7px;", "border-radius: 9px;"} {
		if !strings.Contains(got, want) {
			t.Errorf("got %q, missing override %q", got, want)
		}
	}
}

func TestDecorateIsReferentiallyStable(t *testing.T) {
	d := &diary.Decoration{PresetID: "device", Color: "#111111"}
	a := decorate("<div>x</div>", d)
	b := decorate("<div>x</div>", d)
	if a != b {
		t.Error("identical descriptor must produce identical wrapper markup")
	}
}
