package diary

import "testing"

func TestDateKeys(t *testing.T) {
	tests := []struct {
		key   string
		day   bool
		month bool
	}{
		{"2026-02-15", true, false},
		{"2026-02", false, true},
		{"2026-2-15", false, false},
		{"2026-13", false, false},
		{"2026-02-30", false, false},
		{"scraps", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := IsDayKey(tt.key); got != tt.day {
			t.Errorf("IsDayKey(%q) = %v, want %v", tt.key, got, tt.day)
		}
		if got := IsMonthKey(tt.key); got != tt.month {
			t.Errorf("IsMonthKey(%q) = %v, want %v", tt.key, got, tt.month)
		}
	}
}

func TestMonthOf(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2026-02-15", "2026-02"},
		{"2026-02", "2026-02"},
		{ScrapsBucket, ScrapsBucket},
	}
	for _, tt := range tests {
		if got := MonthOf(tt.in); got != tt.want {
			t.Errorf("MonthOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	m := &Model{Items: []ContentItem{
		{ID: "a", Kind: KindNote, Date: "2026-02-15"},
		{ID: "b", Kind: KindImage, Date: "2026-02"},
		{ID: "c", Kind: KindSticker, Date: ScrapsBucket},
	}}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	bad := &Model{Items: []ContentItem{{ID: "x", Date: "last tuesday"}}}
	if err := bad.Validate(); err == nil {
		t.Error("Validate should reject malformed date keys")
	}

	noID := &Model{Items: []ContentItem{{Date: "2026-02-15"}}}
	if err := noID.Validate(); err == nil {
		t.Error("Validate should reject items without ids")
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := &Model{
		Items: []ContentItem{{
			ID: "a", Kind: KindImage, Date: "2026-02-15",
			Position:   &Position{X: 10, Y: 20},
			Decoration: &Decoration{PresetID: "polaroid"},
		}},
		Widgets: []TextWidgetEntry{{Key: "2026-02/profile", Profile: "hi"}},
		Theme:   Theme{Palette: map[string]string{"pageBg": "#fff"}},
	}

	c := m.Clone()
	c.Items[0].Image = "data:image/png;base64,xx"
	c.Items[0].Position.X = 99
	c.Theme.Palette["pageBg"] = "#000"
	c.Widgets[0].Profile = "changed"

	if m.Items[0].Image != "" {
		t.Error("clone should not share item fields")
	}
	if m.Items[0].Position.X != 10 {
		t.Error("clone should not share position pointers")
	}
	if m.Theme.Palette["pageBg"] != "#fff" {
		t.Error("clone should not share the palette map")
	}
	if m.Widgets[0].Profile != "hi" {
		t.Error("clone should not share widget slices")
	}
}
