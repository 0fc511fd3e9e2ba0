package diary

import "fmt"

// Model is the exportable snapshot of one diary. It is assembled by the
// editor and handed to the export pipeline as an immutable value; the
// pipeline only ever copies it.
type Model struct {
	Title   string            `json:"title,omitempty" yaml:"title,omitempty"`
	Items   []ContentItem     `json:"items" yaml:"items"`
	Widgets []TextWidgetEntry `json:"widgets,omitempty" yaml:"widgets,omitempty"`
	Links   []LinkEntry       `json:"links,omitempty" yaml:"links,omitempty"`
	Theme   Theme             `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// Validate checks structural invariants of the snapshot. Rendering never
// depends on validation having run; it is a load-time courtesy check.
func (m *Model) Validate() error {
	for i, item := range m.Items {
		if item.ID == "" {
			return fmt.Errorf("item %d: missing id", i)
		}
		if !IsDayKey(item.Date) && !IsMonthKey(item.Date) && item.Date != ScrapsBucket {
			return fmt.Errorf("item %s: invalid date key %q", item.ID, item.Date)
		}
	}
	for i, l := range m.Links {
		if !IsMonthKey(l.Month) {
			return fmt.Errorf("link %d: invalid month key %q", i, l.Month)
		}
	}
	return nil
}

// Clone returns a deep copy of the snapshot. The asset inliner writes into
// the copy so the caller's model is never mutated.
func (m *Model) Clone() *Model {
	out := &Model{
		Title: m.Title,
		Theme: m.Theme.Clone(),
	}
	if m.Items != nil {
		out.Items = make([]ContentItem, len(m.Items))
		for i, item := range m.Items {
			out.Items[i] = item
			if item.Position != nil {
				p := *item.Position
				out.Items[i].Position = &p
			}
			if item.Decoration != nil {
				d := *item.Decoration
				out.Items[i].Decoration = &d
			}
		}
	}
	if m.Widgets != nil {
		out.Widgets = append([]TextWidgetEntry(nil), m.Widgets...)
	}
	if m.Links != nil {
		out.Links = append([]LinkEntry(nil), m.Links...)
	}
	return out
}
