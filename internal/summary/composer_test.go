package summary

import (
	"strings"
	"testing"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

func TestComposeGroupsChronologically(t *testing.T) {
	m := &diary.Model{Items: []diary.ContentItem{
		{ID: "c", Kind: diary.KindNote, Date: "2026-03-20"},
		{ID: "a", Kind: diary.KindImage, Date: "2026-01-05", Title: "Snow"},
		{ID: "b", Kind: diary.KindLink, Date: "2026-01-05", URL: "https://example.com"},
		{ID: "d", Kind: diary.KindSticker, Date: diary.ScrapsBucket},
	}}
	s := Compose(m)

	if len(s.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(s.Days))
	}
	if s.Days[0].Day != "2026-01-05" || s.Days[1].Day != "2026-03-20" {
		t.Errorf("days out of order: %s, %s", s.Days[0].Day, s.Days[1].Day)
	}
	if len(s.Days[0].Items) != 2 {
		t.Errorf("jan 5 items = %d, want 2", len(s.Days[0].Items))
	}
	if s.Days[0].Items[0].Type != "image" || s.Days[0].Items[0].Title != "Snow" {
		t.Errorf("item summary = %+v, want typed image entry", s.Days[0].Items[0])
	}
	if s.Days[0].Items[1].Link != "https://example.com" {
		t.Errorf("item link = %q", s.Days[0].Items[1].Link)
	}
}

func TestPromptSynthesis(t *testing.T) {
	items := []diary.ContentItem{
		{Kind: diary.KindImage, Title: "Morning walk"},
		{Kind: diary.KindImage},
		{Kind: diary.KindNote},
	}
	got := synthesizePrompt("2026-01-05", items)
	want := `On January 5, 2026 you kept 2 photos and a note, starting with "Morning walk".`
	if got != want {
		t.Errorf("prompt = %q, want %q", got, want)
	}
}

func TestPromptIsDeterministic(t *testing.T) {
	items := []diary.ContentItem{
		{Kind: diary.KindLink, Title: "A"},
		{Kind: diary.KindVideo},
		{Kind: diary.KindSticker},
	}
	if synthesizePrompt("2026-02-15", items) != synthesizePrompt("2026-02-15", items) {
		t.Error("prompt synthesis must be deterministic")
	}
	if !strings.Contains(synthesizePrompt("2026-02-15", items), "a link, a video and a sticker") {
		t.Errorf("prompt = %q, want natural kind list", synthesizePrompt("2026-02-15", items))
	}
}

func TestJSONEmbeddable(t *testing.T) {
	s := Compose(&diary.Model{Title: "Year of the Cat", Items: []diary.ContentItem{
		{ID: "a", Kind: diary.KindNote, Date: "2026-02-15", Text: "hi"},
	}})
	data, err := s.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if !strings.Contains(data, `"day": "2026-02-15"`) {
		t.Errorf("json missing day group: %s", data)
	}
	if !strings.Contains(data, `"Year of the Cat"`) {
		t.Error("json missing title")
	}
}

func TestComposeEmpty(t *testing.T) {
	s := Compose(&diary.Model{})
	if len(s.Days) != 0 {
		t.Errorf("days = %d, want 0", len(s.Days))
	}
	data, err := s.JSON()
	if err != nil || !strings.Contains(data, `"days": []`) {
		t.Errorf("empty summary should still encode, got %q, %v", data, err)
	}
}
