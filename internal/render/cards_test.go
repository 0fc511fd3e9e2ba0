package render

import (
	"strings"
	"testing"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

func TestVideoIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=x&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://example.com/video.mp4", ""},
	}
	for _, tt := range tests {
		got := videoID(diary.ContentItem{URL: tt.url})
		if got != tt.want {
			t.Errorf("videoID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestVideoIDPrefersStoredEmbedID(t *testing.T) {
	item := diary.ContentItem{EmbedID: "stored123", URL: "https://youtu.be/other456789"}
	if got := videoID(item); got != "stored123" {
		t.Errorf("videoID = %q, want stored id", got)
	}
}

func TestVideoCardResolvesIDFromURL(t *testing.T) {
	// No pre-stored id; the card must resolve the identifier from the URL.
	item := diary.ContentItem{
		ID: "v", Kind: diary.KindVideo, Date: "2026-03-01",
		URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
	card := RenderCard(item)
	if !strings.Contains(card, "/embed/dQw4w9WgXcQ") {
		t.Errorf("card = %q, want embedded player keyed by parsed id", card)
	}
}

func TestVideoWithoutIDFallsThrough(t *testing.T) {
	item := diary.ContentItem{
		ID: "v", Kind: diary.KindVideo, Date: "2026-03-01",
		URL: "https://example.com/clip", Title: "A clip",
	}
	card := RenderCard(item)
	if strings.Contains(card, "iframe") {
		t.Error("unresolvable video should not render a player")
	}
	if !strings.Contains(card, "link-card") {
		t.Errorf("card = %q, want fallthrough to link card", card)
	}
}

func TestTweetCard(t *testing.T) {
	item := diary.ContentItem{
		ID: "t", Kind: diary.KindTweet, Date: "2026-03-01",
		URL: "https://twitter.com/someone/status/1234567890",
	}
	card := RenderCard(item)
	if !strings.Contains(card, "twitter-tweet") {
		t.Errorf("card = %q, want tweet embed", card)
	}

	noID := diary.ContentItem{ID: "t2", Kind: diary.KindTweet, Date: "2026-03-01", URL: "https://twitter.com/someone"}
	if strings.Contains(RenderCard(noID), "twitter-tweet") {
		t.Error("tweet without a status id should fall through")
	}
}

func TestNoteCardRendersMarkdown(t *testing.T) {
	item := diary.ContentItem{ID: "n", Kind: diary.KindNote, Date: "2026-03-01", Text: "hello **bold** world"}
	card := RenderCard(item)
	if !strings.Contains(card, "<strong>bold</strong>") {
		t.Errorf("card = %q, want rendered markdown", card)
	}
}

func TestStickerCard(t *testing.T) {
	glyph := diary.ContentItem{ID: "s", Kind: diary.KindSticker, Date: "2026-03-01", Glyph: "★"}
	if !strings.Contains(RenderCard(glyph), "sticker-glyph") {
		t.Error("glyph sticker should render a glyph span")
	}
	img := diary.ContentItem{ID: "s2", Kind: diary.KindSticker, Date: "2026-03-01", Image: "data:image/png;base64,x"}
	if !strings.Contains(RenderCard(img), "<img") {
		t.Error("image sticker should render an img")
	}
}

func TestUnsupportedKindPlaceholder(t *testing.T) {
	item := diary.ContentItem{
		ID: "a", Kind: diary.KindAudio, Date: "2026-03-01",
		URL: "https://example.com/song", Image: "x.png",
	}
	card := RenderCard(item)
	if !strings.Contains(card, "placeholder-card") {
		t.Errorf("card = %q, want placeholder", card)
	}
	if !strings.Contains(card, "audio") {
		t.Error("placeholder should name the content kind")
	}
	if !strings.Contains(card, "https://example.com/song") {
		t.Error("placeholder should keep the original link")
	}
}

func TestLinkCard(t *testing.T) {
	item := diary.ContentItem{
		ID: "l", Kind: diary.KindLink, Date: "2026-03-01",
		URL: "https://www.example.com/post", Title: "A post",
		Description: "About things", Thumbnail: "data:image/png;base64,x",
	}
	card := RenderCard(item)
	for _, want := range []string{"A post", "About things", "example.com", "link-thumb"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q", want)
		}
	}
}

func TestEmptyItemRendersPlaceholder(t *testing.T) {
	item := diary.ContentItem{ID: "x", Kind: diary.KindLink, Date: "2026-03-01"}
	if !strings.Contains(RenderCard(item), "placeholder-card") {
		t.Error("item with no content should render a placeholder, not be dropped")
	}
}

func TestEscaping(t *testing.T) {
	item := diary.ContentItem{ID: "n", Kind: diary.KindNote, Date: "2026-03-01", Title: `<script>alert(1)</script>`}
	card := RenderCard(item)
	if strings.Contains(card, "<script>") {
		t.Error("titles must be HTML-escaped")
	}
}

func TestAttributeEscaping(t *testing.T) {
	// A quote inside a stored value must not end the attribute early;
	// HTML gives backslash no meaning, so escaping must be HTML entities.
	url := `https://example.com/a"onmouseover="alert(1)`
	tests := []diary.ContentItem{
		{ID: "l", Kind: diary.KindLink, Date: "2026-03-01", URL: url, Thumbnail: url},
		{ID: "i", Kind: diary.KindImage, Date: "2026-03-01", Image: url},
		{ID: "s", Kind: diary.KindSticker, Date: "2026-03-01", Image: url},
		{ID: "t", Kind: diary.KindTweet, Date: "2026-03-01", URL: `https://x.com/u/status/123"onmouseover="alert(1)`},
		{ID: "u", Kind: diary.KindAudio, Date: "2026-03-01", URL: url},
	}
	for _, item := range tests {
		card := RenderCard(item)
		if strings.Contains(card, `"onmouseover=`) {
			t.Errorf("%s card leaks a raw quote into an attribute: %s", item.Kind, card)
		}
		if !strings.Contains(card, "&#34;") && !strings.Contains(card, "&quot;") {
			t.Errorf("%s card should entity-escape the quote: %s", item.Kind, card)
		}
	}
}

func TestUsesTweetEmbeds(t *testing.T) {
	items := []diary.ContentItem{
		{ID: "a", Kind: diary.KindNote, Date: "2026-03-01"},
		{ID: "b", Kind: diary.KindTweet, Date: "2026-03-01", URL: "https://twitter.com/x/status/42"},
	}
	if !UsesTweetEmbeds(items) {
		t.Error("should detect tweet embeds")
	}
	if UsesTweetEmbeds(items[:1]) {
		t.Error("should not detect embeds without tweet items")
	}
}
