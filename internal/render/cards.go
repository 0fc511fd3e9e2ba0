package render

import (
	"bytes"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// md renders the markdown in note bodies and profile text.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// RenderCard maps one content item to a self-contained visual card. The
// dispatch is a priority list, first match wins; an item that resolves to
// nothing renders as a placeholder rather than being dropped.
func RenderCard(item diary.ContentItem) string {
	var inner string
	switch {
	case item.Kind == diary.KindNote:
		inner = noteCard(item)
	case item.Kind == diary.KindVideo && videoID(item) != "":
		inner = videoCard(videoID(item), item.Title)
	case item.Kind == diary.KindTweet && tweetID(item.URL) != "":
		inner = tweetCard(item)
	case item.Kind == diary.KindSticker:
		inner = stickerCard(item)
	case diary.ExportUnsupported[item.Kind]:
		inner = unsupportedCard(item)
	case item.Image != "":
		inner = imageCard(item)
	case item.URL != "":
		inner = linkCard(item)
	default:
		inner = placeholderCard(item)
	}
	return decorate(inner, item.Decoration)
}

// UsesTweetEmbeds reports whether any item will render a tweet embed, which
// is the only card kind that pulls in a third-party loader script.
func UsesTweetEmbeds(items []diary.ContentItem) bool {
	for _, item := range items {
		if item.Kind == diary.KindTweet && tweetID(item.URL) != "" {
			return true
		}
	}
	return false
}

func noteCard(item diary.ContentItem) string {
	var body bytes.Buffer
	if err := md.Convert([]byte(item.Text), &body); err != nil {
		// Unrenderable markdown degrades to escaped plain text.
		body.Reset()
		body.WriteString("<p>" + html.EscapeString(item.Text) + "</p>")
	}
	var b strings.Builder
	b.WriteString(`<div class="card note-card">`)
	if item.Title != "" {
		b.WriteString(`<h3>` + html.EscapeString(item.Title) + `</h3>`)
	}
	b.WriteString(`<div class="note-body">` + body.String() + `</div></div>`)
	return b.String()
}

func videoCard(id, title string) string {
	return fmt.Sprintf(
		`<div class="card video-card"><iframe src="https://www.youtube-nocookie.com/embed/%s" title="%s" loading="lazy" allowfullscreen></iframe></div>`,
		url.PathEscape(id), html.EscapeString(title))
}

func tweetCard(item diary.ContentItem) string {
	text := item.Description
	if text == "" {
		text = item.Title
	}
	return fmt.Sprintf(
		`<div class="card tweet-card"><blockquote class="twitter-tweet"><p>%s</p><a href="%s">%s</a></blockquote></div>`,
		html.EscapeString(text), html.EscapeString(item.URL), html.EscapeString(item.URL))
}

func stickerCard(item diary.ContentItem) string {
	if item.Image != "" {
		return fmt.Sprintf(`<div class="card sticker-card"><img src="%s" alt="%s"></div>`,
			html.EscapeString(item.Image), html.EscapeString(item.Title))
	}
	return `<div class="card sticker-card"><span class="sticker-glyph">` + html.EscapeString(item.Glyph) + `</span></div>`
}

func unsupportedCard(item diary.ContentItem) string {
	var b strings.Builder
	b.WriteString(`<div class="card placeholder-card">`)
	fmt.Fprintf(&b, `<span class="placeholder-kind">%s</span>`, html.EscapeString(string(item.Kind)))
	if item.Title != "" {
		b.WriteString(`<p>` + html.EscapeString(item.Title) + `</p>`)
	}
	if item.URL != "" {
		fmt.Fprintf(&b, `<a href="%s">%s</a>`, html.EscapeString(item.URL), html.EscapeString(item.URL))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func imageCard(item diary.ContentItem) string {
	var b strings.Builder
	b.WriteString(`<div class="card image-card">`)
	fmt.Fprintf(&b, `<img src="%s" alt="%s">`, html.EscapeString(item.Image), html.EscapeString(item.Title))
	if item.Title != "" {
		b.WriteString(`<figcaption>` + html.EscapeString(item.Title) + `</figcaption>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func linkCard(item diary.ContentItem) string {
	var b strings.Builder
	b.WriteString(`<a class="card link-card" href="` + html.EscapeString(item.URL) + `">`)
	if item.Thumbnail != "" {
		fmt.Fprintf(&b, `<img class="link-thumb" src="%s" alt="">`, html.EscapeString(item.Thumbnail))
	}
	b.WriteString(`<span class="link-title">` + html.EscapeString(titleOrURL(item)) + `</span>`)
	if item.Description != "" {
		b.WriteString(`<span class="link-desc">` + html.EscapeString(item.Description) + `</span>`)
	}
	if host := hostOf(item.URL); host != "" {
		b.WriteString(`<span class="link-host">` + html.EscapeString(host) + `</span>`)
	}
	b.WriteString(`</a>`)
	return b.String()
}

func placeholderCard(item diary.ContentItem) string {
	label := item.Title
	if label == "" {
		label = string(item.Kind)
	}
	return `<div class="card placeholder-card"><span class="placeholder-kind">` +
		html.EscapeString(label) + `</span></div>`
}

func titleOrURL(item diary.ContentItem) string {
	if item.Title != "" {
		return item.Title
	}
	return item.URL
}

func hostOf(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

var (
	watchRe = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{6,})`)
	shortRe = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{6,})`)
	embedRe = regexp.MustCompile(`/embed/([A-Za-z0-9_-]{6,})`)
	tweetRe = regexp.MustCompile(`/status(?:es)?/(\d+)`)
)

// videoID returns the stored embed id, or one parsed from the item URL.
// An empty result makes the dispatcher fall through to the next match.
func videoID(item diary.ContentItem) string {
	if item.EmbedID != "" {
		return item.EmbedID
	}
	for _, re := range []*regexp.Regexp{watchRe, shortRe, embedRe} {
		if m := re.FindStringSubmatch(item.URL); m != nil {
			return m[1]
		}
	}
	return ""
}

// tweetID extracts the numeric status id from a tweet URL.
func tweetID(ref string) string {
	if m := tweetRe.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return ""
}
