package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// ChecklistLine is one parsed line of a goal or bucket-list field.
type ChecklistLine struct {
	Text    string
	Task    bool
	Checked bool
}

// ParseChecklist reads the small checklist grammar: "- [ ] text" and
// "- [x] text" are tasks, anything else is a plain line. Unparseable lines
// never fail; they come back as unchecked plain text.
func ParseChecklist(s string) []ChecklistLine {
	var lines []ChecklistLine
	for _, raw := range strings.Split(s, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- [ ] "):
			lines = append(lines, ChecklistLine{Text: strings.TrimPrefix(line, "- [ ] "), Task: true})
		case strings.HasPrefix(line, "- [x] "), strings.HasPrefix(line, "- [X] "):
			lines = append(lines, ChecklistLine{Text: line[len("- [x] "):], Task: true, Checked: true})
		default:
			lines = append(lines, ChecklistLine{Text: line})
		}
	}
	return lines
}

// widgetFor merges every TextWidgetEntry addressed to the given key prefix
// (the bare month key or "month/<widget-kind>") into one view; non-empty
// fields win, later entries over earlier ones.
func widgetFor(widgets []diary.TextWidgetEntry, key string) diary.TextWidgetEntry {
	merged := diary.TextWidgetEntry{Key: key}
	for _, w := range widgets {
		if w.Key != key && !strings.HasPrefix(w.Key, key+"/") {
			continue
		}
		overlay(&merged.Profile, w.Profile)
		overlay(&merged.Goals, w.Goals)
		overlay(&merged.Bucket, w.Bucket)
		overlay(&merged.Countdown, w.Countdown)
		overlay(&merged.Trivia, w.Trivia)
		overlay(&merged.Music, w.Music)
		overlay(&merged.Background, w.Background)
		overlay(&merged.Cover, w.Cover)
	}
	return merged
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// renderDashboard builds the month dashboard page: profile, goal checklist,
// countdown, trivia, bucket list, and music display.
func renderDashboard(b *strings.Builder, w diary.TextWidgetEntry, monthLabel string) {
	b.WriteString(`<div class="page dashboard">`)
	fmt.Fprintf(b, `<h2 class="month-label">%s</h2>`, html.EscapeString(monthLabel))

	if w.Profile != "" {
		var body bytes.Buffer
		if err := md.Convert([]byte(w.Profile), &body); err != nil {
			body.Reset()
			body.WriteString("<p>" + html.EscapeString(w.Profile) + "</p>")
		}
		b.WriteString(`<section class="widget profile-widget">` + body.String() + `</section>`)
	}
	if w.Countdown != "" {
		b.WriteString(`<section class="widget countdown-widget"><h3>Countdown</h3><p>` +
			html.EscapeString(w.Countdown) + `</p></section>`)
	}
	if w.Goals != "" {
		renderChecklist(b, "goals-widget", "Goals", w.Goals)
	}
	if w.Bucket != "" {
		renderChecklist(b, "bucket-widget", "Bucket list", w.Bucket)
	}
	if w.Trivia != "" {
		b.WriteString(`<section class="widget trivia-widget"><h3>Did you know?</h3><p>` +
			html.EscapeString(w.Trivia) + `</p></section>`)
	}
	if w.Music != "" {
		b.WriteString(`<section class="widget music-widget"><h3>On repeat</h3><p>` +
			html.EscapeString(w.Music) + `</p></section>`)
	}
	b.WriteString(`</div>`)
}

func renderChecklist(b *strings.Builder, class, title, raw string) {
	fmt.Fprintf(b, `<section class="widget %s"><h3>%s</h3><ul class="checklist">`, class, html.EscapeString(title))
	for _, line := range ParseChecklist(raw) {
		switch {
		case line.Task && line.Checked:
			b.WriteString(`<li class="done"><span class="box">☑</span>` + html.EscapeString(line.Text) + `</li>`)
		case line.Task:
			b.WriteString(`<li><span class="box">☐</span>` + html.EscapeString(line.Text) + `</li>`)
		default:
			b.WriteString(`<li class="plain">` + html.EscapeString(line.Text) + `</li>`)
		}
	}
	b.WriteString(`</ul></section>`)
}
