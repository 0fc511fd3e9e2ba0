package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// renderCalendar builds the fixed 6x7 month grid seeded from the month's
// first weekday (Sunday start). Cells outside the month render empty; each
// in-month cell shows the day number, an optional cover image from the day
// widget, and an item-count badge when the day has items.
func renderCalendar(b *strings.Builder, month string, byDay map[string][]diary.ContentItem, widgets []diary.TextWidgetEntry, links []diary.LinkEntry, today string) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return
	}
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	b.WriteString(`<div class="page calendar">`)
	b.WriteString(`<div class="date-header">` + html.EscapeString(first.Format("January 2006")) + `</div>`)
	b.WriteString(`<div class="calendar-grid">`)
	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(`<div class="weekday">` + wd + `</div>`)
	}
	for cell := 0; cell < 42; cell++ {
		day := cell - offset + 1
		if day < 1 || day > daysInMonth {
			b.WriteString(`<div class="cell empty"></div>`)
			continue
		}
		dayKey := fmt.Sprintf("%s-%02d", month, day)
		items := byDay[dayKey]

		classes := "cell"
		if dayKey == today {
			classes += " today"
		}
		if len(items) > 0 {
			classes += " has-items"
			fmt.Fprintf(b, `<div class="%s" data-day="%s">`, classes, dayKey)
		} else {
			fmt.Fprintf(b, `<div class="%s">`, classes)
		}
		fmt.Fprintf(b, `<span class="day-num">%d</span>`, day)
		if cover := widgetFor(widgets, dayKey).Cover; cover != "" {
			fmt.Fprintf(b, `<img class="day-cover" src=%q alt="">`, cover)
		}
		if len(items) > 0 {
			fmt.Fprintf(b, `<span class="count-badge">%d</span>`, len(items))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	renderLinkBar(b, month, links)
	b.WriteString(`</div>`)
}

// renderLinkBar lists the month's curated links beneath the calendar.
func renderLinkBar(b *strings.Builder, month string, links []diary.LinkEntry) {
	var mine []diary.LinkEntry
	for _, l := range links {
		if l.Month == month {
			mine = append(mine, l)
		}
	}
	if len(mine) == 0 {
		return
	}
	b.WriteString(`<div class="link-bar">`)
	for _, l := range mine {
		title := l.Title
		if title == "" {
			title = l.URL
		}
		fmt.Fprintf(b, `<a href=%q>%s</a>`, l.URL, html.EscapeString(title))
	}
	b.WriteString(`</div>`)
}
