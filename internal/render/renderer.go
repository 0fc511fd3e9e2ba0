// Package render turns a preprocessed diary snapshot and its derived style
// tokens into the final self-contained HTML document. Everything here is
// pure and synchronous; asset inlining has already happened by the time
// Render runs.
package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/scrapdiary/scrapdiary/internal/diary"
	"github.com/scrapdiary/scrapdiary/internal/theme"
)

// Fixed design dimensions of the two-page spread; the navigation script
// scales the composition to fit the viewport.
const (
	DesignWidth  = 1280
	DesignHeight = 800
)

// Options carries the values Render needs beyond the model itself. They are
// explicit parameters so the renderer stays a pure function of its inputs.
type Options struct {
	// SummaryJSON is the composed metadata summary, embedded verbatim.
	SummaryJSON string
	// Script is the navigation script, embedded verbatim.
	Script string
	// Today is the day key flagged as the current day on calendars.
	Today string
}

// Render builds the complete artifact document.
func Render(m *diary.Model, tokens theme.Tokens, opts Options) string {
	months := ActiveMonths(m)
	byDay := groupByDay(m.Items)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")

	title := m.Title
	if title == "" {
		title = "My Diary"
	}
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")

	// One consolidated token block followed by the structural layout; the
	// entire stylesheet is embedded, never linked.
	b.WriteString("<style>\n")
	b.WriteString(tokens.CSS())
	b.WriteString(layoutCSS)
	b.WriteString("</style>\n")

	// The only conditional external reference: the tweet embed loader.
	if UsesTweetEmbeds(m.Items) {
		b.WriteString(`<script async src="https://platform.twitter.com/widgets.js" charset="utf-8"></script>` + "\n")
	}
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, `<div id="book" data-design-width="%d" data-design-height="%d">`+"\n", DesignWidth, DesignHeight)

	if len(months) == 0 {
		b.WriteString(`<div class="empty-state"><h1>` + html.EscapeString(title) + `</h1>` +
			`<p>Nothing here yet. Add some scraps and export again.</p></div>` + "\n")
	} else {
		renderTabStrip(&b, months)
		b.WriteString(`<main class="pages">` + "\n")
		for i, month := range months {
			renderMonth(&b, m, month, byDay, opts.Today, i == 0)
		}
		renderScrapsPage(&b, m.Items)
		renderDetailPages(&b, byDay)
		b.WriteString("</main>\n")
	}
	b.WriteString("</div>\n")

	if opts.SummaryJSON != "" {
		b.WriteString(`<script type="application/json" id="scrapdiary-summary">` + "\n")
		b.WriteString(opts.SummaryJSON)
		b.WriteString("\n</script>\n")
	}
	if opts.Script != "" {
		b.WriteString("<script>\n" + opts.Script + "\n</script>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// ActiveMonths returns the sorted union of months that have at least one
// dated item or one month-scoped widget entry.
func ActiveMonths(m *diary.Model) []string {
	seen := map[string]bool{}
	for _, item := range m.Items {
		if diary.IsDayKey(item.Date) || diary.IsMonthKey(item.Date) {
			seen[diary.MonthOf(item.Date)] = true
		}
	}
	for _, w := range m.Widgets {
		key := strings.SplitN(w.Key, "/", 2)[0]
		if diary.IsMonthKey(key) {
			seen[key] = true
		}
	}
	months := make([]string, 0, len(seen))
	for month := range seen {
		months = append(months, month)
	}
	diary.SortKeys(months)
	return months
}

// DaysWithItems returns the sorted list of day keys that carry at least one
// item. The navigation script steps through exactly this list.
func DaysWithItems(m *diary.Model) []string {
	byDay := groupByDay(m.Items)
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	diary.SortKeys(days)
	return days
}

func groupByDay(items []diary.ContentItem) map[string][]diary.ContentItem {
	byDay := map[string][]diary.ContentItem{}
	for _, item := range items {
		if diary.IsDayKey(item.Date) {
			byDay[item.Date] = append(byDay[item.Date], item)
		}
	}
	return byDay
}

// renderTabStrip emits the fixed side strip: twelve month tabs for the
// diary year plus the all-scraps tab. Only populated months are selectable.
func renderTabStrip(b *strings.Builder, months []string) {
	populated := map[string]bool{}
	for _, m := range months {
		populated[m] = true
	}
	year := months[0][:4]

	b.WriteString(`<nav class="tab-strip">` + "\n")
	for i := 1; i <= 12; i++ {
		key := fmt.Sprintf("%s-%02d", year, i)
		label := time.Month(i).String()[:3]
		switch {
		case key == months[0]:
			fmt.Fprintf(b, `<button class="tab active populated" data-month="%s">%s<span class="dot"></span></button>`+"\n", key, label)
		case populated[key]:
			fmt.Fprintf(b, `<button class="tab populated" data-month="%s">%s<span class="dot"></span></button>`+"\n", key, label)
		default:
			fmt.Fprintf(b, `<button class="tab" disabled>%s</button>`+"\n", label)
		}
	}
	b.WriteString(`<button class="tab scraps-tab" data-month="scraps">All scraps</button>` + "\n")
	b.WriteString("</nav>\n")
}

// renderMonth emits one month view: the dashboard page and the calendar
// page side by side. Only the initially active month is visible.
func renderMonth(b *strings.Builder, m *diary.Model, month string, byDay map[string][]diary.ContentItem, today string, active bool) {
	hidden := " hidden"
	if active {
		hidden = ""
	}
	fmt.Fprintf(b, `<section class="month-view" id="month-%s"%s>`+"\n", month, hidden)

	// A widget background covers the whole spread for its month, the same
	// way the theme background covers the book.
	widget := widgetFor(m.Widgets, month)
	if widget.Background != "" {
		fmt.Fprintf(b, `<div class="spread" style="background-image: url('%s');">`, html.EscapeString(widget.Background))
	} else {
		b.WriteString(`<div class="spread">`)
	}

	first, _ := time.Parse("2006-01", month)
	renderDashboard(b, widget, first.Format("January 2006"))
	renderCalendar(b, month, byDay, m.Widgets, m.Links, today)

	b.WriteString(`</div>`)

	// Month-keyed items live on the month view under the spread.
	var monthItems []diary.ContentItem
	for _, item := range m.Items {
		if item.Date == month {
			monthItems = append(monthItems, item)
		}
	}
	if len(monthItems) > 0 {
		b.WriteString(`<div class="month-scraps">`)
		for _, item := range monthItems {
			b.WriteString(RenderCard(item))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString("</section>\n")
}

// renderScrapsPage emits the all-scraps view with globally bucketed items.
func renderScrapsPage(b *strings.Builder, items []diary.ContentItem) {
	b.WriteString(`<section class="month-view scraps-view" id="month-scraps" hidden>` + "\n")
	b.WriteString(`<div class="page scraps-page"><h2 class="month-label">All scraps</h2><div class="stacked">`)
	for _, item := range items {
		if item.Date == diary.ScrapsBucket {
			b.WriteString(RenderCard(item))
		}
	}
	b.WriteString(`</div></div></section>` + "\n")
}

// renderDetailPages emits one hidden detail page per day with items. Items
// sit at their stored coordinates; items without a position stack.
func renderDetailPages(b *strings.Builder, byDay map[string][]diary.ContentItem) {
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	diary.SortKeys(days)

	for _, day := range days {
		fmt.Fprintf(b, `<section class="detail-view" id="detail-%s" hidden>`+"\n", day)
		t, _ := diary.ParseDay(day)
		fmt.Fprintf(b, `<header class="detail-header"><button class="detail-prev">‹</button>`+
			`<h2>%s</h2><button class="detail-next">›</button><button class="detail-close">×</button></header>`+"\n",
			t.Format("Monday, January 2"))
		b.WriteString(`<div class="detail-canvas">`)
		for _, item := range byDay[day] {
			if item.Position != nil {
				b.WriteString(positionedCard(item))
			} else {
				b.WriteString(`<div class="stack-slot">` + RenderCard(item) + `</div>`)
			}
		}
		b.WriteString("</div></section>\n")
	}
}

func positionedCard(item diary.ContentItem) string {
	p := item.Position
	var transform string
	if p.Rotation != 0 || (p.Scale != 0 && p.Scale != 1) {
		scale := p.Scale
		if scale == 0 {
			scale = 1
		}
		transform = fmt.Sprintf("transform: rotate(%gdeg) scale(%g);", p.Rotation, scale)
	}
	return fmt.Sprintf(`<div class="placed" style="left: %gpx; top: %gpx; z-index: %d;%s">%s</div>`,
		p.X, p.Y, p.Z, transform, RenderCard(item))
}
