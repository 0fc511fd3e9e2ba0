// Package summary derives a structured, date-grouped description of a
// diary snapshot. It is embedded in the exported document for machine
// discoverability and feeds the review panel. Prompt text is synthesized
// deterministically from the snapshot; no external calls.
package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// ItemSummary is one item's typed entry within a day group.
type ItemSummary struct {
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// DaySummary groups one day's items with a synthesized prompt.
type DaySummary struct {
	Day    string        `json:"day"`
	Prompt string        `json:"prompt"`
	Items  []ItemSummary `json:"items"`
}

// Summary is the complete composed metadata: chronological day groups.
type Summary struct {
	Title string       `json:"title,omitempty"`
	Days  []DaySummary `json:"days"`
}

// Compose builds the summary for a snapshot. Day groups come back in
// chronological order; items keep their snapshot order within a day.
func Compose(m *diary.Model) Summary {
	byDay := map[string][]diary.ContentItem{}
	for _, item := range m.Items {
		if diary.IsDayKey(item.Date) {
			byDay[item.Date] = append(byDay[item.Date], item)
		}
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	diary.SortKeys(days)

	out := Summary{Title: m.Title, Days: make([]DaySummary, 0, len(days))}
	for _, day := range days {
		items := byDay[day]
		group := DaySummary{
			Day:    day,
			Prompt: synthesizePrompt(day, items),
			Items:  make([]ItemSummary, 0, len(items)),
		}
		for _, item := range items {
			group.Items = append(group.Items, ItemSummary{
				Type:        string(item.Kind),
				Title:       item.Title,
				Description: item.Description,
				Link:        item.URL,
			})
		}
		out.Days = append(out.Days, group)
	}
	return out
}

// JSON renders the summary as stable, indented JSON for embedding.
func (s Summary) JSON() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}
	return string(data), nil
}

// kindPhrases maps content kinds to the noun used in prompts.
var kindPhrases = map[diary.Kind]string{
	diary.KindImage:   "photo",
	diary.KindLink:    "link",
	diary.KindVideo:   "video",
	diary.KindTweet:   "post",
	diary.KindSticker: "sticker",
	diary.KindNote:    "note",
	diary.KindAudio:   "track",
	diary.KindMap:     "place",
	diary.KindFile:    "file",
}

// synthesizePrompt produces the natural-language prompt for one day from
// the kinds and titles present. Same inputs, same sentence.
func synthesizePrompt(day string, items []diary.ContentItem) string {
	t, _ := diary.ParseDay(day)
	date := t.Format("January 2, 2006")

	counts := map[diary.Kind]int{}
	order := []diary.Kind{}
	var firstTitle string
	for _, item := range items {
		if counts[item.Kind] == 0 {
			order = append(order, item.Kind)
		}
		counts[item.Kind]++
		if firstTitle == "" && item.Title != "" {
			firstTitle = item.Title
		}
	}

	parts := make([]string, 0, len(order))
	for _, kind := range order {
		noun := kindPhrases[kind]
		if noun == "" {
			noun = "scrap"
		}
		n := counts[kind]
		if n == 1 {
			parts = append(parts, "a "+noun)
		} else {
			parts = append(parts, fmt.Sprintf("%d %ss", n, noun))
		}
	}

	sentence := fmt.Sprintf("On %s you kept %s", date, joinNatural(parts))
	if firstTitle != "" {
		sentence += fmt.Sprintf(", starting with %q", firstTitle)
	}
	return sentence + "."
}

// joinNatural joins parts as "a, b and c".
func joinNatural(parts []string) string {
	switch len(parts) {
	case 0:
		return "nothing"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
