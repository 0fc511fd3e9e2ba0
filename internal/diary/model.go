package diary

// Kind identifies what a content item holds and how it is rendered.
type Kind string

const (
	KindImage   Kind = "image"
	KindLink    Kind = "link"
	KindVideo   Kind = "video"
	KindTweet   Kind = "tweet"
	KindSticker Kind = "sticker"
	KindNote    Kind = "note"
	KindAudio   Kind = "audio"
	KindMap     Kind = "map"
	KindFile    Kind = "file"
)

// ExportUnsupported lists kinds that have no offline representation.
// They render as a placeholder naming the kind, keeping the original link.
var ExportUnsupported = map[Kind]bool{
	KindAudio: true,
	KindMap:   true,
	KindFile:  true,
}

// Position is where an item sits on its day detail page. Items without a
// position fall back to simple stacked placement.
type Position struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Scale    float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Z        int     `json:"z,omitempty" yaml:"z,omitempty"`
}

// Decoration describes the optional visual frame wrapped around an item card.
// Only PresetID is required; the rest override the preset's defaults.
type Decoration struct {
	PresetID string `json:"preset" yaml:"preset"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	Width    int    `json:"width,omitempty" yaml:"width,omitempty"`
	Radius   int    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Shadow   bool   `json:"shadow,omitempty" yaml:"shadow,omitempty"`
}

// ContentItem is one placed piece of diary content: a link, image, note,
// sticker, or embed. Date is a day key, a month key, or ScrapsBucket.
type ContentItem struct {
	ID          string      `json:"id" yaml:"id"`
	Kind        Kind        `json:"kind" yaml:"kind"`
	Date        string      `json:"date" yaml:"date"`
	Title       string      `json:"title,omitempty" yaml:"title,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string      `json:"url,omitempty" yaml:"url,omitempty"`
	Image       string      `json:"image,omitempty" yaml:"image,omitempty"`
	Thumbnail   string      `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	EmbedID     string      `json:"embed_id,omitempty" yaml:"embed_id,omitempty"`
	Glyph       string      `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	Text        string      `json:"text,omitempty" yaml:"text,omitempty"`
	Position    *Position   `json:"position,omitempty" yaml:"position,omitempty"`
	Decoration  *Decoration `json:"decoration,omitempty" yaml:"decoration,omitempty"`
}

// TextWidgetEntry is a keyed blob of widget text addressed by
// "<month>/<widget-kind>" for month dashboards or "<day>" for day pages.
type TextWidgetEntry struct {
	Key        string `json:"key" yaml:"key"`
	Profile    string `json:"profile,omitempty" yaml:"profile,omitempty"`
	Goals      string `json:"goals,omitempty" yaml:"goals,omitempty"`
	Bucket     string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Countdown  string `json:"countdown,omitempty" yaml:"countdown,omitempty"`
	Trivia     string `json:"trivia,omitempty" yaml:"trivia,omitempty"`
	Music      string `json:"music,omitempty" yaml:"music,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Cover      string `json:"cover,omitempty" yaml:"cover,omitempty"`
}

// LinkEntry is a curated link assigned to a month, rendered as a bar
// beneath that month's calendar.
type LinkEntry struct {
	Month string `json:"month" yaml:"month"`
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}
