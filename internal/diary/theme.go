package diary

// BackgroundFit controls how a page background image is sized.
type BackgroundFit string

const (
	FitContain BackgroundFit = "contain"
	FitCover   BackgroundFit = "cover"
	FitZoom    BackgroundFit = "zoom"
)

// SeamShadow describes the soft shadow drawn along the center seam of the
// two-page spread.
type SeamShadow struct {
	Color   string  `json:"color,omitempty" yaml:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Width   int     `json:"width,omitempty" yaml:"width,omitempty"`
}

// Theme is the user's visual customization: a palette of named surface
// colors and backgrounds, action colors, and secondary settings. Any or all
// fields may be absent; token derivation fills the gaps from defaults.
type Theme struct {
	Palette         map[string]string `json:"palette,omitempty" yaml:"palette,omitempty"`
	Actions         map[string]string `json:"actions,omitempty" yaml:"actions,omitempty"`
	BackgroundImage string            `json:"background_image,omitempty" yaml:"background_image,omitempty"`
	BackgroundFit   BackgroundFit     `json:"background_fit,omitempty" yaml:"background_fit,omitempty"`
	BackgroundZoom  int               `json:"background_zoom,omitempty" yaml:"background_zoom,omitempty"`
	Seam            SeamShadow        `json:"seam,omitempty" yaml:"seam,omitempty"`
	Compact         bool              `json:"compact,omitempty" yaml:"compact,omitempty"`
	Font            string            `json:"font,omitempty" yaml:"font,omitempty"`
}

// Clone returns a deep copy of the theme.
func (t Theme) Clone() Theme {
	out := t
	if t.Palette != nil {
		out.Palette = make(map[string]string, len(t.Palette))
		for k, v := range t.Palette {
			out.Palette[k] = v
		}
	}
	if t.Actions != nil {
		out.Actions = make(map[string]string, len(t.Actions))
		for k, v := range t.Actions {
			out.Actions[k] = v
		}
	}
	return out
}
