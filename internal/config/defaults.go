package config

// DefaultAllowlist names the embed hosts whose URLs are left remote
// instead of being pulled into the document.
var DefaultAllowlist = []string{
	"www.youtube-nocookie.com",
	"www.youtube.com",
	"platform.twitter.com",
	"open.spotify.com",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:         SourceDatabase,
		DatabasePath:   "scrapdiary.db",
		OutputPath:     "diary.html",
		AssetDir:       ".",
		Allowlist:      DefaultAllowlist,
		TimeoutSeconds: 15,
		MaxConcurrency: 8,
		Preview: PreviewConfig{
			Port:        4177,
			AllowAll:    false,
			OpenBrowser: true,
		},
	}
}
