package config

// SourceType identifies where diary snapshots are read from.
type SourceType string

const (
	SourceDatabase SourceType = "database"
	SourceFile     SourceType = "file"
)

// Config is the top-level scrapdiary configuration, corresponding to .scrapdiary.yml.
type Config struct {
	Source         SourceType    `yaml:"source" koanf:"source"`
	DatabasePath   string        `yaml:"database_path" koanf:"database_path"`
	SnapshotPath   string        `yaml:"snapshot_path" koanf:"snapshot_path"`
	OutputPath     string        `yaml:"output_path" koanf:"output_path"`
	AssetDir       string        `yaml:"asset_dir" koanf:"asset_dir"`
	Allowlist      []string      `yaml:"allowlist" koanf:"allowlist"`
	TimeoutSeconds int           `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	MaxConcurrency int           `yaml:"max_concurrency" koanf:"max_concurrency"`
	Preview        PreviewConfig `yaml:"preview" koanf:"preview"`
}

// PreviewConfig holds preview-server settings.
type PreviewConfig struct {
	Port        int  `yaml:"port" koanf:"port"`
	AllowAll    bool `yaml:"allow_all" koanf:"allow_all"`
	OpenBrowser bool `yaml:"open_browser" koanf:"open_browser"`
}
