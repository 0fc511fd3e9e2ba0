package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// snapshotCandidates are filenames the wizard looks for when suggesting
// a diary source.
var snapshotCandidates = []string{"diary.json", "diary.yaml", "diary.yml"}

// detectSource checks the current directory for an existing diary.
func detectSource() (SourceType, string) {
	if _, err := os.Stat("scrapdiary.db"); err == nil {
		return SourceDatabase, "scrapdiary.db"
	}
	for _, name := range snapshotCandidates {
		if _, err := os.Stat(name); err == nil {
			return SourceFile, name
		}
	}
	return SourceDatabase, "scrapdiary.db"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .scrapdiary.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to scrapdiary! Let's configure your diary export.")
	fmt.Println()

	detectedSource, detectedPath := detectSource()
	if _, err := os.Stat(detectedPath); err == nil {
		fmt.Printf("Found existing diary: %s\n\n", detectedPath)
	}

	// 1. Source selection.
	sourcePrompt := promptui.Select{
		Label:     "Where does your diary live",
		Items:     []string{"database — the scrapdiary editor's SQLite file", "file     — a JSON or YAML snapshot"},
		CursorPos: sourceIndex(detectedSource),
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}
	source := []SourceType{SourceDatabase, SourceFile}[sourceIdx]

	// 2. Source path.
	pathDefault := detectedPath
	if source != detectedSource {
		if source == SourceDatabase {
			pathDefault = "scrapdiary.db"
		} else {
			pathDefault = "diary.json"
		}
	}
	pathPrompt := promptui.Prompt{
		Label:   "Diary path",
		Default: pathDefault,
	}
	sourcePath, err := pathPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("diary path: %w", err)
	}

	// 3. Output path.
	outputPrompt := promptui.Prompt{
		Label:   "Output path for the exported document",
		Default: "diary.html",
	}
	outputPath, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output path: %w", err)
	}

	// 4. Asset directory.
	assetPrompt := promptui.Prompt{
		Label:   "Directory for local asset references",
		Default: ".",
	}
	assetDir, err := assetPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset dir: %w", err)
	}

	// 5. Extra allowlist hosts.
	allowPrompt := promptui.Prompt{
		Label:   "Extra hosts to leave remote (comma-separated, leave blank for defaults)",
		Default: "",
	}
	allowStr, err := allowPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("allowlist: %w", err)
	}
	allowlist := DefaultAllowlist
	if allowStr != "" {
		allowlist = append(allowlist, splitAndTrim(allowStr)...)
	}

	// 6. Preview port.
	portPrompt := promptui.Prompt{
		Label:   "Preview server port",
		Default: "4177",
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("preview port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	cfg := DefaultConfig()
	cfg.Source = source
	cfg.OutputPath = outputPath
	cfg.AssetDir = assetDir
	cfg.Allowlist = allowlist
	cfg.Preview.Port = port
	if source == SourceDatabase {
		cfg.DatabasePath = sourcePath
		cfg.SnapshotPath = ""
	} else {
		cfg.DatabasePath = ""
		cfg.SnapshotPath = sourcePath
	}

	configPath := ".scrapdiary.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// sourceIndex maps a SourceType to its wizard menu position.
func sourceIndex(s SourceType) int {
	if s == SourceFile {
		return 1
	}
	return 0
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
