package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectFileName is the per-project config file looked up in the project root.
const ProjectFileName = ".solosec.yaml"

// projectFile mirrors the on-disk .solosec.yaml shape. "url" is accepted as
// an alias of "target_url".
type projectFile struct {
	TargetURL   string          `yaml:"target_url"`
	URL         string          `yaml:"url"`
	ExcludeDirs []string        `yaml:"exclude_dirs"`
	Tools       map[string]bool `yaml:"tools"`
}

// ResolvedProject is the effective per-project configuration after defaults
// and CLI precedence are applied.
type ResolvedProject struct {
	URL         string          `json:"url"`
	ExcludeDirs []string        `json:"exclude_dirs"`
	Tools       map[string]bool `json:"tools"`
}

// defaultTools lists the supported scanners; all are enabled by default.
func defaultTools() map[string]bool {
	return map[string]bool{
		"trivy":    true,
		"semgrep":  true,
		"gitleaks": true,
		"zap":      true,
	}
}

// ResolveProject reads the project config and applies resolution rules:
// a CLI URL overrides the file's target_url, unknown tool keys are ignored,
// and disabling zap clears the URL since nothing would consume it. A missing
// or unreadable config file resolves to plain defaults.
func ResolveProject(projectRoot, cliURL, configPath string) *ResolvedProject {
	if configPath == "" {
		configPath = filepath.Join(projectRoot, ProjectFileName)
	}

	raw := projectFile{}
	if _, err := os.Stat(configPath); err == nil {
		// best effort: a broken config behaves like no config
		_ = LoadYAML(configPath, &raw)
	}

	url := strings.TrimSpace(cliURL)
	if url == "" {
		url = strings.TrimSpace(raw.TargetURL)
	}
	if url == "" {
		url = strings.TrimSpace(raw.URL)
	}

	excludeDirs := make([]string, 0, len(raw.ExcludeDirs))
	for _, d := range raw.ExcludeDirs {
		if strings.TrimSpace(d) != "" {
			excludeDirs = append(excludeDirs, d)
		}
	}

	tools := defaultTools()
	for k, v := range raw.Tools {
		key := strings.ToLower(strings.TrimSpace(k))
		if _, known := tools[key]; known {
			tools[key] = v
		}
	}

	if !tools["zap"] {
		url = ""
	}

	return &ResolvedProject{URL: url, ExcludeDirs: excludeDirs, Tools: tools}
}
