// Package settings manages persistent user settings for the bdrmapit CLI:
// defaults a repeated `bdrmapit run` can fall back on instead of
// respecifying --config/--graph every time.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences.
type Settings struct {
	// DefaultConfigPath is used when --config is not specified.
	DefaultConfigPath string `json:"default_config_path,omitempty"`

	// DefaultGraphPath is used when --graph is not specified.
	DefaultGraphPath string `json:"default_graph_path,omitempty"`

	// OutputDir is the directory the audit log is written to when
	// AuditLogPath is unset. It does not change where reports are written.
	OutputDir string `json:"output_dir,omitempty"`

	// LastGraphPath records the most recently run graph snapshot, surfaced
	// by `bdrmapit settings show` as a convenience.
	LastGraphPath string `json:"last_graph_path,omitempty"`

	// AuditLogPath overrides the default audit log path.
	AuditLogPath string `json:"audit_log_path,omitempty"`

	// AuditMaxSizeMB is the max audit log size in MB before rotation (default: 10).
	AuditMaxSizeMB int `json:"audit_max_size_mb,omitempty"`

	// AuditMaxBackups is the max number of rotated audit log files (default: 10).
	AuditMaxBackups int `json:"audit_max_backups,omitempty"`
}

const (
	// DefaultAuditMaxSizeMB is the default maximum audit log size in megabytes.
	DefaultAuditMaxSizeMB = 10

	// DefaultAuditMaxBackups is the default maximum number of rotated audit log files.
	DefaultAuditMaxBackups = 10
)

// DefaultSettingsPath returns the default path for the settings file.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bdrmapit_settings.json"
	}
	return filepath.Join(home, ".bdrmapit", "settings.json")
}

// Load reads settings from the default location.
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path.
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location.
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path.
func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetConfigPath sets the default config path.
func (s *Settings) SetConfigPath(path string) {
	s.DefaultConfigPath = path
}

// SetGraphPath sets the default graph snapshot path.
func (s *Settings) SetGraphPath(path string) {
	s.DefaultGraphPath = path
}

// SetOutputDir sets OutputDir, the audit log directory.
func (s *Settings) SetOutputDir(dir string) {
	s.OutputDir = dir
}

// GetAuditLogPath returns the audit log path with a fallback default. The
// default depends on outputDir: if non-empty, uses outputDir/audit.log;
// otherwise uses /var/log/bdrmapit/audit.log.
func (s *Settings) GetAuditLogPath(outputDir string) string {
	if s.AuditLogPath != "" {
		return s.AuditLogPath
	}
	if outputDir != "" {
		return filepath.Join(outputDir, "audit.log")
	}
	return "/var/log/bdrmapit/audit.log"
}

// GetAuditMaxSizeMB returns the audit max size in MB with a default of 10.
func (s *Settings) GetAuditMaxSizeMB() int {
	if s.AuditMaxSizeMB > 0 {
		return s.AuditMaxSizeMB
	}
	return DefaultAuditMaxSizeMB
}

// GetAuditMaxBackups returns the audit max backups with a default of 10.
func (s *Settings) GetAuditMaxBackups() int {
	if s.AuditMaxBackups > 0 {
		return s.AuditMaxBackups
	}
	return DefaultAuditMaxBackups
}

// Clear resets all settings to defaults.
func (s *Settings) Clear() {
	*s = Settings{}
}
