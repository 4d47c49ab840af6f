package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hourkeep/hourkeep-cli/internal/constants"
)

// Config is the top-level application configuration.
type Config struct {
	// SaveServiceURL is the base URL of the save-service (no trailing slash).
	SaveServiceURL string `yaml:"save_service_url"`

	// SubmitServiceURL is the base URL of the submit-service.
	SubmitServiceURL string `yaml:"submit_service_url"`

	// AuthServiceURL is the base URL of the auth-service.
	AuthServiceURL string `yaml:"auth_service_url"`

	// EmployeeID identifies the user on dispatched records. Overridden by
	// the signed-in session when one exists.
	EmployeeID string `yaml:"employee_id"`

	// ProjectID and TaskID are stamped on every dispatched record.
	ProjectID string `yaml:"project_id"`
	TaskID    string `yaml:"task_id"`

	// Debug enables verbose logging to stderr in addition to the log file.
	Debug bool `yaml:"debug"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		SaveServiceURL:   "http://localhost:3000",
		SubmitServiceURL: "http://localhost:3001",
		AuthServiceURL:   "http://localhost:3002",
		EmployeeID:       constants.DefaultEmployeeID,
		ProjectID:        constants.DefaultProjectID,
		TaskID:           constants.DefaultTaskID,
	}
}

// Normalize fills in missing values with defaults so that partially-filled
// configs from older versions still behave correctly.
func (c *Config) Normalize() {
	def := Default()
	if c.SaveServiceURL == "" {
		c.SaveServiceURL = def.SaveServiceURL
	}
	if c.SubmitServiceURL == "" {
		c.SubmitServiceURL = def.SubmitServiceURL
	}
	if c.AuthServiceURL == "" {
		c.AuthServiceURL = def.AuthServiceURL
	}
	if c.EmployeeID == "" {
		c.EmployeeID = def.EmployeeID
	}
	if c.ProjectID == "" {
		c.ProjectID = def.ProjectID
	}
	if c.TaskID == "" {
		c.TaskID = def.TaskID
	}
	c.SaveServiceURL = strings.TrimRight(c.SaveServiceURL, "/")
	c.SubmitServiceURL = strings.TrimRight(c.SubmitServiceURL, "/")
	c.AuthServiceURL = strings.TrimRight(c.AuthServiceURL, "/")
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (0600) and
// returned, so a first run works without any setup.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path, creating the
// parent directory if needed. The write is atomic (temp file + rename) and
// the final file is 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	path = ExpandPath(path)
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".hourkeep-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Dir returns the directory holding the given config path, with ~ expanded.
func Dir(path string) string {
	return filepath.Dir(ExpandPath(path))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
