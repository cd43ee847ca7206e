package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables read by NewSettingsFromEnv.
const (
	EnvAppName    = "APP_NAME"
	EnvBasePath   = "GIT_BASE_PATH"
	EnvToken      = "GIT_TOKEN"
	EnvSSHKeyPath = "GIT_SSH_KEY_PATH"
)

const (
	defaultAppName  = "gitkeeper"
	defaultBasePath = "./repos"
	dotEnvFile      = ".env"
)

// Settings is the resolved configuration handed to the git executor.
type Settings struct {
	AppName      string             `yaml:"app_name"`
	BasePath     string             `yaml:"base_path"`
	Token        string             `yaml:"token"`        // Inline, ${ENV_VAR}, or file path
	SSHKeyPath   string             `yaml:"ssh_key_path"` // "~/" is expanded
	Repositories []RepositoryConfig `yaml:"repositories"`
}

// RepositoryConfig is one entry of the repositories kept in sync.
type RepositoryConfig struct {
	URL    string `yaml:"url"`
	Branch string `yaml:"branch"`
	Token  string `yaml:"token"` // Overrides Settings.Token for this entry
}

// SettingsOverrides carries values given on the command line. Empty fields
// leave the loaded settings untouched.
type SettingsOverrides struct {
	BasePath   string
	Token      string
	SSHKeyPath string
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// LoadDotEnv loads a .env file from the working directory when present.
// Variables already set in the process environment take precedence.
func LoadDotEnv() error {
	if _, err := os.Stat(dotEnvFile); err != nil {
		return nil //nolint:nilerr // a missing .env file is not an error
	}
	if err := godotenv.Load(dotEnvFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", dotEnvFile, err)
	}
	logger.Debugf("Loaded environment from %s", dotEnvFile)
	return nil
}

// NewSettingsFromEnv builds settings from environment variables and defaults.
func NewSettingsFromEnv() *Settings {
	settings := &Settings{
		AppName:    os.Getenv(EnvAppName),
		BasePath:   os.Getenv(EnvBasePath),
		Token:      os.Getenv(EnvToken),
		SSHKeyPath: os.Getenv(EnvSSHKeyPath),
	}
	settings.applyDefaults()
	return settings
}

// NewSettings reads the YAML file at path on top of the environment settings,
// expanding environment variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	settings := NewSettingsFromEnv()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fileSettings Settings
	if unmarshalErr := yaml.Unmarshal(data, &fileSettings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.merge(&fileSettings)
	settings.Token = resolveToken(settings.Token)
	for i := range settings.Repositories {
		settings.Repositories[i].Token = resolveToken(settings.Repositories[i].Token)
	}
	settings.applyDefaults()

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// configFileNames are tried in order inside every search directory.
var configFileNames = []string{ //nolint:gochecknoglobals // fixed lookup table
	".gitkeeper.yaml",
	".gitkeeper.yml",
	"gitkeeper.yaml",
	"gitkeeper.yml",
}

// FindConfigFile returns the first gitkeeper config file found in the working
// directory, ./.config, ./configs, the home directory or ~/.config.
func FindConfigFile() (string, error) {
	for _, dir := range configSearchDirs() {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", errors.New("no gitkeeper config file found")
}

func configSearchDirs() []string {
	dirs := []string{".", ".config", "configs"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home, filepath.Join(home, ".config"))
	}
	return dirs
}

// Apply overlays command-line values on the settings.
func (s *Settings) Apply(overrides SettingsOverrides) {
	if overrides.BasePath != "" {
		s.BasePath = overrides.BasePath
	}
	if overrides.Token != "" {
		s.Token = overrides.Token
	}
	if overrides.SSHKeyPath != "" {
		s.SSHKeyPath = expandHome(overrides.SSHKeyPath)
	}
}

// TokenFor returns the credential to use for a repository entry.
func (s *Settings) TokenFor(repo RepositoryConfig) string {
	if repo.Token != "" {
		return repo.Token
	}
	return s.Token
}

func (s *Settings) merge(other *Settings) {
	if other.AppName != "" {
		s.AppName = other.AppName
	}
	if other.BasePath != "" {
		s.BasePath = other.BasePath
	}
	if other.Token != "" {
		s.Token = other.Token
	}
	if other.SSHKeyPath != "" {
		s.SSHKeyPath = other.SSHKeyPath
	}
	if len(other.Repositories) > 0 {
		s.Repositories = other.Repositories
	}
}

func (s *Settings) applyDefaults() {
	if s.AppName == "" {
		s.AppName = defaultAppName
	}
	if s.BasePath == "" {
		s.BasePath = defaultBasePath
	}
	s.SSHKeyPath = expandHome(s.SSHKeyPath)
}

// resolveToken turns a configured token into its value: ${VAR} references
// are expanded, and a result naming a regular file is replaced by the file's
// trimmed content.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}
	token := expandEnvRefs(raw)
	if content, ok := readTokenFile(token); ok {
		return content
	}
	return token
}

func expandEnvRefs(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(ref string) string {
		name := ref[2 : len(ref)-1]
		value, set := os.LookupEnv(name)
		if !set || value == "" {
			logger.Warnf("Token references %q, which is not set", name)
		}
		return value
	})
}

func readTokenFile(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("Cannot read token file %q: %v", path, err)
		return "", false
	}
	logger.Debugf("Token loaded from %s", path)
	return strings.TrimSpace(string(data)), true
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	for i, repo := range settings.Repositories {
		if strings.TrimSpace(repo.URL) == "" {
			return fmt.Errorf("repositories[%d].url is required", i)
		}
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Warnf("Cannot expand %q: %v", path, err)
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
