package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/amwatson/vrdev/internal/model"
)

// Built-in defaults, matching the VR template project the tool grew up
// with. A project without a settings file gets exactly these.
const (
	DefaultApplicationID  = "com.amwatson.vrtemplate"
	DefaultLaunchActivity = ".MainActivity"
	DefaultAppName        = "VrTemplate"
	DefaultAppTitle       = "VR Template"
	DefaultGradleWrapper  = "./gradlew"
	DefaultADBPath        = "adb"
)

// DefaultLogTags are the logcat tags streamed by the logcat command:
// the application's own tag plus the VR runtime's performance tag.
var DefaultLogTags = []string{"VrTemplate", "VrApi"}

// FileNames lists the supported settings files in lookup order. The
// first one present wins; the formats are never merged.
var FileNames = []string{"vrdev.jsonc", "vrdev.yaml"}

// Project holds the per-project settings.
type Project struct {
	// ApplicationID is the Android application id (Gradle's applicationId).
	ApplicationID string `json:"applicationId" yaml:"applicationId"`

	// LaunchActivity is the activity started by the start command. A
	// leading dot is Android shorthand for "relative to the application
	// id"; see Activity.
	LaunchActivity string `json:"launchActivity" yaml:"launchActivity"`

	// AppName is the project's CamelCase name, used as the old identity
	// when cloning the project under a new name.
	AppName string `json:"appName" yaml:"appName"`

	// AppTitle is the human-readable display title ("VR Template"),
	// rewritten alongside AppName during a clone.
	AppTitle string `json:"appTitle" yaml:"appTitle"`

	// LogTags are the logcat tags the log stream is restricted to.
	LogTags []string `json:"logTags" yaml:"logTags"`

	// Gradle is the Gradle wrapper path, relative to the project root.
	Gradle string `json:"gradle" yaml:"gradle"`

	// ADB is the adb binary path, resolved through PATH when bare.
	ADB string `json:"adb" yaml:"adb"`
}

// Default returns the built-in settings.
func Default() *Project {
	return &Project{
		ApplicationID:  DefaultApplicationID,
		LaunchActivity: DefaultLaunchActivity,
		AppName:        DefaultAppName,
		AppTitle:       DefaultAppTitle,
		LogTags:        append([]string(nil), DefaultLogTags...),
		Gradle:         DefaultGradleWrapper,
		ADB:            DefaultADBPath,
	}
}

// Load reads and validates the settings file at path. The extension picks
// the format: .jsonc/.json or .yaml/.yml. Fields absent from the file
// keep their built-in defaults.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Start from the defaults so partial files only override what they name.
	project := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc", ".json":
		// Strip comments and trailing commas first; the rest is plain JSON.
		if err := json.Unmarshal(jsonc.ToJSON(data), project); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, project); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %q (want .jsonc, .json, .yaml, or .yml)", filepath.Ext(path))
	}

	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return project, nil
}

// Find loads settings from the first of FileNames present in dir. When
// none exists the built-in defaults are returned; a file that exists but
// cannot be parsed is an error, never silently skipped.
func Find(dir string) (*Project, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to check %s: %w", path, err)
		}
		return Load(path)
	}
	return Default(), nil
}

// Activity returns the fully qualified launch activity. A LaunchActivity
// starting with "." resolves against the application id, matching the
// shorthand AndroidManifest.xml accepts.
func (p *Project) Activity() string {
	if strings.HasPrefix(p.LaunchActivity, ".") {
		return p.ApplicationID + p.LaunchActivity
	}
	return p.LaunchActivity
}

// Validate checks that the settings can actually drive the tool. It is
// called by Load, so a *Project obtained from this package is always
// valid.
func (p *Project) Validate() error {
	if err := model.ValidateApplicationID(p.ApplicationID); err != nil {
		return err
	}
	if p.LaunchActivity == "" {
		return fmt.Errorf("launchActivity must not be empty")
	}
	if p.AppName == "" {
		return fmt.Errorf("appName must not be empty")
	}
	if len(p.LogTags) == 0 {
		return fmt.Errorf("logTags must list at least one tag")
	}
	for _, tag := range p.LogTags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("logTags must not contain empty tags")
		}
	}
	if p.Gradle == "" {
		return fmt.Errorf("gradle wrapper path must not be empty")
	}
	if p.ADB == "" {
		return fmt.Errorf("adb path must not be empty")
	}
	return nil
}
