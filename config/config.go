package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config      *viper.Viper
	projectRoot string
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	viperConfig := viper.New()
	setDefaults(viperConfig)

	cfg := &Config{
		config: viperConfig,
	}

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
	} else {
		cfg.projectRoot = projectRoot
		if configPath, err := getConfigPath(projectRoot, env); err == nil {
			viperConfig.SetConfigFile(configPath)
			if err := viperConfig.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
			}
		}
	}
	viperConfig.AutomaticEnv()

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Vector Playground")
	v.SetDefault("log.level", "info")
	v.SetDefault("playground.rotate_degrees", 90)
	v.SetDefault("playground.rotate_interval_ms", 2000)
	v.SetDefault("playground.follow_rate", 0.15)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

// GetSceneFile returns the scene path. Relative paths are resolved against
// the project root when one was found.
func (c *Config) GetSceneFile() string {
	sceneFile := c.config.GetString("SCENE_FILE")
	if len(sceneFile) == 0 {
		sceneFile = c.config.GetString("scene.file")
	}

	if len(sceneFile) > 0 && !filepath.IsAbs(sceneFile) && len(c.projectRoot) > 0 {
		sceneFile = filepath.Join(c.projectRoot, sceneFile)
	}

	return sceneFile
}

// GetRotateDegrees is how far every sprite's velocity turns on each rotation tick.
func (c *Config) GetRotateDegrees() float64 {
	rotateDegrees := c.config.GetFloat64("ROTATE_DEGREES")
	if rotateDegrees == 0 {
		rotateDegrees = c.config.GetFloat64("playground.rotate_degrees")
	}

	return rotateDegrees
}

func (c *Config) GetRotateIntervalMs() int {
	rotateIntervalMs := c.config.GetInt("ROTATE_INTERVAL_MS")
	if rotateIntervalMs == 0 {
		rotateIntervalMs = c.config.GetInt("playground.rotate_interval_ms")
	}

	return rotateIntervalMs
}

// GetFollowRate is the interpolation factor used when dragging sprites toward the cursor.
func (c *Config) GetFollowRate() float64 {
	followRate := c.config.GetFloat64("FOLLOW_RATE")
	if followRate == 0 {
		followRate = c.config.GetFloat64("playground.follow_rate")
	}

	return followRate
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(projectRoot, env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
