// Package config loads game settings from pong.yaml, the environment and
// the command line, and reads the winning score from the player.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/plus3/pong/logger"
	"github.com/plus3/pong/pong"
	"gopkg.in/yaml.v3"
)

// Config is the full set of settings for one run.
type Config struct {
	Title    string              `yaml:"title"`
	Scale    float64             `yaml:"scale"`
	Geometry pong.Geometry       `yaml:"geometry"`
	Tuning   pong.Tuning         `yaml:"tuning"`
	MaxScore int                 `yaml:"max_score"` // 0 prompts on startup
	Seed     uint64              `yaml:"seed"`      // 0 picks a random seed
	Debug    bool                `yaml:"debug"`
	Log      logger.LoggerConfig `yaml:"log"`
}

func Default() Config {
	return Config{
		Title:    "Pong",
		Scale:    1,
		Geometry: pong.DefaultGeometry(),
		Tuning:   pong.DefaultTuning(),
		Log:      logger.DevelopmentConfig(),
	}
}

// LoadEnv loads variables from the given .env files, or ./.env when none
// are named. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads path over the defaults. A missing file yields the defaults.
// PONG_MAX_SCORE and PONG_SEED override the file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("PONG_MAX_SCORE"); v != "" {
		cfg.MaxScore = ParseMaxScore(v)
	}
	if v := os.Getenv("PONG_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("PONG_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}

// UnmarshalYAML decodes max_score leniently. An empty value or 0 leaves the
// startup prompt on; anything else that is not a positive integer becomes
// the default score.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config

	rest := *value
	var maxScore *yaml.Node
	if value.Kind == yaml.MappingNode {
		rest.Content = make([]*yaml.Node, 0, len(value.Content))
		for i := 0; i+1 < len(value.Content); i += 2 {
			if value.Content[i].Value == "max_score" {
				maxScore = value.Content[i+1]
				continue
			}
			rest.Content = append(rest.Content, value.Content[i], value.Content[i+1])
		}
	}

	if err := rest.Decode((*plain)(c)); err != nil {
		return err
	}
	if maxScore != nil {
		c.MaxScore = configuredMaxScore(maxScore)
	}
	return nil
}

func configuredMaxScore(n *yaml.Node) int {
	if n.Kind != yaml.ScalarNode {
		return pong.DefaultMaxScore
	}
	v := strings.TrimSpace(n.Value)
	if n.Tag == "!!null" || v == "" || v == "0" {
		return 0
	}
	return ParseMaxScore(v)
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	g := c.Geometry
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("geometry: surface must be positive, got %gx%g", g.Width, g.Height)
	case g.PaddleWidth <= 0 || g.PaddleHeight <= 0 || g.BallRadius <= 0:
		return errors.New("geometry: paddle and ball sizes must be positive")
	case g.PaddleHeight > g.Height:
		return fmt.Errorf("geometry: paddle height %g exceeds surface height %g", g.PaddleHeight, g.Height)
	case 2*(g.PaddleMargin+g.PaddleWidth) >= g.Width:
		return errors.New("geometry: paddles overlap")
	case c.Tuning.Speed <= 0:
		return errors.New("tuning: speed must be positive")
	case c.Scale <= 0:
		return errors.New("scale must be positive")
	}
	return nil
}

// ParseMaxScore reads a winning score, falling back to the default for
// anything that is not a positive integer.
func ParseMaxScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return pong.DefaultMaxScore
	}
	return n
}

// PromptMaxScore asks for the winning score on w and reads one line from r.
func PromptMaxScore(r io.Reader, w io.Writer) int {
	fmt.Fprintf(w, "Enter the maximum score to win the game [%d]: ", pong.DefaultMaxScore)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return pong.DefaultMaxScore
	}
	return ParseMaxScore(line)
}
