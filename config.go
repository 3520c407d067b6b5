package botmod

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid engine configuration")

// Names of the built-in rules. Rule weight configuration is keyed by these.
const (
	RulePostFrequency      = "post-frequency"
	RuleContentSimilarity  = "content-similarity"
	RuleNetworkInteraction = "network-interaction"
	RuleAccountAge         = "account-age"
)

// Engine configuration: classification threshold, optional per-rule weights, and the cutoff constants behind each rule's scoring curve. The curve shapes are deliberately configuration, not hard-coded.
type Config struct {
	// aggregate score at or above which an account is classified as a bot
	Threshold float64 `yaml:"threshold"`
	// optional per-rule weight overrides, keyed by rule name. Rules without an entry weigh 1.0. Weights are normalized to sum to 1.0 before blending, so only relative magnitude matters. Keys which don't name a configured rule are rejected at engine construction.
	RuleWeights map[string]float64 `yaml:"rule_weights"`

	// posts-per-day rate at which the post frequency sub-score saturates at 1.0
	PostsPerDaySaturation float64 `yaml:"posts_per_day_saturation"`
	// follows/followers ratio at which the network interaction sub-score saturates at 1.0. Must be greater than 1.
	NetworkRatioSaturation float64 `yaml:"network_ratio_saturation"`
	// account age in days beyond which the account age sub-score is 0.0
	AgeCutoffDays float64 `yaml:"age_cutoff_days"`
	// minimum number of posts before the content similarity rule has enough evidence. Below this it scores 0.0.
	SimilarityMinPosts int `yaml:"similarity_min_posts"`

	// sizing for the engine's cache of recently computed results
	ResultCacheSize int           `yaml:"-"`
	ResultCacheTTL  time.Duration `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Threshold:              0.7,
		PostsPerDaySaturation:  50,
		NetworkRatioSaturation: 10,
		AgeCutoffDays:          30,
		SimilarityMinPosts:     2,
		ResultCacheSize:        10_000,
		ResultCacheTTL:         time.Hour,
	}
}

func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 || math.IsNaN(c.Threshold) {
		return fmt.Errorf("%w: threshold must be in [0,1], got %f", ErrInvalidConfig, c.Threshold)
	}
	for name, w := range c.RuleWeights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight for rule %q must be finite and non-negative, got %f", ErrInvalidConfig, name, w)
		}
	}
	if c.PostsPerDaySaturation <= 0 {
		return fmt.Errorf("%w: posts-per-day saturation must be positive", ErrInvalidConfig)
	}
	if c.NetworkRatioSaturation <= 1 {
		return fmt.Errorf("%w: network ratio saturation must be greater than 1", ErrInvalidConfig)
	}
	if c.AgeCutoffDays <= 0 {
		return fmt.Errorf("%w: age cutoff must be positive", ErrInvalidConfig)
	}
	if c.SimilarityMinPosts < 2 {
		return fmt.Errorf("%w: similarity minimum post count must be at least 2", ErrInvalidConfig)
	}
	return nil
}

// Reads a YAML config file over the defaults. Fields absent from the file keep their default values.
func LoadConfigFile(p string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, p, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
