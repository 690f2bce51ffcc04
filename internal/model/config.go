package model

import "time"

// Config is the full runtime configuration for Clarion
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Remote      RemoteConfig      `yaml:"remote"`
	Search      SearchConfig      `yaml:"search"`
	Classifier  ClassifierConfig  `yaml:"classifier"`
	Verify      VerifyConfig      `yaml:"verify"`
	Score       ScoreConfig       `yaml:"score"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls the URL fetcher
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// RemoteConfig configures the remote fact-check assistant
type RemoteConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// SearchConfig configures the web-search verifier
type SearchConfig struct {
	BaseURL           string        `yaml:"base_url"`
	MaxResults        int           `yaml:"max_results"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// ClassifierConfig configures the pretrained phishing classifier endpoint
type ClassifierConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// VerifyConfig holds the verifier priority orders per analysis mode.
// Every order must end with the local KB verifier (the terminal fallback).
type VerifyConfig struct {
	Orders        map[Mode][]VerifierKind `yaml:"orders"`
	ClaimWorkers  int                     `yaml:"claim_workers"`
	SimilarityMin float64                 `yaml:"similarity_min"` // KB retrieval floor
}

// ScoreConfig holds the score-blending policy. Constants are named here so
// tests can assert on exact values.
type ScoreConfig struct {
	ClaimWeight    float64                `yaml:"claim_weight"`    // Weight of the claim-verification sub-score
	SignalWeight   float64                `yaml:"signal_weight"`   // Weight of the signal sub-score
	NeutralClaim   float64                `yaml:"neutral_claim"`   // Claim sub-score when no claims were extracted
	PhishingWeight float64                `yaml:"phishing_weight"` // Extra weight for the phishing signal in phishing mode
	SignalWeights  map[SignalKind]float64 `yaml:"signal_weights"`
}

// CacheConfig controls search-result caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Clarion/0.1 (+https://github.com/clarionhq/clarion)",
			MaxBodyBytes: 2_000_000,
		},
		Remote: RemoteConfig{
			Model:   "gpt-4o-mini",
			Timeout: 20 * time.Second,
		},
		Search: SearchConfig{
			BaseURL:           "https://html.duckduckgo.com/html/",
			MaxResults:        8,
			Timeout:           15 * time.Second,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Classifier: ClassifierConfig{
			Timeout: 10 * time.Second,
		},
		Verify: VerifyConfig{
			Orders: map[Mode][]VerifierKind{
				ModeFactCheck: {VerifierRemote, VerifierWebSearch, VerifierLocalKB},
				ModeNews:      {VerifierWebSearch, VerifierRemote, VerifierLocalKB},
				ModePhishing:  {VerifierWebSearch, VerifierRemote, VerifierLocalKB},
			},
			ClaimWorkers:  4,
			SimilarityMin: 0.20,
		},
		Score: ScoreConfig{
			ClaimWeight:    0.4,
			SignalWeight:   0.6,
			NeutralClaim:   50,
			PhishingWeight: 0.40,
			SignalWeights: map[SignalKind]float64{
				SignalMisinformation:    0.30,
				SignalSocialEngineering: 0.30,
				SignalAIGenerated:       0.20,
				SignalPhishing:          0.20,
			},
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
