package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultMapboxBaseURL = "https://api.mapbox.com"
	defaultMapboxProfile = "walking"
	defaultMapboxTimeout = 10 * time.Second
	defaultCacheBucket   = "file://./data?create_dir=true"
	defaultCacheKey      = "responses.json"
	defaultRenderZoom    = 15
	defaultRenderDir     = "./maps"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Mapbox configuration for the isochrone and directions providers
	Mapbox *MapboxConfig `json:"mapbox" yaml:"mapbox"`

	// Cache configuration for persisted isochrone responses
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Sampler configuration for destination sampling
	Sampler *SamplerConfig `json:"sampler" yaml:"sampler"`

	// Render configuration for map output
	Render *RenderConfig `json:"render" yaml:"render"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MapboxConfig defines the remote isochrone/directions provider settings
type MapboxConfig struct {
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	AccessToken string        `json:"accessToken" yaml:"accessToken" validate:"required"`
	Profile     string        `json:"profile" yaml:"profile" validate:"required,oneof=walking cycling driving driving-traffic"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout" validate:"gt=0"`
}

// CacheConfig defines where isochrone responses are persisted
type CacheConfig struct {
	// gocloud.dev bucket URL (file://, mem://, s3://, gs://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl" validate:"required"`

	// Blob key holding the serialized response map
	Key string `json:"key" yaml:"key" validate:"required"`

	// Approximate matching is disabled when both tolerances are zero
	MatchToleranceMeters  float64 `json:"matchToleranceMeters" yaml:"matchToleranceMeters" validate:"gte=0"`
	MatchToleranceMinutes float64 `json:"matchToleranceMinutes" yaml:"matchToleranceMinutes" validate:"gte=0"`
}

// SamplerConfig defines the random source used for destination sampling
type SamplerConfig struct {
	// Seed of zero means a time-based seed
	Seed uint64 `json:"seed" yaml:"seed"`
}

// RenderConfig defines HTML map rendering options
type RenderConfig struct {
	Zoom      int    `json:"zoom" yaml:"zoom" validate:"gte=1,lte=22"`
	OutputDir string `json:"outputDir" yaml:"outputDir"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// MAPBOX_ACCESSTOKEN -> mapbox.accessToken, aligned with the YAML keys
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills in missing sections with the defaults of a walking setup.
func ApplyDefaults(cfg *Config) {
	if cfg.Mapbox == nil {
		cfg.Mapbox = &MapboxConfig{}
	}
	if strings.TrimSpace(cfg.Mapbox.BaseURL) == "" {
		cfg.Mapbox.BaseURL = defaultMapboxBaseURL
	}
	if cfg.Mapbox.Profile == "" {
		cfg.Mapbox.Profile = defaultMapboxProfile
	}
	if cfg.Mapbox.Timeout <= 0 {
		cfg.Mapbox.Timeout = defaultMapboxTimeout
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.BucketURL == "" {
		cfg.Cache.BucketURL = defaultCacheBucket
	}
	if cfg.Cache.Key == "" {
		cfg.Cache.Key = defaultCacheKey
	}

	if cfg.Sampler == nil {
		cfg.Sampler = &SamplerConfig{}
	}

	if cfg.Render == nil {
		cfg.Render = &RenderConfig{}
	}
	if cfg.Render.Zoom == 0 {
		cfg.Render.Zoom = defaultRenderZoom
	}
	if cfg.Render.OutputDir == "" {
		cfg.Render.OutputDir = defaultRenderDir
	}
}

// Validate checks the provider, cache and render sections.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	for name, section := range map[string]any{
		"mapbox": cfg.Mapbox,
		"cache":  cfg.Cache,
		"render": cfg.Render,
	} {
		if err := validate.Struct(section); err != nil {
			return errors.Wrapf(err, "invalid %s config", name)
		}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
