package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName           = "WhatsClone"
	defaultAppEnv            = "development"
	defaultPort              = "8080"
	defaultLogLevel          = "info"
	defaultShutdownDelay     = 10 * time.Second
	defaultIdempotencyTTL    = 24 * time.Hour
	defaultPrefsBackend      = "sqlite"
	defaultPrefsPath         = "whatsclone.preferencias.db"
	defaultSMSProvider       = "log"
	defaultTwilioBaseURL     = "https://api.twilio.com"
	defaultRegisterRateLimit = 5
	idemTTLSecondsEnvVar     = "IDEMPOTENCY_TTL_SECONDS"
	idemTTLDurEnvVar         = "IDEMPOTENCY_TTL"
	shutdownSecondsEnvVar    = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar   = "SHUTDOWN_TIMEOUT"
)

// Preference store backends.
const (
	PreferencesSQLite = "sqlite"
	PreferencesRedis  = "redis"
	PreferencesMemory = "memory"
)

// SMS providers.
const (
	SMSProviderLog    = "log"
	SMSProviderTwilio = "twilio"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration

	PreferencesBackend string
	PreferencesPath    string

	SMSProvider string
	Twilio      TwilioConfig

	// GrantedCapabilities is the capability set the simulated device has
	// already granted. Anything else requested through the permission gate is
	// answered with a denial.
	GrantedCapabilities []string
	AwaitPermissions    bool

	// RegisterRateLimit caps registration submissions per phone per minute.
	// Zero disables the limit.
	RegisterRateLimit int
}

// TwilioConfig holds the credentials for the Twilio Messages API.
type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
	BaseURL     string
}

// Configured reports whether every credential needed to send is present.
func (t TwilioConfig) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.PhoneNumber != ""
}

// Load reads configuration values from the environment and populates a Config instance.
// A .env file in the working directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:            getEnv("APP_NAME", defaultAppName),
		AppEnv:             getEnv("APP_ENV", defaultAppEnv),
		Port:               getEnv("PORT", defaultPort),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		ShutdownPeriod:     defaultShutdownDelay,
		IdempotencyTTL:     defaultIdempotencyTTL,
		PreferencesBackend: strings.ToLower(getEnv("PREFERENCES_BACKEND", defaultPrefsBackend)),
		PreferencesPath:    getEnv("PREFERENCES_PATH", defaultPrefsPath),
		SMSProvider:        strings.ToLower(getEnv("SMS_PROVIDER", defaultSMSProvider)),
		Twilio: TwilioConfig{
			AccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
			PhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
			BaseURL:     getEnv("TWILIO_BASE_URL", defaultTwilioBaseURL),
		},
		GrantedCapabilities: getSliceEnv("GRANTED_CAPABILITIES", []string{
			"android.permission.SEND_SMS",
			"android.permission.INTERNET",
		}),
		RegisterRateLimit: defaultRegisterRateLimit,
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(idemTTLSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", idemTTLSecondsEnvVar, err)
		}
		cfg.IdempotencyTTL = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(idemTTLDurEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", idemTTLDurEnvVar, err)
		}
		cfg.IdempotencyTTL = d
	}

	if v := os.Getenv("PERMISSIONS_AWAIT"); v != "" {
		await, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PERMISSIONS_AWAIT: %w", err)
		}
		cfg.AwaitPermissions = await
	}

	if v := os.Getenv("REGISTER_RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return Config{}, fmt.Errorf("invalid REGISTER_RATE_LIMIT: %q", v)
		}
		cfg.RegisterRateLimit = limit
	}

	switch cfg.PreferencesBackend {
	case PreferencesSQLite:
		if strings.TrimSpace(cfg.PreferencesPath) == "" {
			return Config{}, fmt.Errorf("PREFERENCES_PATH must be set for the sqlite backend")
		}
	case PreferencesRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set for the redis preferences backend")
		}
	case PreferencesMemory:
	default:
		return Config{}, fmt.Errorf("unknown PREFERENCES_BACKEND %q", cfg.PreferencesBackend)
	}

	switch cfg.SMSProvider {
	case SMSProviderLog:
	case SMSProviderTwilio:
		if !cfg.Twilio.Configured() {
			return Config{}, fmt.Errorf("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER must be set")
		}
	default:
		return Config{}, fmt.Errorf("unknown SMS_PROVIDER %q", cfg.SMSProvider)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDevelopment reports whether the app runs in a local/dev environment.
func (c Config) IsDevelopment() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getSliceEnv(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
