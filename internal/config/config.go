package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strings" // strings normalizes configured values
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Provider keys and database settings are optional:
// when they are absent the corresponding feature degrades (empty search
// results, unavailable ratings, disabled list storage) instead of preventing
// startup.
type Config struct {
    Env               string // application environment ("dev", "prod"); prod enables the Secure cookie attribute
    Port              string // HTTP port to listen on
    DBUser            string // database username (optional)
    DBPass            string // database password (optional)
    DBHost            string // database host address (optional)
    DBPort            string // database port number
    DBName            string // database name (optional)
    CatalogKey        string // API key for the movie catalog provider
    CatalogLanguage   string // language tag sent to the catalog provider
    RatingsKey        string // API key for the secondary ratings provider
    AdminEmail        string // email of the single admin account
    AdminPassword     string // admin password in plain form (ignored when a hash is set)
    AdminPasswordHash string // bcrypt hash of the admin password (preferred)
    SessionSecret     string // secret used to sign session tokens
    SessionTTLHours   int    // session token time-to-live in hours
    EnrichLimit       int    // max in-flight rating lookups per request
    EventsEnabled     bool   // publish list activity events when a broker URL is configured
}

// Load reads configuration values from environment variables and returns a
// Config.  Only the session secret is enforced by must(); everything else
// has a default or an explicit degraded mode.
func Load() Config {
    cfg := Config{
        Env:               getenv("APP_ENV", "dev"),
        Port:              getenv("APP_PORT", "8080"),
        DBUser:            os.Getenv("DB_USER"),
        DBPass:            os.Getenv("DB_PASS"),
        DBHost:            os.Getenv("DB_HOST"),
        DBPort:            getenv("DB_PORT", "3306"),
        DBName:            os.Getenv("DB_NAME"),
        CatalogKey:        os.Getenv("TMDB_API_KEY"),
        CatalogLanguage:   getenv("TMDB_LANGUAGE", "en-US"),
        RatingsKey:        os.Getenv("OMDB_API_KEY"),
        AdminEmail:        strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
        AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
        AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
        SessionSecret:     must("SESSION_SECRET"),
        SessionTTLHours:   getint("SESSION_TTL_HOURS", 168), // 7 days
        EnrichLimit:       getint("ENRICH_CONCURRENCY", 8),
        EventsEnabled:     os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "",
    }
    if cfg.EnrichLimit < 1 {
        cfg.EnrichLimit = 1
    }
    return cfg
}

// StorageConfigured reports whether enough database settings are present to
// attempt a connection.  The list store degrades when this is false.
func (c Config) StorageConfigured() bool {
    return c.DBUser != "" && c.DBHost != "" && c.DBName != ""
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getint reads an integer environment variable, falling back to def when the
// variable is unset or not a valid integer.
func getint(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n := atoi(v)
    if n == 0 && v != "0" {
        return def
    }
    return n
}
