package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errUnknownStoreDriver error = errors.New("unknown store driver")

const (
	dbConnEnvKey = "DB_CONNECTION_URL"
	envProd      = "production"

	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type App struct {
	Port            string        `env:"API_PORT,required"`
	Env             string        `env:"APP_ENV" envDefault:"development"`
	JWTSecret       string        `env:"APP_SECRET,required"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	StoreDriver     string        `env:"STORE_DRIVER" envDefault:"postgres"`
	DBConnectionURL string        `env:"DB_CONNECTION_URL"`
	SentryDSN       string        `env:"SENTRY_DSN"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"2"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
	AdminUsername   string        `env:"ADMIN_USERNAME"`
	AdminPassword   string        `env:"ADMIN_PASSWORD"`
}

// NewAppConfig reads the process environment, after merging in any of the
// given dotenv files that exist. Variables already set in the environment win.
func NewAppConfig(dotenvFiles ...string) (App, error) {
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return App{}, fmt.Errorf("load dotenv: %w", err)
		}
	}

	var app App
	if err := env.Parse(&app); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	switch app.StoreDriver {
	case StoreDriverPostgres:
		if app.DBConnectionURL == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
		}
	case StoreDriverMemory:
	default:
		return App{}, fmt.Errorf("%w: %q", errUnknownStoreDriver, app.StoreDriver)
	}

	return app, nil
}

func (a App) IsProduction() bool {
	return a.Env == envProd
}
