// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package config holds the static configuration for the matchmaking engine:
// rating bounds, per-outcome K-factor bounds, the scan interval and the
// fairness floor. Values are read from the environment; a .env file in the
// working directory is honored when present.
package config

import (
	"time"

	env "github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type Config struct {
	StartRating       int           `env:"START_RATING"        envDefault:"800"  envDocs:"rating assigned to a player on their first appearance in a pool"`
	LowerBoundRating  int           `env:"LOWER_BOUND_RATING"  envDefault:"800"  envDocs:"rating at which the K-factor interpolation starts, flat below"`
	UpperBoundRating  int           `env:"UPPER_BOUND_RATING"  envDefault:"3000" envDocs:"rating at which the K-factor interpolation ends, flat above"`
	LowerBoundKOnWin  float64       `env:"LOWER_BOUND_K_WIN"   envDefault:"50"   envDocs:"K-factor on win at the lower rating bound"`
	UpperBoundKOnWin  float64       `env:"UPPER_BOUND_K_WIN"   envDefault:"10"   envDocs:"K-factor on win at the upper rating bound"`
	LowerBoundKOnLoss float64       `env:"LOWER_BOUND_K_LOSS"  envDefault:"10"   envDocs:"K-factor on loss at the lower rating bound"`
	UpperBoundKOnLoss float64       `env:"UPPER_BOUND_K_LOSS"  envDefault:"50"   envDocs:"K-factor on loss at the upper rating bound"`
	LowerBoundKOnDraw float64       `env:"LOWER_BOUND_K_DRAW"  envDefault:"0"    envDocs:"K-factor on draw at the lower rating bound"`
	UpperBoundKOnDraw float64       `env:"UPPER_BOUND_K_DRAW"  envDefault:"0"    envDocs:"K-factor on draw at the upper rating bound"`
	ScanInterval      time.Duration `env:"SCAN_INTERVAL"       envDefault:"30s"  envDocs:"how often each queue asks its pool for ready matches"`
	FairnessFloor     float64       `env:"FAIRNESS_FLOOR"      envDefault:"0"    envDocs:"minimum projected rating-delta symmetry between candidate teams, <= 0 disables the check"`
	NameRefresh       time.Duration `env:"NAME_REFRESH"        envDefault:"10m"  envDocs:"refresh interval of the display-name resolver cache"`
	NameAPIBaseURL    string        `env:"NAME_API_BASE_URL"   envDefault:""     envDocs:"base URL of the display-name service, empty disables remote lookups"`
	NameAPIKey        string        `env:"NAME_API_KEY"        envDefault:""     envDocs:"api key appended to display-name lookups"`
	Regions           []string      `env:"REGIONS"             envDefault:"EU,US-E" envSeparator:"," envDocs:"regions a queue is created for, per mode"`
}

// New reads the configuration from the environment. Missing .env is not an
// error; the environment alone is enough.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
