package config

import "time"

const (
	DefaultAccessTokenDuration  = 15 * time.Minute
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
	DefaultTokenIssuer          = "go-finance-tracker"
	DefaultPasswordHashCost     = 10
	DefaultLogLevel             = "debug"
	DefaultVersion              = "dev"

	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second

	DefaultAdapterRequestTimeout = 10 * time.Second

	DefaultTokenCleanupInterval = time.Hour

	DefaultServiceName = "go-finance-tracker"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
			PasswordHashCost:     DefaultPasswordHashCost,
			LogLevel:             DefaultLogLevel,
			Version:              DefaultVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Workers: Workers{
			TokenCleanupInterval: DefaultTokenCleanupInterval,
		},
		Telemetry: Telemetry{
			ServiceName: DefaultServiceName,
		},
	}
}
