package config

import "time"

const (
	defaultTokenIssuer         = "go-flashcards"
	defaultTokenDuration       = 7 * 24 * time.Hour
	defaultPasswordHashCost    = 10
	defaultLogLevel            = "debug"
	defaultMaxOpenConns        = 10
	defaultConnectRetries      = 5
	defaultImagesBackend       = ImagesBackendFile
	defaultImagesDir           = "./data/images"
	defaultImagesMaxBytes      = 5 << 20
	defaultLocalDSN            = "flashcards.db"
	defaultHTTPAddress         = ":8080"
	defaultAdapterAddress      = "http://localhost:8080"
	defaultAdapterTimeout      = 15 * time.Second
	defaultHealthCheckInterval = 15 * time.Second
)

// Supported image storage backends.
const (
	ImagesBackendFile = "file"
	ImagesBackendS3   = "s3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:   defaultMaxOpenConns,
				ConnectRetries: defaultConnectRetries,
			},
			Images: Images{
				Backend:  defaultImagesBackend,
				Dir:      defaultImagesDir,
				MaxBytes: defaultImagesMaxBytes,
			},
			Local: Local{DSN: defaultLocalDSN},
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			HealthCheckInterval: defaultHealthCheckInterval,
		},
	}
}
