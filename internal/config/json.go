package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON config file,
// with durations accepted as strings like "30s".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		StrictOwnership  bool     `json:"strict_ownership"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string `json:"dsn"`
			MaxOpenConns   int    `json:"max_open_conns"`
			ConnectRetries int    `json:"connect_retries"`
		} `json:"db,omitempty"`

		Images struct {
			Backend     string `json:"backend"`
			Dir         string `json:"dir"`
			MaxBytes    int64  `json:"max_bytes"`
			S3Bucket    string `json:"s3_bucket"`
			S3Region    string `json:"s3_region"`
			S3Endpoint  string `json:"s3_endpoint"`
			S3AccessKey string `json:"s3_access_key"`
			S3SecretKey string `json:"s3_secret_key"`
		} `json:"images,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			StrictOwnership:  jsonCfg.App.StrictOwnership,
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				MaxOpenConns:   jsonCfg.Storage.DB.MaxOpenConns,
				ConnectRetries: jsonCfg.Storage.DB.ConnectRetries,
			},
			Images: Images{
				Backend:     jsonCfg.Storage.Images.Backend,
				Dir:         jsonCfg.Storage.Images.Dir,
				MaxBytes:    jsonCfg.Storage.Images.MaxBytes,
				S3Bucket:    jsonCfg.Storage.Images.S3Bucket,
				S3Region:    jsonCfg.Storage.Images.S3Region,
				S3Endpoint:  jsonCfg.Storage.Images.S3Endpoint,
				S3AccessKey: jsonCfg.Storage.Images.S3AccessKey,
				S3SecretKey: jsonCfg.Storage.Images.S3SecretKey,
			},
			Local: Local{DSN: jsonCfg.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
