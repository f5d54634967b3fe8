// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged server configuration before it is used at
// startup. Every violated rule is reported, joined under one sentinel.
func (cfg *StructuredConfig) validate() error {
	var problems []string

	if cfg.App.TokenSignKey == "" {
		problems = append(problems, "token sign key is empty")
	}
	if cfg.App.TokenDuration <= 0 {
		problems = append(problems, "token duration must be positive")
	}
	if cfg.App.PasswordHashCost < 4 || cfg.App.PasswordHashCost > 31 {
		problems = append(problems, "password hash cost must be within [4, 31]")
	}
	if cfg.Server.HTTPAddress == "" {
		problems = append(problems, "http address is empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidAppConfigs, strings.Join(problems, "; "))
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Images.Backend {
	case ImagesBackendFile:
		if cfg.Storage.Images.Dir == "" {
			return fmt.Errorf("%w: images dir is empty", ErrInvalidStorageConfigs)
		}
	case ImagesBackendS3:
		if cfg.Storage.Images.S3Bucket == "" {
			return fmt.Errorf("%w: s3 bucket is empty", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown images backend %q", ErrInvalidStorageConfigs, cfg.Storage.Images.Backend)
	}

	if cfg.Server.GRPCAddress != "" && cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
