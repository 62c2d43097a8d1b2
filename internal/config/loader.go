// Package config loads the toolkit configuration: a YAML file with
// TB_-prefixed environment overrides, falling back to built-in defaults that
// reproduce the original CMMC CCP layout when no file is present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/grcjp/testbank/pkg/types"
)

// Load reads and parses the configuration file. A missing file is not an
// error: the defaults are used, with env overrides still applied.
func Load(configPath string) (*types.Config, error) {
	cfg := GetDefault()

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func Validate(cfg *types.Config) error {
	if cfg.Extract.SourcePath == "" {
		return fmt.Errorf("extract source_path is required")
	}
	if cfg.Extract.RawTextPath == "" {
		return fmt.Errorf("extract raw_text_path is required")
	}
	if cfg.Extract.QuestionsPath == "" {
		return fmt.Errorf("extract questions_path is required")
	}

	if len(cfg.Banks) == 0 {
		return fmt.Errorf("at least one bank is required")
	}
	seen := make(map[string]bool)
	for _, b := range cfg.Banks {
		if b.Name == "" {
			return fmt.Errorf("bank name is required")
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate bank name: %s", b.Name)
		}
		seen[b.Name] = true
		if b.QuestionsPath == "" || b.OutputPath == "" {
			return fmt.Errorf("bank %s: questions_path and output_path are required", b.Name)
		}
		if b.Title == "" {
			return fmt.Errorf("bank %s: title is required", b.Name)
		}
	}

	if cfg.Storage.Adapter != "local" && cfg.Storage.Adapter != "s3" {
		return fmt.Errorf("invalid storage adapter: %s (must be 'local' or 's3')", cfg.Storage.Adapter)
	}
	if cfg.Storage.Adapter == "local" && cfg.Storage.Local.BasePath == "" {
		return fmt.Errorf("local storage base_path is required")
	}
	if cfg.Storage.Adapter == "s3" {
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("s3 bucket is required")
		}
		if cfg.Storage.S3.Region == "" {
			return fmt.Errorf("s3 region is required")
		}
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides
// Environment variables are prefixed with TB_ (TestBank)
func applyEnvOverrides(cfg *types.Config) {
	if val := os.Getenv("TB_EXTRACT_SOURCE_PATH"); val != "" {
		cfg.Extract.SourcePath = val
	}
	if val := os.Getenv("TB_EXTRACT_STRICT"); val != "" {
		if strict, err := strconv.ParseBool(val); err == nil {
			cfg.Extract.Strict = strict
		}
	}

	if val := os.Getenv("TB_STORAGE_ADAPTER"); val != "" {
		cfg.Storage.Adapter = val
	}
	if val := os.Getenv("TB_STORAGE_LOCAL_BASE_PATH"); val != "" {
		cfg.Storage.Local.BasePath = val
	}
	if val := os.Getenv("TB_STORAGE_S3_BUCKET"); val != "" {
		cfg.Storage.S3.Bucket = val
	}
	if val := os.Getenv("TB_STORAGE_S3_REGION"); val != "" {
		cfg.Storage.S3.Region = val
	}
	if val := os.Getenv("TB_STORAGE_S3_ENDPOINT"); val != "" {
		cfg.Storage.S3.Endpoint = val
	}
	if val := os.Getenv("TB_STORAGE_S3_ACCESS_KEY_ID"); val != "" {
		cfg.Storage.S3.AccessKeyID = val
	}
	if val := os.Getenv("TB_STORAGE_S3_SECRET_ACCESS_KEY"); val != "" {
		cfg.Storage.S3.SecretAccessKey = val
	}
}

// GetDefault returns a default configuration mirroring the original
// fixed-path layout of the CMMC CCP test-bank project.
func GetDefault() *types.Config {
	return &types.Config{
		Extract: types.ExtractConfig{
			SourcePath:    "Cyber AB-CMMC-CCP.txt",
			RawTextPath:   "data/raw_text.txt",
			QuestionsPath: "data/questions.json",
		},
		Banks: []types.Bank{
			{
				Name:          "bank206",
				QuestionsPath: "data/questions.json",
				OutputPath:    "exports/CMMC-Rapid-Memory-206.epub",
				Title:         "CMMC CCP Test Bank — Rapid Memory (206)",
			},
			{
				Name:          "bank170",
				QuestionsPath: "data/questions_170.json",
				OutputPath:    "exports/CMMC-Rapid-Memory-170.epub",
				Title:         "CMMC CCP Test Bank — Rapid Memory (170)",
			},
		},
		Book: types.BookConfig{
			Creator:  "GRCJP",
			Language: "en",
			IconPath: "assets/pwa-icon.svg",
		},
		Storage: types.StorageConfig{
			Adapter: "local",
			Local: types.LocalStorageOpts{
				BasePath: ".",
			},
		},
	}
}
