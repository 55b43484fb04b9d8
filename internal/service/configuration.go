// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/oncallsight/burnoutctl/internal/adapter"
	"github.com/oncallsight/burnoutctl/internal/logger"
	"github.com/oncallsight/burnoutctl/models"
)

// DefaultExportFileName is used when no explicit export path is given.
const DefaultExportFileName = "burnout-configuration.json"

type configurationService struct {
	adapter adapter.ConfigurationAdapter
	logger  *logger.Logger
}

// NewConfigurationService wires a [ConfigurationService] over the given
// transport adapter.
func NewConfigurationService(adp adapter.ConfigurationAdapter, log *logger.Logger) ConfigurationService {
	return &configurationService{adapter: adp, logger: log}
}

func (s *configurationService) Fetch(ctx context.Context) (models.Configuration, error) {
	cfg, err := s.adapter.Get(ctx)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("fetch configuration: %w", err)
	}
	return cfg, nil
}

func (s *configurationService) Apply(ctx context.Context, update models.ConfigurationUpdate) (models.Configuration, error) {
	cfg, err := s.adapter.Update(ctx, update)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("apply configuration: %w", err)
	}
	return cfg, nil
}

func (s *configurationService) ApplyPreset(ctx context.Context, name string) (models.Configuration, error) {
	preset, ok := models.PresetByName(name)
	if !ok {
		return models.Configuration{}, fmt.Errorf("%w: %q (valid: %s)",
			ErrUnknownPreset, name, strings.Join(models.PresetNames(), ", "))
	}

	cfg, err := s.adapter.Update(ctx, preset.Update())
	if err != nil {
		return models.Configuration{}, fmt.Errorf("apply preset %q: %w", name, err)
	}

	s.logger.Info().Str("preset", name).Msg("preset applied")
	return cfg, nil
}

func (s *configurationService) Reset(ctx context.Context) (models.Configuration, error) {
	cfg, err := s.adapter.Reset(ctx)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("reset configuration: %w", err)
	}
	return cfg, nil
}

func (s *configurationService) ExportToFile(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = DefaultExportFileName
	}

	export, err := s.adapter.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("export configuration: %w", err)
	}

	if err = os.WriteFile(path, export.Data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	s.logger.Info().Str("path", path).Int("bytes", len(export.Data)).Msg("configuration exported")
	return path, nil
}

func (s *configurationService) ImportFromFile(ctx context.Context, path string) (models.Configuration, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("read import file: %w", err)
	}

	cfg, err := s.adapter.Import(ctx, contents)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("import configuration: %w", err)
	}

	s.logger.Info().Str("path", path).Msg("configuration imported")
	return cfg, nil
}
