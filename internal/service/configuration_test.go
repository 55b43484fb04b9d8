// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oncallsight/burnoutctl/internal/logger"
	"github.com/oncallsight/burnoutctl/internal/mock"
	"github.com/oncallsight/burnoutctl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, ctrl *gomock.Controller) (ConfigurationService, *mock.MockConfigurationAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockConfigurationAdapter(ctrl)
	svc := NewConfigurationService(mockAdapter, logger.Nop())
	return svc, mockAdapter
}

func remoteConfiguration() models.Configuration {
	preset, _ := models.PresetByName(models.PresetBalanced)
	return models.Configuration{
		ConfigurationUpdate: preset.Update(),
		UpdatedAt:           "2026-08-22T08:00:00Z",
		OrganizationID:      3,
	}
}

// ── Fetch ────────────────────────────────────────────────────────────────────

func TestConfigurationService_Fetch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()
	want := remoteConfiguration()

	mockAdapter.EXPECT().Get(ctx).Return(want, nil)

	got, err := svc.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfigurationService_Fetch_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Get(ctx).Return(models.Configuration{}, assert.AnError)

	_, err := svc.Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "fetch configuration")
}

// ── Apply ────────────────────────────────────────────────────────────────────

func TestConfigurationService_Apply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()
	update := models.ConfigurationUpdate{ActivePreset: "custom"}
	want := models.Configuration{ConfigurationUpdate: update, UpdatedAt: "2026-08-22T09:00:00Z"}

	mockAdapter.EXPECT().Update(ctx, update).Return(want, nil)

	got, err := svc.Apply(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfigurationService_Apply_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Update(ctx, gomock.Any()).Return(models.Configuration{}, assert.AnError)

	_, err := svc.Apply(ctx, models.ConfigurationUpdate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply configuration")
}

// ── ApplyPreset ──────────────────────────────────────────────────────────────

func TestConfigurationService_ApplyPreset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	preset, ok := models.PresetByName(models.PresetIncidentHeavy)
	require.True(t, ok)
	want := models.Configuration{ConfigurationUpdate: preset.Update()}

	// the exact preset payload must reach the adapter
	mockAdapter.EXPECT().Update(ctx, preset.Update()).Return(want, nil)

	got, err := svc.ApplyPreset(ctx, models.PresetIncidentHeavy)
	require.NoError(t, err)
	assert.Equal(t, models.PresetIncidentHeavy, got.ActivePreset)
	assert.Equal(t, preset.Weights, got.CBIWeights)
}

func TestConfigurationService_ApplyPreset_UnknownName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no adapter expectations: the lookup failure must short-circuit
	svc, _ := newTestService(t, ctrl)

	_, err := svc.ApplyPreset(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), "does-not-exist")
	assert.Contains(t, err.Error(), models.PresetBalanced)
}

func TestConfigurationService_ApplyPreset_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Update(ctx, gomock.Any()).Return(models.Configuration{}, assert.AnError)

	_, err := svc.ApplyPreset(ctx, models.PresetBalanced)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestConfigurationService_Reset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()
	want := remoteConfiguration()

	mockAdapter.EXPECT().Reset(ctx).Return(want, nil)

	got, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── ExportToFile ─────────────────────────────────────────────────────────────

func TestConfigurationService_ExportToFile_WritesArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	artifact := models.ConfigurationExport{
		Data:        []byte("{\n  \"activePreset\": \"balanced\"\n}"),
		ContentType: models.ExportContentType,
	}
	mockAdapter.EXPECT().Export(ctx).Return(artifact, nil)

	path := filepath.Join(t.TempDir(), "export.json")
	written, err := svc.ExportToFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, artifact.Data, onDisk)
}

func TestConfigurationService_ExportToFile_DefaultFileName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Export(ctx).Return(models.ConfigurationExport{
		Data:        []byte("{}"),
		ContentType: models.ExportContentType,
	}, nil)

	t.Chdir(t.TempDir())

	written, err := svc.ExportToFile(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultExportFileName, written)

	_, err = os.Stat(DefaultExportFileName)
	assert.NoError(t, err)
}

func TestConfigurationService_ExportToFile_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Export(ctx).Return(models.ConfigurationExport{}, assert.AnError)

	_, err := svc.ExportToFile(ctx, filepath.Join(t.TempDir(), "export.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export configuration")
}

func TestConfigurationService_ExportToFile_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Export(ctx).Return(models.ConfigurationExport{Data: []byte("{}")}, nil)

	// target is a directory, so the write must fail
	_, err := svc.ExportToFile(ctx, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write export file")
}

// ── ImportFromFile ───────────────────────────────────────────────────────────

func TestConfigurationService_ImportFromFile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	contents := []byte(`{"activePreset": "balanced"}`)
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	want := remoteConfiguration()
	// the exact file contents must reach the adapter
	mockAdapter.EXPECT().Import(ctx, contents).Return(want, nil)

	got, err := svc.ImportFromFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfigurationService_ImportFromFile_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no adapter expectations: the read failure must short-circuit
	svc, _ := newTestService(t, ctrl)

	_, err := svc.ImportFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read import file")
}

func TestConfigurationService_ImportFromFile_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestService(t, ctrl)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	mockAdapter.EXPECT().Import(ctx, gomock.Any()).Return(models.Configuration{}, assert.AnError)

	_, err := svc.ImportFromFile(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import configuration")
}
