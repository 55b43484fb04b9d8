package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetByName(t *testing.T) {
	for _, name := range []string{PresetBalanced, PresetIncidentHeavy, PresetCollaborationHeavy} {
		preset, ok := PresetByName(name)
		require.True(t, ok, "preset %q should exist", name)
		assert.Equal(t, name, preset.Name)
		assert.NotEmpty(t, preset.Description)
	}
}

func TestPresetByName_Unknown(t *testing.T) {
	_, ok := PresetByName("does-not-exist")
	assert.False(t, ok)
}

func TestPresetUpdate_CarriesPresetValues(t *testing.T) {
	preset, ok := PresetByName(PresetIncidentHeavy)
	require.True(t, ok)

	update := preset.Update()

	assert.Equal(t, preset.Name, update.ActivePreset)
	assert.Equal(t, preset.Weights, update.CBIWeights)
	assert.Equal(t, preset.Impacts, update.IntegrationImpacts)
}

func TestPresetWeightsSumToOne(t *testing.T) {
	for _, preset := range Presets() {
		sum := preset.Weights.Personal + preset.Weights.Work
		assert.InDelta(t, 1.0, sum, 1e-9, "preset %q weights should sum to 1", preset.Name)
	}
}

func TestPresetNames_MatchesCatalogOrder(t *testing.T) {
	names := PresetNames()
	presets := Presets()

	require.Len(t, names, len(presets))
	for i, p := range presets {
		assert.Equal(t, p.Name, names[i])
	}
	assert.Equal(t, []string{PresetBalanced, PresetIncidentHeavy, PresetCollaborationHeavy}, names)
}

func TestPresets_ReturnsCopy(t *testing.T) {
	first := Presets()
	first[0].Name = "mutated"

	second := Presets()
	assert.Equal(t, PresetBalanced, second[0].Name)
}
