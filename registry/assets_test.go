package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPalettePreservesOrder(t *testing.T) {
	palette, err := loadPalette([]byte(testPalette))
	require.NoError(t, err)

	require.Len(t, palette, 12)
	assert.Equal(t, PaletteEntry{Name: "minecraft:air", ID: 0}, palette[0])
	assert.Equal(t, PaletteEntry{Name: "minecraft:lodestone_compass", ID: 741}, palette[11])
}

func TestLoadMappingsPreservesDeclarationOrder(t *testing.T) {
	entries, err := loadMappings([]byte(testMappings))
	require.NoError(t, err)

	require.Len(t, entries, 14)
	assert.Equal(t, "minecraft:air", entries[0].JavaIdentifier)
	assert.Equal(t, "minecraft:stone", entries[1].JavaIdentifier)
	assert.Equal(t, "minecraft:furnace_minecart", entries[13].JavaIdentifier)
}

func TestLoadMappingsOptionalFields(t *testing.T) {
	entries, err := loadMappings([]byte(testMappings))
	require.NoError(t, err)

	pickaxe := entries[2]
	require.Equal(t, "minecraft:iron_pickaxe", pickaxe.JavaIdentifier)
	require.NotNil(t, pickaxe.StackSize)
	assert.Equal(t, 1, *pickaxe.StackSize)
	require.NotNil(t, pickaxe.ToolType)
	assert.Equal(t, "pickaxe", *pickaxe.ToolType)
	require.NotNil(t, pickaxe.ToolTier)
	assert.Equal(t, "iron", *pickaxe.ToolTier)

	stone := entries[1]
	assert.Nil(t, stone.StackSize)
	assert.Nil(t, stone.ToolType)
	assert.True(t, stone.IsBlock)
}

func TestLoadCreativeItemsDefaults(t *testing.T) {
	entries, err := loadCreativeItems([]byte(`{"items": [{"id": 5}]}`), &testLogger{})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].BedrockID)
	assert.Equal(t, int16(0), entries[0].BedrockData)
	assert.Equal(t, 1, entries[0].Count, "count defaults to 1")
	assert.Nil(t, entries[0].Tag)
}

func TestLoadCreativeItemsRejectsMissingArray(t *testing.T) {
	_, err := loadCreativeItems([]byte(`{}`), &testLogger{})
	assert.Error(t, err)

	_, err = loadCreativeItems([]byte(`not json`), &testLogger{})
	assert.Error(t, err)
}
