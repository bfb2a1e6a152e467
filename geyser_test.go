package geyser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swallowmc/geyser/config"
	"github.com/swallowmc/geyser/registry"
	"github.com/swallowmc/geyser/schemas"
)

type mockSink struct {
	messages []*schemas.AvailableCommands
}

func (s *mockSink) SendAvailableCommands(msg *schemas.AvailableCommands) error {
	s.messages = append(s.messages, msg)
	return nil
}

func testAssets() registry.Assets {
	return registry.Assets{
		RuntimePalette: []byte(`[
			{"name": "minecraft:air", "id": 0},
			{"name": "minecraft:stone", "id": 1},
			{"name": "minecraft:lodestone_compass", "id": 741}
		]`),
		ItemMappings: []byte(`{
			"minecraft:air": {"bedrock_id": 0, "bedrock_data": 0, "is_block": false},
			"minecraft:stone": {"bedrock_id": 1, "bedrock_data": 0, "is_block": true}
		}`),
		CreativeItems: []byte(`{"items": [{"id": 1}]}`),
	}
}

func TestNewBuildsRegistry(t *testing.T) {
	g, err := New(config.Default(), testAssets(), nil, nil, nil)
	require.NoError(t, err)

	reg := g.Registry()
	require.NotNil(t, reg)
	assert.Equal(t, 3, reg.Size())
	assert.NotNil(t, reg.ComponentItem(), "default config synthesizes the furnace minecart")
}

func TestNewPropagatesAssetFailures(t *testing.T) {
	assets := testAssets()
	assets.RuntimePalette = []byte(`broken`)

	_, err := New(config.Default(), assets, nil, nil, nil)
	assert.Error(t, err)
}

func TestHandleDeclareCommands(t *testing.T) {
	g, err := New(config.Default(), testAssets(), nil, nil, nil)
	require.NoError(t, err)

	nodes := []schemas.CommandNode{
		{Type: schemas.NodeTypeRoot, Children: []int32{1}},
		{Name: "list", Type: schemas.NodeTypeLiteral},
	}

	sink := &mockSink{}
	sess := g.NewSession(sink)
	require.NoError(t, g.HandleDeclareCommands(sess, nodes, 0))

	require.Len(t, sink.messages, 1)
	require.Len(t, sink.messages[0].Commands, 1)
	assert.Equal(t, "list", sink.messages[0].Commands[0].Name)
}

func TestSessionsGetDistinctIdentities(t *testing.T) {
	g, err := New(config.Default(), testAssets(), nil, nil, nil)
	require.NoError(t, err)

	a := g.NewSession(&mockSink{})
	b := g.NewSession(&mockSink{})
	assert.NotEqual(t, a.ID, b.ID)
}
