package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swallowmc/geyser/registry"
	"github.com/swallowmc/geyser/schemas"
)

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}

type mockSink struct {
	messages []*schemas.AvailableCommands
}

func (s *mockSink) SendAvailableCommands(msg *schemas.AvailableCommands) error {
	s.messages = append(s.messages, msg)
	return nil
}

func newTestTranslator(suggestions bool) *Translator {
	return New(nil, stubValues{}, nil, suggestions, nopLogger{})
}

func ptr(v int32) *int32 { return &v }

func TestAliasRedirectCoalesces(t *testing.T) {
	nodes := []schemas.CommandNode{
		rootNode(1, 2),
		lit("teleport", 3),
		{Name: "tp", Type: schemas.NodeTypeLiteral, Redirect: ptr(1)},
		arg("destination", schemas.JavaParserEntity),
	}

	sink := &mockSink{}
	sess := schemas.NewSession(sink)
	require.NoError(t, newTestTranslator(true).TranslateAvailableCommands(sess, nodes, 0))

	require.Len(t, sink.messages, 1)
	commands := sink.messages[0].Commands
	require.Len(t, commands, 1)

	cmd := commands[0]
	assert.Equal(t, "teleport", cmd.Name)
	require.NotNil(t, cmd.Aliases)
	assert.Equal(t, "teleportAliases", cmd.Aliases.Name)
	assert.Equal(t, []string{"teleport", "tp"}, cmd.Aliases.Values)
	assert.False(t, cmd.Aliases.Soft)

	require.Len(t, cmd.Overloads, 1)
	require.Len(t, cmd.Overloads[0], 1)
	assert.Equal(t, schemas.ParamTypeTarget, cmd.Overloads[0][0].Type)
}

func TestIdenticalMatricesGroupAsAliases(t *testing.T) {
	nodes := []schemas.CommandNode{
		rootNode(1, 2),
		lit("msg", 3),
		lit("tell", 4),
		arg("message", schemas.JavaParserMessage),
		arg("message", schemas.JavaParserMessage),
	}

	sink := &mockSink{}
	sess := schemas.NewSession(sink)
	require.NoError(t, newTestTranslator(true).TranslateAvailableCommands(sess, nodes, 0))

	commands := sink.messages[0].Commands
	require.Len(t, commands, 1)
	assert.Equal(t, []string{"msg", "tell"}, commands[0].Aliases.Values)
}

func TestDistinctMatricesStaySeparate(t *testing.T) {
	nodes := []schemas.CommandNode{
		rootNode(1, 2),
		lit("give", 3),
		lit("kill", 4),
		arg("count", schemas.JavaParserInteger),
		arg("target", schemas.JavaParserEntity),
	}

	sink := &mockSink{}
	sess := schemas.NewSession(sink)
	require.NoError(t, newTestTranslator(true).TranslateAvailableCommands(sess, nodes, 0))

	commands := sink.messages[0].Commands
	require.Len(t, commands, 2)
	assert.Equal(t, "give", commands[0].Name)
	assert.Equal(t, "kill", commands[1].Name)
}

func TestDuplicateNodesAndNamesDeduplicate(t *testing.T) {
	nodes := []schemas.CommandNode{
		rootNode(1, 1, 2),
		lit("teleport", 3),
		lit("TELEPORT", 3),
		arg("destination", schemas.JavaParserEntity),
	}

	sink := &mockSink{}
	sess := schemas.NewSession(sink)
	require.NoError(t, newTestTranslator(true).TranslateAvailableCommands(sess, nodes, 0))

	commands := sink.messages[0].Commands
	require.Len(t, commands, 1)
	assert.Equal(t, []string{"teleport"}, commands[0].Aliases.Values)
}

func TestSuggestionsDisabledSendsEmptyList(t *testing.T) {
	nodes := []schemas.CommandNode{
		rootNode(1),
		lit("gamemode", 2),
		arg("mode", schemas.JavaParserString),
	}

	sink := &mockSink{}
	sess := schemas.NewSession(sink)
	require.NoError(t, newTestTranslator(false).TranslateAvailableCommands(sess, nodes, 0))

	require.Len(t, sink.messages, 1)
	assert.Empty(t, sink.messages[0].Commands)
}

func TestRepeatTranslationIsDeterministic(t *testing.T) {
	nodes := []schemas.CommandNode{
		rootNode(1, 2),
		lit("gamerule", 3, 4),
		lit("tp", 5),
		lit("doDaylightCycle", 6),
		lit("randomTickSpeed", 7),
		arg("destination", schemas.JavaParserEntity),
		arg("value", schemas.JavaParserBool),
		arg("value", schemas.JavaParserInteger),
	}

	tr := newTestTranslator(true)
	sink := &mockSink{}
	sess := schemas.NewSession(sink)
	require.NoError(t, tr.TranslateAvailableCommands(sess, nodes, 0))
	require.NoError(t, tr.TranslateAvailableCommands(sess, nodes, 0))

	require.Len(t, sink.messages, 2)
	assert.Equal(t, sink.messages[0], sink.messages[1])
}

func TestDescriptionsAreConsulted(t *testing.T) {
	nodes := []schemas.CommandNode{
		rootNode(1),
		lit("list"),
	}

	descriptions := func(name string) string { return "describes " + name }
	tr := New(nil, stubValues{}, descriptions, true, nopLogger{})

	sink := &mockSink{}
	sess := schemas.NewSession(sink)
	require.NoError(t, tr.TranslateAvailableCommands(sess, nodes, 0))

	commands := sink.messages[0].Commands
	require.Len(t, commands, 1)
	assert.Equal(t, "describes list", commands[0].Description)
}

func TestItemStackEnumUsesRegistryNames(t *testing.T) {
	logger := nopLogger{}
	reg, err := registry.New(registry.Assets{
		RuntimePalette: []byte(`[{"name": "minecraft:stone", "id": 1}, {"name": "minecraft:lodestone_compass", "id": 741}]`),
		ItemMappings:   []byte(`{"minecraft:stone": {"bedrock_id": 1, "bedrock_data": 0, "is_block": true}}`),
		CreativeItems:  []byte(`{"items": []}`),
	}, registry.Options{}, logger)
	require.NoError(t, err)

	tr := New(reg, stubValues{}, nil, true, logger)
	node := arg("item", schemas.JavaParserItemStack)
	param := tr.paramForArgument(&node)

	require.NotNil(t, param.Enum)
	assert.Equal(t, []string{"minecraft:stone", "minecraft:furnace_minecart", "minecraft:spectral_arrow"}, param.Enum.Values)
}

func TestRootIndexOutOfRange(t *testing.T) {
	sink := &mockSink{}
	sess := schemas.NewSession(sink)
	err := newTestTranslator(true).TranslateAvailableCommands(sess, []schemas.CommandNode{rootNode()}, 5)
	assert.Error(t, err)
	assert.Empty(t, sink.messages)
}
