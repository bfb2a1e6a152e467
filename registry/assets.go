// Package registry builds the immutable item tables bridging Java item
// identifiers and Bedrock runtime IDs, along with the creative inventory
// content derived from them.
package registry

import (
	"encoding/base64"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"

	"github.com/swallowmc/geyser/nbt"
	"github.com/swallowmc/geyser/schemas"
)

// Assets bundles the raw bytes of the three static resources the registry is
// built from. How they are located and read is the caller's concern.
type Assets struct {
	RuntimePalette []byte
	ItemMappings   []byte
	CreativeItems  []byte
}

// PaletteEntry is one row of the Bedrock runtime item palette.
type PaletteEntry struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// MappingEntry is one row of the Java→Bedrock item mapping table, in
// declaration order. Declaration order determines Java ID assignment, so the
// table is a slice rather than a map.
type MappingEntry struct {
	JavaIdentifier string
	BedrockID      int
	BedrockData    int
	IsBlock        bool
	StackSize      *int
	ToolType       *string
	ToolTier       *string
}

type mappingValue struct {
	BedrockID   int     `json:"bedrock_id"`
	BedrockData int     `json:"bedrock_data"`
	IsBlock     bool    `json:"is_block"`
	StackSize   *int    `json:"stack_size"`
	ToolType    *string `json:"tool_type"`
	ToolTier    *string `json:"tool_tier"`
}

type creativeEntry struct {
	BedrockID   int
	BedrockData int16
	Count       int
	Tag         nbt.Compound
}

func loadPalette(data []byte) ([]PaletteEntry, error) {
	var palette []PaletteEntry
	if err := sonic.Unmarshal(data, &palette); err != nil {
		return nil, fmt.Errorf("registry: parse runtime item palette: %w", err)
	}
	return palette, nil
}

// loadMappings parses the mapping table. sonic would hand the object back as
// an unordered map, so the keys are walked with gjson, which preserves
// document order.
func loadMappings(data []byte) ([]MappingEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("registry: item mappings are not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("registry: item mappings are not a JSON object")
	}

	var entries []MappingEntry
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		var v mappingValue
		if err := sonic.UnmarshalString(value.Raw, &v); err != nil {
			parseErr = fmt.Errorf("registry: parse mapping for %s: %w", key.String(), err)
			return false
		}
		entries = append(entries, MappingEntry{
			JavaIdentifier: key.String(),
			BedrockID:      v.BedrockID,
			BedrockData:    v.BedrockData,
			IsBlock:        v.IsBlock,
			StackSize:      v.StackSize,
			ToolType:       v.ToolType,
			ToolTier:       v.ToolTier,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return entries, nil
}

// loadCreativeItems parses the creative inventory list. Entries carry
// heterogeneous optional fields, so they are walked with gjson. A broken
// nbt_b64 blob downgrades that entry to a nil tag rather than failing the
// load.
func loadCreativeItems(data []byte, logger schemas.Logger) ([]creativeEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("registry: creative items are not valid JSON")
	}
	items := gjson.GetBytes(data, "items")
	if !items.IsArray() {
		return nil, fmt.Errorf("registry: creative items missing items array")
	}

	var entries []creativeEntry
	items.ForEach(func(_, value gjson.Result) bool {
		e := creativeEntry{
			BedrockID:   int(value.Get("id").Int()),
			BedrockData: int16(value.Get("damage").Int()),
			Count:       1,
		}
		if count := value.Get("count"); count.Exists() {
			e.Count = int(count.Int())
		}
		if blob := value.Get("nbt_b64"); blob.Exists() {
			e.Tag = decodeCreativeTag(blob.String(), e.BedrockID, logger)
		}
		entries = append(entries, e)
		return true
	})
	return entries, nil
}

func decodeCreativeTag(blob string, bedrockID int, logger schemas.Logger) nbt.Compound {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		logger.Warn(fmt.Sprintf("bad creative NBT blob for item %d: %v", bedrockID, err))
		return nil
	}
	tag, err := nbt.ReadBytes(raw)
	if err != nil {
		logger.Warn(fmt.Sprintf("bad creative NBT blob for item %d: %v", bedrockID, err))
		return nil
	}
	return tag
}
