// Package schemas defines the core schemas and types shared by the Geyser
// translation layer: item registry entries, command graph nodes, and the
// Bedrock-side command descriptors produced by translation.
package schemas

import "github.com/swallowmc/geyser/nbt"

// ToolProperties carries the tool classification of an item mapping.
// Tier may be empty for tools without material tiers (shears, flint and steel).
type ToolProperties struct {
	ToolType string
	ToolTier string
}

// ItemEntry is one immutable row of the item registry, keyed by its dense
// Java ID. JavaID values form a contiguous range [0, N); JavaIdentifier is
// unique across entries. (BedrockID, BedrockData) pairs may repeat: potions
// share one Bedrock ID and distinguish variants by data value.
type ItemEntry struct {
	JavaIdentifier    string
	BedrockIdentifier string
	JavaID            int
	BedrockID         int
	BedrockData       int16
	IsBlock           bool
	StackSize         int
	Tool              *ToolProperties
}

// IsTool reports whether the entry carries a tool classification.
func (e *ItemEntry) IsTool() bool {
	return e != nil && e.Tool != nil
}

// StartGameItemEntry is one row of the outbound Bedrock item palette sent in
// the start-game packet. ComponentBased marks items whose behavior is
// declared by the server through an NBT component bag instead of being a
// built-in palette entry.
type StartGameItemEntry struct {
	Identifier     string `json:"name"`
	ID             int    `json:"id"`
	ComponentBased bool   `json:"component_based,omitempty"`
}

// CreativeItem is one entry of the synthesized creative inventory payload.
// NetID is assigned monotonically starting at 1 when the inventory is built.
// Tag is nil when the source entry carried no NBT or its blob failed to
// decode.
type CreativeItem struct {
	NetID       int32
	BedrockID   int
	BedrockData int16
	Count       int
	Tag         nbt.Compound
}

// ComponentItem describes a client-side-defined item: its Bedrock name, the
// Bedrock ID allocated for it, and the component compound the client consumes
// to learn its appearance and behavior.
type ComponentItem struct {
	Name       string
	ID         int
	Components nbt.Compound
}
