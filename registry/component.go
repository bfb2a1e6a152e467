package registry

import (
	"github.com/swallowmc/geyser/nbt"
	"github.com/swallowmc/geyser/schemas"
)

// furnaceMinecartComponent builds the component bag the client consumes to
// define the furnace minecart. The layout is fixed; only the allocated
// Bedrock ID varies.
func furnaceMinecartComponent(id int) *schemas.ComponentItem {
	railTags := nbt.List{
		nbt.Compound{"tags": "q.any_tag('rail')"},
	}
	components := nbt.Compound{
		"minecraft:icon": nbt.Compound{
			"texture": "minecart_furnace",
		},
		"minecraft:display_name": nbt.Compound{
			"value": "item.minecartFurnace.name",
		},
		"minecraft:entity_placer": nbt.Compound{
			"dispense_on": railTags,
			"entity":      "minecraft:minecart",
			"use_on":      railTags,
		},
		"item_properties": nbt.Compound{
			"allow_off_hand":    true,
			"hand_equipped":     false,
			"max_stack_size":    int32(1),
			"creative_group":    "itemGroup.name.minecart",
			"creative_category": int32(4),
		},
	}
	return &schemas.ComponentItem{
		Name: furnaceMinecartBedrock,
		ID:   id,
		Components: nbt.Compound{
			"name":       furnaceMinecartBedrock,
			"id":         int32(id),
			"components": components,
		},
	}
}
