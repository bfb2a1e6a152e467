package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/swallowmc/geyser/schemas"
)

const (
	furnaceMinecartJava    = "minecraft:furnace_minecart"
	furnaceMinecartBedrock = "geysermc:furnace_minecart"
	spectralArrowJava      = "minecraft:spectral_arrow"
	lodestoneCompassName   = "minecraft:lodestone_compass"
)

// javaOnlyItems never resolve from a Bedrock-side lookup: they have no true
// Bedrock counterpart, so matching them against (id, damage) pairs coming
// off the wire would misidentify the stand-in item.
var javaOnlyItems = map[string]struct{}{
	spectralArrowJava:          {},
	"minecraft:debug_stick":    {},
	"minecraft:knowledge_book": {},
	"minecraft:tipped_arrow":   {},
	furnaceMinecartJava:        {},
}

var (
	ErrLodestoneCompassMissing = errors.New("registry: lodestone compass missing from runtime palette")
	ErrAirMissing              = errors.New("registry: mapping table has no entries")
)

// Options controls registry construction.
type Options struct {
	// AddNonBedrockItems synthesizes a Bedrock component item for the
	// furnace minecart instead of registering its mapping row.
	AddNonBedrockItems bool
}

// Registry is the immutable item table set. It is built once at startup and
// safe for concurrent readers; the only mutable state is the identifier
// lookup cache, which is insertion-once behind its own lock.
type Registry struct {
	items           []*schemas.ItemEntry
	javaIdentifiers []string
	startGameItems  []schemas.StartGameItemEntry
	creativeItems   []schemas.CreativeItem
	componentItem   *schemas.ComponentItem

	boats   map[int]struct{}
	buckets map[int]struct{}

	// Frequently consulted entries, resolved once during construction.
	Barrier      *schemas.ItemEntry
	Bamboo       *schemas.ItemEntry
	Egg          *schemas.ItemEntry
	GoldIngot    *schemas.ItemEntry
	Shield       *schemas.ItemEntry
	MilkBucket   *schemas.ItemEntry
	Wheat        *schemas.ItemEntry
	WritableBook *schemas.ItemEntry

	cacheMu sync.RWMutex
	cache   map[string]*schemas.ItemEntry

	logger schemas.Logger
}

// New loads the three assets and builds the registry. Any missing or
// malformed resource, and any mapping row whose Bedrock ID is absent from
// the palette, is a construction error: the caller treats it as fatal.
func New(assets Assets, opts Options, logger schemas.Logger) (*Registry, error) {
	palette, err := loadPalette(assets.RuntimePalette)
	if err != nil {
		return nil, err
	}
	mappings, err := loadMappings(assets.ItemMappings)
	if err != nil {
		return nil, err
	}
	creative, err := loadCreativeItems(assets.CreativeItems, logger)
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return nil, ErrAirMissing
	}

	r := &Registry{
		boats:   map[int]struct{}{},
		buckets: map[int]struct{}{},
		cache:   map[string]*schemas.ItemEntry{},
		logger:  logger,
	}

	bedrockNames := make(map[int]string, len(palette))
	lodestoneID := -1
	r.startGameItems = make([]schemas.StartGameItemEntry, 0, len(palette)+1)
	for _, p := range palette {
		bedrockNames[p.ID] = p.Name
		r.startGameItems = append(r.startGameItems, schemas.StartGameItemEntry{
			Identifier: p.Name,
			ID:         p.ID,
		})
		if p.Name == lodestoneCompassName {
			lodestoneID = p.ID
		}
	}
	if lodestoneID < 0 {
		return nil, ErrLodestoneCompassMissing
	}

	javaID := 0
	furnaceMinecartSlot := -1
	for _, m := range mappings {
		if m.JavaIdentifier == furnaceMinecartJava && opts.AddNonBedrockItems {
			// Reserve the slot; the component item is installed after the
			// palette extension below.
			furnaceMinecartSlot = javaID
			r.items = append(r.items, nil)
			javaID++
			continue
		}

		bedrockName, ok := bedrockNames[m.BedrockID]
		if !ok {
			return nil, fmt.Errorf("registry: %s maps to bedrock id %d, which is not in the palette", m.JavaIdentifier, m.BedrockID)
		}

		entry := &schemas.ItemEntry{
			JavaIdentifier:    m.JavaIdentifier,
			BedrockIdentifier: bedrockName,
			JavaID:            javaID,
			BedrockID:         m.BedrockID,
			BedrockData:       int16(m.BedrockData),
			IsBlock:           m.IsBlock,
			StackSize:         64,
		}
		if m.StackSize != nil {
			entry.StackSize = *m.StackSize
		}
		if m.ToolType != nil {
			entry.Tool = &schemas.ToolProperties{ToolType: *m.ToolType}
			if m.ToolTier != nil {
				entry.Tool.ToolTier = *m.ToolTier
			}
		}
		r.items = append(r.items, entry)
		r.recordSingleton(entry)

		if strings.Contains(m.JavaIdentifier, "boat") {
			r.boats[entry.BedrockID] = struct{}{}
		}
		if strings.Contains(m.JavaIdentifier, "bucket") && !strings.Contains(m.JavaIdentifier, "milk") {
			r.buckets[entry.BedrockID] = struct{}{}
		}

		r.javaIdentifiers = append(r.javaIdentifiers, m.JavaIdentifier)
		javaID++
	}

	// These exist only on the Java side but still belong in command
	// autocompletion, registered or not.
	r.javaIdentifiers = append(r.javaIdentifiers, furnaceMinecartJava, spectralArrowJava)

	r.items = append(r.items, &schemas.ItemEntry{
		JavaIdentifier:    lodestoneCompassName,
		BedrockIdentifier: lodestoneCompassName,
		JavaID:            javaID,
		BedrockID:         lodestoneID,
		StackSize:         1,
	})
	javaID++

	for i, c := range creative {
		r.creativeItems = append(r.creativeItems, schemas.CreativeItem{
			NetID:       int32(i + 1),
			BedrockID:   c.BedrockID,
			BedrockData: c.BedrockData,
			Count:       c.Count,
			Tag:         c.Tag,
		})
	}

	if opts.AddNonBedrockItems {
		componentID := len(palette) + 1
		r.startGameItems = append(r.startGameItems, schemas.StartGameItemEntry{
			Identifier:     furnaceMinecartBedrock,
			ID:             componentID,
			ComponentBased: true,
		})
		if furnaceMinecartSlot >= 0 {
			r.items[furnaceMinecartSlot] = &schemas.ItemEntry{
				JavaIdentifier:    furnaceMinecartJava,
				BedrockIdentifier: furnaceMinecartBedrock,
				JavaID:            furnaceMinecartSlot,
				BedrockID:         componentID,
				StackSize:         1,
			}
		}
		r.creativeItems = append(r.creativeItems, schemas.CreativeItem{
			NetID:     int32(len(r.creativeItems) + 1),
			BedrockID: componentID,
			Count:     1,
		})
		r.componentItem = furnaceMinecartComponent(componentID)
	}

	logger.Info(fmt.Sprintf("registered %d items, %d creative entries", len(r.items), len(r.creativeItems)))
	return r, nil
}

func (r *Registry) recordSingleton(entry *schemas.ItemEntry) {
	switch entry.JavaIdentifier {
	case "minecraft:barrier":
		r.Barrier = entry
	case "minecraft:bamboo":
		r.Bamboo = entry
	case "minecraft:egg":
		r.Egg = entry
	case "minecraft:gold_ingot":
		r.GoldIngot = entry
	case "minecraft:shield":
		r.Shield = entry
	case "minecraft:milk_bucket":
		r.MilkBucket = entry
	case "minecraft:wheat":
		r.Wheat = entry
	case "minecraft:writable_book":
		r.WritableBook = entry
	}
}

// Air returns the sentinel entry representing the empty slot.
func (r *Registry) Air() *schemas.ItemEntry {
	return r.items[0]
}

// Size returns the number of registered entries.
func (r *Registry) Size() int {
	return len(r.items)
}

// ItemByJavaID returns the entry with the given Java ID, or nil when out of
// range.
func (r *Registry) ItemByJavaID(id int) *schemas.ItemEntry {
	if id < 0 || id >= len(r.items) {
		return nil
	}
	return r.items[id]
}

// ItemByJavaIdentifier returns the entry with the given Java identifier, or
// nil when unknown. Results are memoized on first lookup.
func (r *Registry) ItemByJavaIdentifier(identifier string) *schemas.ItemEntry {
	r.cacheMu.RLock()
	entry, ok := r.cache[identifier]
	r.cacheMu.RUnlock()
	if ok {
		return entry
	}
	for _, e := range r.items {
		if e.JavaIdentifier == identifier {
			entry = e
			break
		}
	}
	if entry == nil {
		return nil
	}
	r.cacheMu.Lock()
	r.cache[identifier] = entry
	r.cacheMu.Unlock()
	return entry
}

// ItemByBedrock resolves a (Bedrock ID, damage) pair to a registry entry.
// Potions and arrows carry variable damage and match on ID alone. Java-only
// items are never returned. An unknown pair resolves to AIR.
func (r *Registry) ItemByBedrock(bedrockID int, damage int16) *schemas.ItemEntry {
	for _, e := range r.items {
		if _, javaOnly := javaOnlyItems[e.JavaIdentifier]; javaOnly {
			continue
		}
		if e.BedrockID != bedrockID {
			continue
		}
		if strings.HasSuffix(e.JavaIdentifier, "potion") || e.JavaIdentifier == "minecraft:arrow" {
			return e
		}
		if e.BedrockData == damage {
			return e
		}
	}
	if bedrockID != 0 || damage != 0 {
		r.logger.Debug(fmt.Sprintf("missing mapping for bedrock item %d:%d", bedrockID, damage))
	}
	return r.Air()
}

// JavaIdentifiers returns the ordered Java item name list, including the
// Java-only identifiers appended for command autocompletion. Callers must
// not mutate it.
func (r *Registry) JavaIdentifiers() []string {
	return r.javaIdentifiers
}

// StartGameItems returns the outbound item palette, including the component
// item row when one was synthesized.
func (r *Registry) StartGameItems() []schemas.StartGameItemEntry {
	return r.startGameItems
}

// CreativeItems returns the synthesized creative inventory payload.
func (r *Registry) CreativeItems() []schemas.CreativeItem {
	return r.creativeItems
}

// ComponentItem returns the synthesized component item descriptor, or nil
// when AddNonBedrockItems was disabled.
func (r *Registry) ComponentItem() *schemas.ComponentItem {
	return r.componentItem
}

// IsBoat reports whether the Bedrock ID belongs to a boat variant.
func (r *Registry) IsBoat(bedrockID int) bool {
	_, ok := r.boats[bedrockID]
	return ok
}

// IsBucket reports whether the Bedrock ID belongs to a non-milk bucket.
func (r *Registry) IsBucket(bedrockID int) bool {
	_, ok := r.buckets[bedrockID]
	return ok
}
