// Package nbt implements the little-endian binary NBT encoding used on the
// Bedrock side of the bridge: a reader for pre-serialized tag blobs and a
// writer for compounds assembled in memory.
package nbt

// Tag type IDs as they appear on the wire.
const (
	TagEnd byte = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// maxDepth bounds nesting of compounds and lists while decoding, so a
// hostile blob cannot exhaust the stack.
const maxDepth = 512

// Compound is an NBT compound tag in memory. Values hold one of: int8,
// int16, int32, int64, float32, float64, string, []byte, []int32, []int64,
// List, or Compound.
type Compound map[string]any

// List is an NBT list tag; all elements share one payload type.
type List []any

// GetCompound returns the named child compound, or nil when absent or of a
// different type.
func (c Compound) GetCompound(name string) Compound {
	v, _ := c[name].(Compound)
	return v
}

// GetString returns the named string value, or "" when absent.
func (c Compound) GetString(name string) string {
	v, _ := c[name].(string)
	return v
}
