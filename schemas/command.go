package schemas

import (
	"hash/fnv"
	"strconv"
)

// NodeType represents the kind of a Java command node. The translator only
// distinguishes argument nodes (which carry a parser) from everything else,
// but the declare-commands packet encodes all three.
type NodeType byte

const (
	NodeTypeRoot NodeType = iota
	NodeTypeLiteral
	NodeTypeArgument
)

// JavaParser identifies the argument type of a Java-side argument node.
type JavaParser string

const (
	JavaParserBool             JavaParser = "brigadier:bool"
	JavaParserFloat            JavaParser = "brigadier:float"
	JavaParserDouble           JavaParser = "brigadier:double"
	JavaParserInteger          JavaParser = "brigadier:integer"
	JavaParserString           JavaParser = "brigadier:string"
	JavaParserEntity           JavaParser = "minecraft:entity"
	JavaParserGameProfile      JavaParser = "minecraft:game_profile"
	JavaParserBlockPos         JavaParser = "minecraft:block_pos"
	JavaParserColumnPos        JavaParser = "minecraft:column_pos"
	JavaParserVec3             JavaParser = "minecraft:vec3"
	JavaParserMessage          JavaParser = "minecraft:message"
	JavaParserNBT              JavaParser = "minecraft:nbt"
	JavaParserNBTCompoundTag   JavaParser = "minecraft:nbt_compound_tag"
	JavaParserNBTTag           JavaParser = "minecraft:nbt_tag"
	JavaParserNBTPath          JavaParser = "minecraft:nbt_path"
	JavaParserResourceLocation JavaParser = "minecraft:resource_location"
	JavaParserFunction         JavaParser = "minecraft:function"
	JavaParserOperation        JavaParser = "minecraft:operation"
	JavaParserBlockState       JavaParser = "minecraft:block_state"
	JavaParserItemStack        JavaParser = "minecraft:item_stack"
	JavaParserItemEnchantment  JavaParser = "minecraft:item_enchantment"
	JavaParserEntitySummon     JavaParser = "minecraft:entity_summon"
	JavaParserColor            JavaParser = "minecraft:color"
	JavaParserRotation         JavaParser = "minecraft:rotation"
)

// CommandNode is one node of the Java declare-commands graph. Children are
// indices into the packet's node array. Redirect, when non-nil, marks the
// node as an alias whose effective children are the target's children.
type CommandNode struct {
	Name     string
	Type     NodeType
	Parser   JavaParser
	Children []int32
	Redirect *int32
}

// IsArgument reports whether the node carries a parser.
func (n *CommandNode) IsArgument() bool {
	return n.Parser != ""
}

// CommandParamType identifies the Bedrock-side representation of a typed
// command parameter.
type CommandParamType string

const (
	ParamTypeInt           CommandParamType = "int"
	ParamTypeFloat         CommandParamType = "float"
	ParamTypeTarget        CommandParamType = "target"
	ParamTypeBlockPosition CommandParamType = "block_position"
	ParamTypePosition      CommandParamType = "position"
	ParamTypeMessage       CommandParamType = "message"
	ParamTypeJSON          CommandParamType = "json"
	ParamTypeFilePath      CommandParamType = "file_path"
	ParamTypeOperator      CommandParamType = "operator"
	ParamTypeString        CommandParamType = "string"
)

// CommandEnum is a closed set of literal values a parameter accepts. Soft is
// false on every enum this layer emits.
type CommandEnum struct {
	Name   string
	Values []string
	Soft   bool
}

// Equal reports structural equality, including value order.
func (e *CommandEnum) Equal(o *CommandEnum) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Name != o.Name || e.Soft != o.Soft || len(e.Values) != len(o.Values) {
		return false
	}
	for i := range e.Values {
		if e.Values[i] != o.Values[i] {
			return false
		}
	}
	return true
}

// CommandParamData describes a single parameter slot of one command
// overload. Exactly one of Enum or Type is set: literal-valued slots carry
// an enum, typed arguments carry a parameter type tag.
type CommandParamData struct {
	Name     string
	Optional bool
	Enum     *CommandEnum
	Type     CommandParamType
	Postfix  string
}

// Equal reports element-wise structural equality.
func (p *CommandParamData) Equal(o *CommandParamData) bool {
	return p.Name == o.Name &&
		p.Optional == o.Optional &&
		p.Type == o.Type &&
		p.Postfix == o.Postfix &&
		p.Enum.Equal(o.Enum)
}

// CommandOverloads is the overload matrix of one command: the outer slice
// enumerates overloads, each inner slice is the parameter sequence of that
// overload.
type CommandOverloads [][]CommandParamData

// Equal reports deep structural equality of two matrices: equal shape and
// element-wise equal parameter data. Reference identity is irrelevant;
// separately constructed matrices compare equal when their contents do.
func (m CommandOverloads) Equal(o CommandOverloads) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j := range m[i] {
			if !m[i][j].Equal(&o[i][j]) {
				return false
			}
		}
	}
	return true
}

// Fingerprint combines all rows by order-sensitive FNV-1a composition.
// Matrices that are Equal produce the same fingerprint, which lets distinct
// commands sharing identical overloads collapse into alias groups.
func (m CommandOverloads) Fingerprint() uint64 {
	h := fnv.New64a()
	for _, row := range m {
		h.Write([]byte{0x1e})
		for i := range row {
			p := &row[i]
			h.Write([]byte{0x1f})
			h.Write([]byte(p.Name))
			h.Write([]byte{0})
			h.Write([]byte(strconv.FormatBool(p.Optional)))
			h.Write([]byte{0})
			h.Write([]byte(p.Type))
			h.Write([]byte{0})
			h.Write([]byte(p.Postfix))
			if p.Enum != nil {
				h.Write([]byte{1})
				h.Write([]byte(p.Enum.Name))
				for _, v := range p.Enum.Values {
					h.Write([]byte{0})
					h.Write([]byte(v))
				}
				h.Write([]byte(strconv.FormatBool(p.Enum.Soft)))
			}
		}
	}
	return h.Sum64()
}

// CommandDescriptor is one outbound Bedrock command definition.
type CommandDescriptor struct {
	Name        string
	Description string
	Flags       uint16
	Permission  uint8
	Aliases     *CommandEnum
	Overloads   CommandOverloads
}

// AvailableCommands is the outbound command-list message. The receiver
// replaces its prior command state wholesale on every message.
type AvailableCommands struct {
	Commands []CommandDescriptor
}
