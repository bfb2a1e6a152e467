package translator

import "github.com/swallowmc/geyser/schemas"

// ValueSource supplies the enum values that depend on live registry state.
// These are fetched at translation time, not cached at startup: block,
// enchantment, and entity sets can change over a session's lifetime.
type ValueSource interface {
	BlockIdentifiers() []string
	EnchantmentIdentifiers() []string
	EntityIdentifiers() []string
}

// textColors are the named chat colors accepted by the color argument.
var textColors = []string{
	"black", "dark_blue", "dark_green", "dark_aqua",
	"dark_red", "dark_purple", "gold", "gray",
	"dark_gray", "blue", "green", "aqua",
	"red", "light_purple", "yellow", "white",
}

// paramForArgument maps a Java argument node to its Bedrock representation:
// either a parameter type tag or a closed value enum. Unrecognized parsers
// fall through to a plain string.
func (t *Translator) paramForArgument(node *schemas.CommandNode) schemas.CommandParamData {
	param := schemas.CommandParamData{Name: node.Name}

	switch node.Parser {
	case schemas.JavaParserFloat, schemas.JavaParserDouble, schemas.JavaParserRotation:
		param.Type = schemas.ParamTypeFloat
	case schemas.JavaParserInteger:
		param.Type = schemas.ParamTypeInt
	case schemas.JavaParserEntity, schemas.JavaParserGameProfile:
		param.Type = schemas.ParamTypeTarget
	case schemas.JavaParserBlockPos:
		param.Type = schemas.ParamTypeBlockPosition
	case schemas.JavaParserColumnPos, schemas.JavaParserVec3:
		param.Type = schemas.ParamTypePosition
	case schemas.JavaParserMessage:
		param.Type = schemas.ParamTypeMessage
	case schemas.JavaParserNBT, schemas.JavaParserNBTCompoundTag, schemas.JavaParserNBTTag, schemas.JavaParserNBTPath:
		param.Type = schemas.ParamTypeJSON
	case schemas.JavaParserResourceLocation, schemas.JavaParserFunction:
		param.Type = schemas.ParamTypeFilePath
	case schemas.JavaParserBool:
		param.Enum = &schemas.CommandEnum{Name: node.Name, Values: []string{"true", "false"}}
	case schemas.JavaParserOperation:
		param.Type = schemas.ParamTypeOperator
	case schemas.JavaParserBlockState:
		param.Enum = &schemas.CommandEnum{Name: node.Name, Values: t.values.BlockIdentifiers()}
	case schemas.JavaParserItemStack:
		param.Enum = &schemas.CommandEnum{Name: node.Name, Values: t.registry.JavaIdentifiers()}
	case schemas.JavaParserItemEnchantment:
		param.Enum = &schemas.CommandEnum{Name: node.Name, Values: t.values.EnchantmentIdentifiers()}
	case schemas.JavaParserEntitySummon:
		param.Enum = &schemas.CommandEnum{Name: node.Name, Values: t.values.EntityIdentifiers()}
	case schemas.JavaParserColor:
		param.Enum = &schemas.CommandEnum{Name: node.Name, Values: textColors}
	default:
		param.Type = schemas.ParamTypeString
	}
	return param
}
