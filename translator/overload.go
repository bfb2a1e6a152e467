package translator

import "github.com/swallowmc/geyser/schemas"

// paramInfo wraps one command node together with the parameter data that
// represents it on the Bedrock side. children is a list of sibling slots:
// each slot is a distinct subcommand branch holding one paramInfo. A literal
// merged into a slot gets no paramInfo of its own; its name is appended to
// the enum values of the slot's existing entry.
type paramInfo struct {
	index    int32
	node     *schemas.CommandNode
	param    schemas.CommandParamData
	children [][]*paramInfo
}

func newLiteralInfo(index int32, node *schemas.CommandNode) *paramInfo {
	return &paramInfo{
		index: index,
		node:  node,
		param: schemas.CommandParamData{
			Name: node.Name,
			Enum: &schemas.CommandEnum{Name: node.Name, Values: []string{node.Name}},
		},
	}
}

// buildOverloads converts the subtree rooted at rootIndex into the overload
// matrix of one command.
func (t *Translator) buildOverloads(nodes []schemas.CommandNode, rootIndex int32) schemas.CommandOverloads {
	root := &paramInfo{index: rootIndex, node: &nodes[rootIndex]}
	t.buildChildren(root, nodes)
	return root.collectTree()
}

// effectiveChildren resolves a node's children, following a redirect one
// hop: a redirecting node is an alias, and its children are the target's.
func effectiveChildren(node *schemas.CommandNode, nodes []schemas.CommandNode) []int32 {
	if node.Redirect != nil {
		return nodes[*node.Redirect].Children
	}
	return node.Children
}

// buildChildren populates self's sibling slots from its node's direct
// children, then recurses to fill the deeper layers.
//
// Sibling literals collapse into a single enum-valued slot when their
// downstream structure is compatible; incompatible literals and all typed
// arguments open slots of their own, which collectTree later turns into
// separate overloads.
func (t *Translator) buildChildren(self *paramInfo, nodes []schemas.CommandNode) {
	enumSlotIndex := -1
	for _, childIndex := range effectiveChildren(self.node, nodes) {
		child := &nodes[childIndex]

		if child.IsArgument() {
			info := &paramInfo{index: childIndex, node: child, param: t.paramForArgument(child)}
			self.children = append(self.children, []*paramInfo{info})
			continue
		}

		if enumSlotIndex == -1 {
			self.children = append(self.children, []*paramInfo{newLiteralInfo(childIndex, child)})
			enumSlotIndex = len(self.children) - 1
			continue
		}

		merged := false
	slots:
		for _, slot := range self.children {
			for _, existing := range slot {
				if compatible(nodes, existing.index, childIndex) {
					// The enum grows in place; its name stays that of the
					// first merged literal.
					existing.param.Enum.Values = append(existing.param.Enum.Values, child.Name)
					merged = true
					break slots
				}
			}
		}
		if !merged {
			self.children = append(self.children, []*paramInfo{newLiteralInfo(childIndex, child)})
		}
	}

	for _, slot := range self.children {
		for _, info := range slot {
			t.buildChildren(info, nodes)
		}
	}
}

// compatible reports whether two sibling literals can share one enum slot:
// same parser, same child count, and every child of a has some recursively
// compatible child of b, order independent.
func compatible(nodes []schemas.CommandNode, a, b int32) bool {
	if a == b {
		return true
	}
	na, nb := &nodes[a], &nodes[b]
	if na.Parser != nb.Parser {
		return false
	}
	if len(na.Children) != len(nb.Children) {
		return false
	}
	for _, ca := range na.Children {
		found := false
		for _, cb := range nb.Children {
			if compatible(nodes, ca, cb) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// collectTree flattens the slot tree into the overload matrix by depth-first
// accumulation: a leaf emits its own parameter, an inner node prefixes its
// parameter onto every overload of its subtree.
func (p *paramInfo) collectTree() schemas.CommandOverloads {
	var out schemas.CommandOverloads
	for _, slot := range p.children {
		for _, child := range slot {
			sub := child.collectTree()
			if len(sub) == 0 {
				out = append(out, []schemas.CommandParamData{child.param})
				continue
			}
			for _, tail := range sub {
				row := make([]schemas.CommandParamData, 0, len(tail)+1)
				row = append(row, child.param)
				row = append(row, tail...)
				out = append(out, row)
			}
		}
	}
	return out
}
