// Package translator converts Java declare-commands graphs into Bedrock
// command descriptors, coalescing compatible sibling literals into enum
// parameters and grouping commands with identical overloads as aliases.
package translator

import (
	"fmt"
	"strings"

	"github.com/swallowmc/geyser/registry"
	"github.com/swallowmc/geyser/schemas"
)

// Translator is the per-instance command translation driver. It holds no
// per-invocation state: everything built during a translation is local to
// the call.
type Translator struct {
	registry     *registry.Registry
	values       ValueSource
	descriptions schemas.DescriptionSource
	suggestions  bool
	logger       schemas.Logger
}

// New creates a command translator. values supplies the live enum sources;
// descriptions may be nil, in which case commands carry empty descriptions.
func New(reg *registry.Registry, values ValueSource, descriptions schemas.DescriptionSource, suggestions bool, logger schemas.Logger) *Translator {
	if descriptions == nil {
		descriptions = func(string) string { return "" }
	}
	return &Translator{
		registry:     reg,
		values:       values,
		descriptions: descriptions,
		suggestions:  suggestions,
		logger:       logger,
	}
}

// commandGroup accumulates the alias names that resolved to one overload
// matrix.
type commandGroup struct {
	overloads schemas.CommandOverloads
	aliases   []string
}

// TranslateAvailableCommands walks the root node's children, builds each
// command's overload matrix, groups commands with structurally identical
// matrices as aliases of one another, and sends the resulting command list
// on the session's sink. With suggestions disabled an empty list is sent so
// the client does not fall back to its own /help.
func (t *Translator) TranslateAvailableCommands(sess *schemas.Session, nodes []schemas.CommandNode, rootIndex int32) error {
	if !t.suggestions {
		return sess.Sink.SendAvailableCommands(&schemas.AvailableCommands{})
	}
	if rootIndex < 0 || int(rootIndex) >= len(nodes) {
		return fmt.Errorf("translator: root index %d out of range", rootIndex)
	}

	seenNodes := map[int32]struct{}{}
	seenAliases := map[string]struct{}{}
	groups := map[uint64][]*commandGroup{}
	var order []*commandGroup

	for _, childIndex := range nodes[rootIndex].Children {
		if int(childIndex) >= len(nodes) {
			continue
		}
		node := &nodes[childIndex]
		if _, dup := seenNodes[childIndex]; dup {
			continue
		}
		seenNodes[childIndex] = struct{}{}

		alias := strings.ToLower(node.Name)
		if _, dup := seenAliases[alias]; dup {
			continue
		}
		seenAliases[alias] = struct{}{}

		target := childIndex
		if node.Redirect != nil {
			target = *node.Redirect
		}
		matrix := t.buildOverloads(nodes, target)

		// Matrix identity is structural, not referential: the fingerprint
		// buckets candidates and Equal confirms, so separately built but
		// identical matrices land in the same group.
		fp := matrix.Fingerprint()
		var group *commandGroup
		for _, g := range groups[fp] {
			if g.overloads.Equal(matrix) {
				group = g
				break
			}
		}
		if group == nil {
			group = &commandGroup{overloads: matrix}
			groups[fp] = append(groups[fp], group)
			order = append(order, group)
		}
		group.aliases = append(group.aliases, alias)
	}

	msg := &schemas.AvailableCommands{Commands: make([]schemas.CommandDescriptor, 0, len(order))}
	for _, g := range order {
		name := g.aliases[0]
		msg.Commands = append(msg.Commands, schemas.CommandDescriptor{
			Name:        name,
			Description: t.descriptions(name),
			Aliases:     &schemas.CommandEnum{Name: name + "Aliases", Values: g.aliases},
			Overloads:   g.overloads,
		})
	}

	t.logger.Debug(fmt.Sprintf("sending %d commands to session %s", len(msg.Commands), sess.ID))
	return sess.Sink.SendAvailableCommands(msg)
}
