package orim

import (
	"fmt"
	"strings"

	"github.com/gardenfall/gardenfall-go/internal/game/card"
)

// Field is the closed enumeration of state fields a trigger condition
// may reference. Dotted paths from content data are resolved into Field
// values once at load time, never at evaluation time.
type Field int

const (
	FieldUnknown Field = iota
	FieldActorHP
	FieldActorStamina
	FieldActorEnergy
	FieldActorPower
	FieldActorArmor
	FieldActorLevel
	FieldActorAffinityWater
	FieldActorAffinityEarth
	FieldActorAffinityAir
	FieldActorAffinityFire
	FieldActorAffinityLight
	FieldActorAffinityDark
	FieldActorAffinityNeutral
	FieldBoutTurn
	FieldBoutCombo
	FieldBoutTokens
)

var fieldPaths = map[string]Field{
	"actor.hp":         FieldActorHP,
	"actor.stamina":    FieldActorStamina,
	"actor.energy":     FieldActorEnergy,
	"actor.power":      FieldActorPower,
	"actor.armor":      FieldActorArmor,
	"actor.level":      FieldActorLevel,
	"actor.affinity.W": FieldActorAffinityWater,
	"actor.affinity.E": FieldActorAffinityEarth,
	"actor.affinity.A": FieldActorAffinityAir,
	"actor.affinity.F": FieldActorAffinityFire,
	"actor.affinity.L": FieldActorAffinityLight,
	"actor.affinity.D": FieldActorAffinityDark,
	"actor.affinity.N": FieldActorAffinityNeutral,
	"bout.turn":        FieldBoutTurn,
	"bout.combo":       FieldBoutCombo,
	"bout.tokens":      FieldBoutTokens,
}

// ParseField resolves a dotted content path into a Field. Unknown paths
// return FieldUnknown and an error; callers decide whether to skip the
// condition or reject the content.
func ParseField(path string) (Field, error) {
	if f, ok := fieldPaths[strings.TrimSpace(path)]; ok {
		return f, nil
	}
	return FieldUnknown, fmt.Errorf("orim: unknown trigger field %q", path)
}

// AffinityField returns the Field for an element's affinity, or
// FieldUnknown for an element outside the enumeration.
func AffinityField(el card.Element) Field {
	f, _ := ParseField("actor.affinity." + string(el))
	return f
}

// Operator compares a resolved field value against a literal.
type Operator string

const (
	OpEq  Operator = "eq"
	OpNeq Operator = "neq"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
)

// GroupOp combines clause results within a trigger group.
type GroupOp string

const (
	GroupAnd GroupOp = "and"
	GroupOr  GroupOp = "or"
)

// NodeType tags the two trigger node variants.
type NodeType string

const (
	NodeCondition NodeType = "condition"
	NodeGroup     NodeType = "group"
)

// TriggerNode is the tagged-variant node of a boolean expression tree.
// Condition nodes use Field/Op/Value; group nodes use GroupOp/Not/Clauses.
// The tree is serializable content data, interpreted against a field
// resolver snapshot.
type TriggerNode struct {
	Type NodeType `json:"type"`

	// Condition fields.
	Field Field    `json:"left,omitempty"`
	Op    Operator `json:"operator,omitempty"`
	Value int      `json:"right,omitempty"`

	// Group fields.
	GroupOp GroupOp        `json:"op,omitempty"`
	Not     bool           `json:"not,omitempty"`
	Clauses []*TriggerNode `json:"clauses,omitempty"`
}

// Condition builds a condition node.
func Condition(field Field, op Operator, value int) *TriggerNode {
	return &TriggerNode{Type: NodeCondition, Field: field, Op: op, Value: value}
}

// Group builds a group node over the given clauses.
func Group(op GroupOp, not bool, clauses ...*TriggerNode) *TriggerNode {
	return &TriggerNode{Type: NodeGroup, GroupOp: op, Not: not, Clauses: clauses}
}

// FieldResolver supplies field values from a snapshot of actor/bout
// state. Resolution must be side-effect free.
type FieldResolver interface {
	ResolveField(f Field) (int, bool)
}

// FieldSnapshot is a map-backed FieldResolver.
type FieldSnapshot map[Field]int

// ResolveField implements FieldResolver.
func (s FieldSnapshot) ResolveField(f Field) (int, bool) {
	v, ok := s[f]
	return v, ok
}

// Evaluate interprets the trigger tree against the resolver. Conditions
// over unresolvable fields evaluate to false; an empty group is true
// under "and" and false under "or", before negation.
func Evaluate(node *TriggerNode, resolver FieldResolver) bool {
	if node == nil {
		return true
	}

	switch node.Type {
	case NodeCondition:
		v, ok := resolver.ResolveField(node.Field)
		if !ok {
			return false
		}
		return compare(v, node.Op, node.Value)

	case NodeGroup:
		result := node.GroupOp != GroupOr
		for _, clause := range node.Clauses {
			got := Evaluate(clause, resolver)
			if node.GroupOp == GroupOr {
				if got {
					result = true
					break
				}
			} else if !got {
				result = false
				break
			}
		}
		if node.Not {
			return !result
		}
		return result
	}

	return false
}

func compare(left int, op Operator, right int) bool {
	switch op {
	case OpEq:
		return left == right
	case OpNeq:
		return left != right
	case OpGt:
		return left > right
	case OpGte:
		return left >= right
	case OpLt:
		return left < right
	case OpLte:
		return left <= right
	}
	return false
}
