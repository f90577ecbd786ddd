package orim

import "testing"

func TestParseField(t *testing.T) {
	f, err := ParseField("actor.hp")
	if err != nil || f != FieldActorHP {
		t.Fatalf("actor.hp: got %v, %v", f, err)
	}
	if _, err := ParseField("actor.unknown"); err == nil {
		t.Fatal("expected error for unknown path")
	}
}

func TestEvaluateCondition(t *testing.T) {
	snap := FieldSnapshot{FieldActorHP: 4, FieldBoutTurn: 2}

	cases := []struct {
		node *TriggerNode
		want bool
	}{
		{Condition(FieldActorHP, OpLt, 5), true},
		{Condition(FieldActorHP, OpLte, 4), true},
		{Condition(FieldActorHP, OpGt, 4), false},
		{Condition(FieldActorHP, OpGte, 4), true},
		{Condition(FieldActorHP, OpEq, 4), true},
		{Condition(FieldActorHP, OpNeq, 4), false},
		{Condition(FieldBoutTurn, OpEq, 2), true},
		// Unresolvable field is false.
		{Condition(FieldActorEnergy, OpEq, 0), false},
	}
	for i, tc := range cases {
		if got := Evaluate(tc.node, snap); got != tc.want {
			t.Fatalf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestEvaluateNestedGroups(t *testing.T) {
	snap := FieldSnapshot{
		FieldActorHP:      3,
		FieldActorStamina: 0,
		FieldBoutCombo:    5,
	}

	// (hp < 5 AND NOT(stamina > 0)) OR combo >= 10
	tree := Group(GroupOr, false,
		Group(GroupAnd, false,
			Condition(FieldActorHP, OpLt, 5),
			Group(GroupAnd, true, Condition(FieldActorStamina, OpGt, 0)),
		),
		Condition(FieldBoutCombo, OpGte, 10),
	)

	if !Evaluate(tree, snap) {
		t.Fatal("expected nested tree to evaluate true")
	}

	snap[FieldActorStamina] = 2
	if Evaluate(tree, snap) {
		t.Fatal("expected tree false once stamina is positive")
	}
}

func TestEvaluateEmptyGroups(t *testing.T) {
	snap := FieldSnapshot{}
	if !Evaluate(Group(GroupAnd, false), snap) {
		t.Fatal("empty AND group must be true")
	}
	if Evaluate(Group(GroupOr, false), snap) {
		t.Fatal("empty OR group must be false")
	}
	if Evaluate(Group(GroupAnd, true), snap) {
		t.Fatal("negated empty AND group must be false")
	}
	if !Evaluate(nil, snap) {
		t.Fatal("nil condition means unconditional")
	}
}
