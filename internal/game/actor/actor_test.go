package actor

import "testing"

func TestGetDefinitionByIDAndAlias(t *testing.T) {
	if def := GetDefinition("rowan"); def == nil || def.Name != "Rowan" {
		t.Fatal("direct id lookup failed")
	}
	if def := GetDefinition("tidecaller"); def == nil || def.ID != "maris" {
		t.Fatal("alias lookup failed")
	}
	if GetDefinition("nobody") != nil {
		t.Fatal("unknown id must resolve to nil, not panic")
	}
}

func TestNewDerivesStats(t *testing.T) {
	a := New("rowan")
	if a == nil {
		t.Fatal("expected actor for rowan")
	}

	if a.Stamina != 4 || a.StaminaMax != 4 {
		t.Fatalf("rowan stamina: got %d/%d, want 4/4", a.Stamina, a.StaminaMax)
	}
	if a.HP != 12 || a.HPMax != 12 {
		t.Fatalf("rowan hp: got %d/%d, want 12/12", a.HP, a.HPMax)
	}
	if a.CurrentValue != 5 {
		t.Fatalf("rowan value: got %d, want 5", a.CurrentValue)
	}
	if a.Power != 2 || a.PowerMax != DefaultPowerMax {
		t.Fatalf("rowan power: got %d/%d", a.Power, a.PowerMax)
	}
	if a.Level != 1 {
		t.Fatalf("new actors start at level 1, got %d", a.Level)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	a := New("whisper")
	if a == nil {
		t.Fatal("expected actor for whisper")
	}

	if a.Stamina != DefaultStamina {
		t.Fatalf("default stamina: got %d, want %d", a.Stamina, DefaultStamina)
	}
	if a.HP != DefaultHP {
		t.Fatalf("default hp: got %d, want %d", a.HP, DefaultHP)
	}
	if a.Accuracy != DefaultAccuracy {
		t.Fatalf("default accuracy: got %d, want %d", a.Accuracy, DefaultAccuracy)
	}
	if a.CurrentValue != DefaultValue {
		t.Fatalf("default value: got %d, want %d", a.CurrentValue, DefaultValue)
	}
}

func TestNewUnknownDefinition(t *testing.T) {
	if New("nope") != nil {
		t.Fatal("unknown definition must yield nil actor")
	}
}

func TestNewSlots(t *testing.T) {
	a := New("rowan")
	if len(a.OrimSlots) != 2 {
		t.Fatalf("rowan slots: got %d, want 2", len(a.OrimSlots))
	}
	if !a.OrimSlots[0].Locked || a.OrimSlots[0].OrimID != "ember-lash" {
		t.Fatalf("rowan slot 0 should be locked with the trait reference, got %+v", a.OrimSlots[0])
	}
	if a.OrimSlots[1].Locked {
		t.Fatal("rowan slot 1 should be unlocked")
	}

	// No declared slots yields a single default unlocked slot.
	w := New("whisper")
	if len(w.OrimSlots) != 1 || w.OrimSlots[0].Locked || w.OrimSlots[0].OrimID != "" {
		t.Fatalf("whisper should get one default slot, got %+v", w.OrimSlots)
	}

	// Slot ids are fresh per instantiation.
	b := New("rowan")
	if a.OrimSlots[0].ID == b.OrimSlots[0].ID {
		t.Fatal("slot ids must be unique across instantiations")
	}
}

func TestDisplayGlyph(t *testing.T) {
	def := GetDefinition("rowan")
	if g := DisplayGlyph(def, true); g != "🔥" {
		t.Fatalf("graphics glyph: got %q", g)
	}
	// Fallback: last title "Keeper of Embers" -> last token "Embers" -> "E".
	if g := DisplayGlyph(def, false); g != "E" {
		t.Fatalf("fallback glyph: got %q, want E", g)
	}
	// Stable across calls.
	if DisplayGlyph(def, false) != DisplayGlyph(def, false) {
		t.Fatal("fallback glyph must be stable")
	}
	if g := DisplayGlyph(nil, false); g != "?" {
		t.Fatalf("nil definition glyph: got %q", g)
	}
}
