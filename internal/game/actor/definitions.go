package actor

func intp(v int) *int { return &v }

// definitions is the shipped actor content table. Loaded once into the
// indexes below; nothing mutates it at runtime.
var definitions = []Definition{
	{
		ID:          "rowan",
		Name:        "Rowan",
		Titles:      []string{"Rowan", "Keeper of Embers"},
		Description: "A wandering pyromancer who tends the garden's hearth.",
		Type:        TypeAdventurer,
		Glyph:       "🔥",
		Value:       intp(5),
		Aliases:     []string{"keeper", "pyromancer"},
		BaseStamina: intp(4),
		BaseHP:      intp(12),
		BasePower:   intp(2),
		OrimSlots: []SlotTemplate{
			{Locked: true, OrimID: "ember-lash"},
			{Locked: false},
		},
	},
	{
		ID:           "maris",
		Name:         "Maris",
		Titles:       []string{"Maris", "Tidecaller"},
		Description:  "Reads the currents; the tableau reads her back.",
		Type:         TypeAdventurer,
		Glyph:        "🌊",
		Value:        intp(3),
		Aliases:      []string{"tidecaller"},
		BaseArmor:    intp(1),
		BaseEvasion:  intp(10),
		BasePowerMax: intp(12),
		OrimSlots: []SlotTemplate{
			{Locked: false},
			{Locked: false},
		},
	},
	{
		ID:          "thorn",
		Name:        "Thorn",
		Titles:      []string{"Thorn", "Warden of the Old Wall"},
		Description: "Slow, patient, and very hard to move.",
		Type:        TypeAdventurer,
		Glyph:       "🛡",
		Value:       intp(9),
		BaseStamina: intp(2),
		BaseHP:      intp(18),
		BaseArmor:   intp(3),
		BaseDefense: intp(2),
		OrimSlots: []SlotTemplate{
			{Locked: true, OrimID: "stonewake"},
			{Locked: true, OrimID: "oldwall-patience"},
		},
	},
	{
		ID:          "whisper",
		Name:        "Whisper",
		Titles:      []string{"Whisper"},
		Description: "Nobody remembers inviting them to the party.",
		Type:        TypeNPC,
		Aliases:     []string{"stranger"},
		// No slots declared: New gives a single default unlocked slot.
	},
}

var (
	definitionIndex = func() map[string]*Definition {
		idx := make(map[string]*Definition, len(definitions))
		for i := range definitions {
			idx[definitions[i].ID] = &definitions[i]
		}
		return idx
	}()
	aliasIndex = func() map[string]*Definition {
		idx := make(map[string]*Definition)
		for i := range definitions {
			for _, alias := range definitions[i].Aliases {
				idx[alias] = &definitions[i]
			}
		}
		return idx
	}()
)

// GetDefinition resolves an actor definition by id, falling back to
// alias lookup. Returns nil when unknown; callers handle the nil case.
func GetDefinition(id string) *Definition {
	if def, ok := definitionIndex[id]; ok {
		return def
	}
	if def, ok := aliasIndex[id]; ok {
		return def
	}
	return nil
}

// DefinitionIDs returns the ids of all shipped definitions in content
// order.
func DefinitionIDs() []string {
	ids := make([]string, len(definitions))
	for i := range definitions {
		ids[i] = definitions[i].ID
	}
	return ids
}
