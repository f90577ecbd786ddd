package game

// PatternNode is one authored node of a node-edge biome layout. The
// z coordinate layers rendering; blockedBy is the DAG edge list.
type PatternNode struct {
	ID        string   `json:"id"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Z         float64  `json:"z"`
	CardCount int      `json:"cardCount"`
	BlockedBy []string `json:"blockedBy,omitempty"`
}

// NodeEdgePattern is a precomputed traversal graph. Shipped patterns
// must be acyclic; this is an authoring invariant, not a runtime check.
type NodeEdgePattern struct {
	ID    string        `json:"id"`
	Nodes []PatternNode `json:"nodes"`
}

// nodePatterns holds the shipped layouts, loaded once and read-only.
var nodePatterns = map[string]*NodeEdgePattern{
	"pyramid": {
		ID: "pyramid",
		Nodes: []PatternNode{
			{ID: "base-left", X: -2, Y: 0, Z: 0, CardCount: 4},
			{ID: "base-mid", X: 0, Y: 0, Z: 0, CardCount: 4},
			{ID: "base-right", X: 2, Y: 0, Z: 0, CardCount: 4},
			// Diamond dependencies: both mid nodes share a blocker.
			{ID: "mid-left", X: -1, Y: 1, Z: 1, CardCount: 3, BlockedBy: []string{"base-left", "base-mid"}},
			{ID: "mid-right", X: 1, Y: 1, Z: 1, CardCount: 3, BlockedBy: []string{"base-mid", "base-right"}},
			{ID: "apex", X: 0, Y: 2, Z: 2, CardCount: 2, BlockedBy: []string{"mid-left", "mid-right"}},
		},
	},
	"cross": {
		ID: "cross",
		Nodes: []PatternNode{
			{ID: "center", X: 0, Y: 0, Z: 0, CardCount: 5},
			{ID: "north", X: 0, Y: 2, Z: 1, CardCount: 3, BlockedBy: []string{"center"}},
			{ID: "south", X: 0, Y: -2, Z: 1, CardCount: 3, BlockedBy: []string{"center"}},
			{ID: "east", X: 2, Y: 0, Z: 1, CardCount: 3, BlockedBy: []string{"center"}},
			{ID: "west", X: -2, Y: 0, Z: 1, CardCount: 3, BlockedBy: []string{"center"}},
		},
	},
	"thicket": {
		ID: "thicket",
		Nodes: []PatternNode{
			{ID: "gate", X: 0, Y: 0, Z: 0, CardCount: 3},
			{ID: "bramble-a", X: -1, Y: 1, Z: 1, CardCount: 4, BlockedBy: []string{"gate"}},
			{ID: "bramble-b", X: 1, Y: 1, Z: 1, CardCount: 4, BlockedBy: []string{"gate"}},
			{ID: "hollow", X: 0, Y: 2, Z: 2, CardCount: 3, BlockedBy: []string{"bramble-a"}},
			{ID: "heart", X: 0, Y: 3, Z: 3, CardCount: 2, BlockedBy: []string{"bramble-a", "bramble-b", "hollow"}},
		},
	},
}

// PatternFor returns the shipped pattern with the given id, or nil.
func PatternFor(id string) *NodeEdgePattern {
	return nodePatterns[id]
}

// PatternIDs lists the shipped pattern ids.
func PatternIDs() []string {
	ids := make([]string, 0, len(nodePatterns))
	for id := range nodePatterns {
		ids = append(ids, id)
	}
	return ids
}
