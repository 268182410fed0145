package progress

// HelpKind tags which kind of help the HelpIndex currently points at.
type HelpKind string

const (
	// HelpNone is the zero value: nothing is available or revealed.
	HelpNone HelpKind = ""

	// HelpAvailableHint means the hint at HintIndex may be viewed but has
	// not been revealed yet.
	HelpAvailableHint HelpKind = "available_hint"

	// HelpRevealedHint means the hint at HintIndex is the most recently
	// revealed one.
	HelpRevealedHint HelpKind = "revealed_hint"

	// HelpShowSolution means every hint is revealed and the solution may
	// be viewed.
	HelpShowSolution HelpKind = "show_solution"

	// HelpEverythingRevealed means all hints and the solution are revealed.
	HelpEverythingRevealed HelpKind = "everything_revealed"
)

// HelpIndex identifies the hint (by position) or solution most recently
// made available or revealed. The hint/solution policy owns all decisions
// behind it; the engine only persists it into checkpoints and threads it
// through ephemeral-state projections.
type HelpIndex struct {
	Kind      HelpKind `json:"kind"`
	HintIndex int      `json:"hint_index,omitempty"`
}
