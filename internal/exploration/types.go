package exploration

// Interaction kinds with engine-level meaning. Every other kind is opaque
// to the engine and only interpreted by the answer classifier.
const (
	// InteractionEndExploration marks a terminal state: no further
	// interaction, the lesson is finished.
	InteractionEndExploration = "EndExploration"

	// InteractionContinue auto-advances on any answer and never produces
	// a checkpoint of its own.
	InteractionContinue = "Continue"
)

// Exploration is one immutable branching lesson graph. It is loaded once
// per session and never mutated.
type Exploration struct {
	ID            string
	Version       int
	Title         string
	InitStateName string
	States        map[string]State
}

// State is one node in the lesson graph: content plus one interaction.
type State struct {
	Name          string
	Content       string
	Interaction   Interaction
	LinkedSkillID string
}

// IsTerminal reports whether reaching this state finishes the lesson.
func (s State) IsTerminal() bool {
	return s.Interaction.ID == InteractionEndExploration
}

// Interaction is the question posed at a state: its kind, customization
// parameters, ordered answer groups, fallback outcome, hints and an
// optional solution.
type Interaction struct {
	ID                string
	CustomizationArgs map[string]string
	AnswerGroups      []AnswerGroup
	DefaultOutcome    Outcome
	Hints             []Hint
	Solution          *Solution
}

// AnswerGroup couples a list of classification rules with the outcome
// applied when any of them matches.
type AnswerGroup struct {
	Rules   []RuleSpec
	Outcome Outcome
}

// RuleSpec is a single answer-classification rule.
type RuleSpec struct {
	Type  string
	Input string
}

// Outcome is the consequence of a classified answer: the destination
// state (the source state's own name means "stay here"), the feedback
// shown, and whether the answer counts as correct.
type Outcome struct {
	Dest              string
	Feedback          string
	LabelledAsCorrect bool
}

// Hint is one ordered hint attached to an interaction.
type Hint struct {
	Text string
}

// Solution is the optional full answer reveal for an interaction.
type Solution struct {
	CorrectAnswer string
	Explanation   string
}
