package exploration

import "fmt"

// ErrStateNotFound indicates a state name with no definition in the graph.
type ErrStateNotFound struct {
	StateName string
}

func (e *ErrStateNotFound) Error() string {
	return fmt.Sprintf("state %q not found in lesson graph", e.StateName)
}

// Destination is where an answer outcome sends the learner: either the
// same state they answered at, or a named state elsewhere in the graph.
type Destination struct {
	SameState bool
	StateName string
}

// AnswerOutcome is the resolved result of one answer submission.
type AnswerOutcome struct {
	Correct  bool
	Feedback string
	Dest     Destination
}

// StateGraph is the immutable-per-load lookup from state name to state
// definition for one exploration.
type StateGraph struct {
	exp *Exploration
}

// NewStateGraph wraps a loaded exploration. The exploration must already
// be validated (see Decode); lookups assume internal consistency.
func NewStateGraph(exp *Exploration) *StateGraph {
	return &StateGraph{exp: exp}
}

// Exploration returns the underlying lesson.
func (g *StateGraph) Exploration() *Exploration {
	return g.exp
}

// InitialState returns the lesson's entry state.
func (g *StateGraph) InitialState() State {
	return g.exp.States[g.exp.InitStateName]
}

// State resolves a state name to its definition.
func (g *StateGraph) State(name string) (State, error) {
	s, ok := g.exp.States[name]
	if !ok {
		return State{}, &ErrStateNotFound{StateName: name}
	}
	return s, nil
}

// ResolveOutcome turns a classifier outcome at the given source state into
// an AnswerOutcome, folding a self-referencing destination into a
// same-state result.
func (g *StateGraph) ResolveOutcome(from State, o Outcome) AnswerOutcome {
	res := AnswerOutcome{
		Correct:  o.LabelledAsCorrect,
		Feedback: o.Feedback,
	}
	if o.Dest == "" || o.Dest == from.Name {
		res.Dest = Destination{SameState: true}
		return res
	}
	res.Dest = Destination{StateName: o.Dest}
	return res
}
