package progress

import "fmt"

// PlayStage is the coarse lifecycle stage of a play session.
type PlayStage int

const (
	StageNotPlaying PlayStage = iota
	StageLoadingLesson
	StageViewingState
	StageSubmittingAnswer
)

func (s PlayStage) String() string {
	switch s {
	case StageNotPlaying:
		return "not-playing"
	case StageLoadingLesson:
		return "loading-lesson"
	case StageViewingState:
		return "viewing-state"
	case StageSubmittingAnswer:
		return "submitting-answer"
	}
	return fmt.Sprintf("PlayStage(%d)", int(s))
}

// allowedStageTransitions is the full set of legal stage edges. Everything
// not listed here is a controller bug, including the NotPlaying self-loop.
var allowedStageTransitions = map[PlayStage][]PlayStage{
	StageNotPlaying:       {StageLoadingLesson},
	StageLoadingLesson:    {StageViewingState, StageNotPlaying},
	StageViewingState:     {StageSubmittingAnswer, StageNotPlaying},
	StageSubmittingAnswer: {StageViewingState, StageNotPlaying},
}

// advanceStage moves the session to the requested stage. An illegal
// transition panics: the guard catches controller bugs, not caller
// mistakes, and the controller validates every external call sequence
// before it gets here.
func (p *ExplorationProgress) advanceStage(to PlayStage) {
	for _, allowed := range allowedStageTransitions[p.Stage] {
		if allowed == to {
			p.Stage = to
			return
		}
	}
	panic(fmt.Sprintf("illegal play stage transition: %v -> %v", p.Stage, to))
}
