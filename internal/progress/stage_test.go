package progress

import "testing"

func TestStageString(t *testing.T) {
	tests := []struct {
		stage PlayStage
		want  string
	}{
		{StageNotPlaying, "not-playing"},
		{StageLoadingLesson, "loading-lesson"},
		{StageViewingState, "viewing-state"},
		{StageSubmittingAnswer, "submitting-answer"},
		{PlayStage(42), "PlayStage(42)"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.stage), got, tt.want)
		}
	}
}

func TestAdvanceStageAllowedPaths(t *testing.T) {
	p := &ExplorationProgress{Stage: StageNotPlaying}

	p.advanceStage(StageLoadingLesson)
	p.advanceStage(StageViewingState)
	p.advanceStage(StageSubmittingAnswer)
	p.advanceStage(StageViewingState)
	p.advanceStage(StageNotPlaying)

	if p.Stage != StageNotPlaying {
		t.Errorf("stage = %v, want not-playing", p.Stage)
	}
}

func TestAdvanceStagePanicsOnIllegalTransition(t *testing.T) {
	tests := []struct {
		name string
		from PlayStage
		to   PlayStage
	}{
		{"skip loading", StageNotPlaying, StageViewingState},
		{"submit while loading", StageLoadingLesson, StageSubmittingAnswer},
		{"view to view", StageViewingState, StageViewingState},
		{"submit straight to load", StageSubmittingAnswer, StageLoadingLesson},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %v -> %v", tt.from, tt.to)
				}
			}()
			p := &ExplorationProgress{Stage: tt.from}
			p.advanceStage(tt.to)
		})
	}
}
