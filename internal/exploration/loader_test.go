package exploration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fractionsLesson = `{
	"id": "fractions-101",
	"version": 2,
	"title": "Introduction to Fractions",
	"initial_state_name": "Intro",
	"states": {
		"Intro": {
			"content": "What is 1/2 + 1/4?",
			"interaction": {
				"id": "TextInput",
				"answer_groups": [
					{
						"rules": [{"type": "Equals", "input": "3/4"}],
						"outcome": {"dest": "Wrap", "feedback": "Correct!", "labelled_as_correct": true}
					}
				],
				"default_outcome": {"dest": "Intro", "feedback": "Try again."},
				"hints": [{"text": "Find a common denominator."}],
				"solution": {"correct_answer": "3/4", "explanation": "2/4 + 1/4 = 3/4."}
			},
			"linked_skill_id": "skill-fractions-add"
		},
		"Wrap": {
			"content": "Well done!",
			"interaction": {
				"id": "EndExploration",
				"default_outcome": {"dest": "Wrap"}
			}
		}
	}
}`

func TestDecodeValidLesson(t *testing.T) {
	exp, err := Decode([]byte(fractionsLesson))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if exp.ID != "fractions-101" {
		t.Errorf("id = %q, want fractions-101", exp.ID)
	}
	if exp.Version != 2 {
		t.Errorf("version = %d, want 2", exp.Version)
	}
	if exp.InitStateName != "Intro" {
		t.Errorf("initial state = %q, want Intro", exp.InitStateName)
	}
	if len(exp.States) != 2 {
		t.Fatalf("states = %d, want 2", len(exp.States))
	}

	intro := exp.States["Intro"]
	if len(intro.Interaction.AnswerGroups) != 1 {
		t.Fatalf("answer groups = %d, want 1", len(intro.Interaction.AnswerGroups))
	}
	group := intro.Interaction.AnswerGroups[0]
	if group.Outcome.Dest != "Wrap" || group.Outcome.Feedback != "Correct!" || !group.Outcome.LabelledAsCorrect {
		t.Errorf("group outcome = %+v, want dest Wrap, correct", group.Outcome)
	}
	def := intro.Interaction.DefaultOutcome
	if def.Dest != "Intro" || def.Feedback != "Try again." || def.LabelledAsCorrect {
		t.Errorf("default outcome = %+v, want dest Intro, not correct", def)
	}
	if len(intro.Interaction.Hints) != 1 {
		t.Errorf("hints = %d, want 1", len(intro.Interaction.Hints))
	}
	if intro.Interaction.Solution == nil || intro.Interaction.Solution.CorrectAnswer != "3/4" {
		t.Errorf("solution = %+v, want correct answer 3/4", intro.Interaction.Solution)
	}
	if intro.LinkedSkillID != "skill-fractions-add" {
		t.Errorf("linked skill = %q", intro.LinkedSkillID)
	}

	wrap := exp.States["Wrap"]
	if !wrap.IsTerminal() {
		t.Error("expected Wrap to be terminal")
	}
	if intro.IsTerminal() {
		t.Error("expected Intro to be non-terminal")
	}
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing id", `{"version": 1, "title": "T", "initial_state_name": "A", "states": {"A": {"content": "c", "interaction": {"id": "EndExploration", "default_outcome": {"dest": "A"}}}}}`},
		{"empty states", `{"id": "x", "version": 1, "title": "T", "initial_state_name": "A", "states": {}}`},
		{"rule without input", `{"id": "x", "version": 1, "title": "T", "initial_state_name": "A", "states": {"A": {"content": "c", "interaction": {"id": "TextInput", "answer_groups": [{"rules": [{"type": "Equals"}], "outcome": {"dest": "A"}}], "default_outcome": {"dest": "A"}}}}}`},
		{"unknown field", `{"id": "x", "version": 1, "title": "T", "initial_state_name": "A", "bogus": true, "states": {"A": {"content": "c", "interaction": {"id": "EndExploration", "default_outcome": {"dest": "A"}}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.raw)); err == nil {
				t.Fatal("expected decode error")
			}
		})
	}
}

func TestDecodeRejectsBrokenGraph(t *testing.T) {
	missingInitial := `{
		"id": "x", "version": 1, "title": "T", "initial_state_name": "Nowhere",
		"states": {"A": {"content": "c", "interaction": {"id": "EndExploration", "default_outcome": {"dest": "A"}}}}
	}`
	if _, err := Decode([]byte(missingInitial)); err == nil {
		t.Fatal("expected error for undefined initial state")
	} else if !strings.Contains(err.Error(), "Nowhere") {
		t.Errorf("error %q does not name the missing state", err)
	}

	danglingDest := `{
		"id": "x", "version": 1, "title": "T", "initial_state_name": "A",
		"states": {"A": {"content": "c", "interaction": {"id": "TextInput", "default_outcome": {"dest": "Gone"}}}}
	}`
	if _, err := Decode([]byte(danglingDest)); err == nil {
		t.Fatal("expected error for undefined destination")
	}
}

func TestDirRetriever(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fractions-101.json"), []byte(fractionsLesson), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewDirRetriever(dir)
	ctx := context.Background()

	exp, err := r.LoadExploration(ctx, "fractions-101")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exp.Title != "Introduction to Fractions" {
		t.Errorf("title = %q", exp.Title)
	}

	_, err = r.LoadExploration(ctx, "no-such-lesson")
	var notFound *ErrLessonNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ErrLessonNotFound", err)
	}
	if notFound.LessonID != "no-such-lesson" {
		t.Errorf("lesson id = %q", notFound.LessonID)
	}
}

func TestDirRetrieverRejectsMismatchedID(t *testing.T) {
	dir := t.TempDir()
	// File name says one lesson, document declares another.
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(fractionsLesson), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewDirRetriever(dir)
	if _, err := r.LoadExploration(context.Background(), "other"); err == nil {
		t.Fatal("expected error when declared id does not match file name")
	}
}
