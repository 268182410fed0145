package exploration

import (
	"encoding/json"
	"fmt"
)

// Wire types mirror the lesson JSON document layout.

type lessonDoc struct {
	ID               string              `json:"id"`
	Version          int                 `json:"version"`
	Title            string              `json:"title"`
	InitialStateName string              `json:"initial_state_name"`
	States           map[string]stateDoc `json:"states"`
}

type stateDoc struct {
	Content       string         `json:"content"`
	Interaction   interactionDoc `json:"interaction"`
	LinkedSkillID string         `json:"linked_skill_id"`
}

type interactionDoc struct {
	ID                string            `json:"id"`
	CustomizationArgs map[string]string `json:"customization_args"`
	AnswerGroups      []answerGroupDoc  `json:"answer_groups"`
	DefaultOutcome    outcomeDoc        `json:"default_outcome"`
	Hints             []hintDoc         `json:"hints"`
	Solution          *solutionDoc      `json:"solution"`
}

type answerGroupDoc struct {
	Rules   []ruleDoc  `json:"rules"`
	Outcome outcomeDoc `json:"outcome"`
}

type ruleDoc struct {
	Type  string `json:"type"`
	Input string `json:"input"`
}

type outcomeDoc struct {
	Dest              string `json:"dest"`
	Feedback          string `json:"feedback"`
	LabelledAsCorrect bool   `json:"labelled_as_correct"`
}

type hintDoc struct {
	Text string `json:"text"`
}

type solutionDoc struct {
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// Decode validates raw lesson JSON, deserializes it, and checks graph
// consistency: the initial state exists and every outcome destination
// names a defined state.
func Decode(raw []byte) (*Exploration, error) {
	if err := validateLessonJSON(raw); err != nil {
		return nil, fmt.Errorf("validate lesson: %w", err)
	}

	var doc lessonDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode lesson: %w", err)
	}

	exp := &Exploration{
		ID:            doc.ID,
		Version:       doc.Version,
		Title:         doc.Title,
		InitStateName: doc.InitialStateName,
		States:        make(map[string]State, len(doc.States)),
	}

	for name, sd := range doc.States {
		in := Interaction{
			ID:                sd.Interaction.ID,
			CustomizationArgs: sd.Interaction.CustomizationArgs,
			DefaultOutcome:    outcomeFromDoc(sd.Interaction.DefaultOutcome),
		}
		for _, gd := range sd.Interaction.AnswerGroups {
			group := AnswerGroup{Outcome: outcomeFromDoc(gd.Outcome)}
			for _, rd := range gd.Rules {
				group.Rules = append(group.Rules, RuleSpec{Type: rd.Type, Input: rd.Input})
			}
			in.AnswerGroups = append(in.AnswerGroups, group)
		}
		for _, hd := range sd.Interaction.Hints {
			in.Hints = append(in.Hints, Hint{Text: hd.Text})
		}
		if sd.Interaction.Solution != nil {
			in.Solution = &Solution{
				CorrectAnswer: sd.Interaction.Solution.CorrectAnswer,
				Explanation:   sd.Interaction.Solution.Explanation,
			}
		}

		exp.States[name] = State{
			Name:          name,
			Content:       sd.Content,
			Interaction:   in,
			LinkedSkillID: sd.LinkedSkillID,
		}
	}

	if err := validateGraph(exp); err != nil {
		return nil, fmt.Errorf("validate lesson graph: %w", err)
	}
	return exp, nil
}

func outcomeFromDoc(od outcomeDoc) Outcome {
	return Outcome{
		Dest:              od.Dest,
		Feedback:          od.Feedback,
		LabelledAsCorrect: od.LabelledAsCorrect,
	}
}

// validateGraph checks referential integrity of the decoded graph.
func validateGraph(exp *Exploration) error {
	if _, ok := exp.States[exp.InitStateName]; !ok {
		return fmt.Errorf("initial state %q not defined", exp.InitStateName)
	}

	checkDest := func(stateName string, o Outcome) error {
		if o.Dest == "" || o.Dest == stateName {
			return nil
		}
		if _, ok := exp.States[o.Dest]; !ok {
			return fmt.Errorf("state %q routes to undefined state %q", stateName, o.Dest)
		}
		return nil
	}

	for name, s := range exp.States {
		if err := checkDest(name, s.Interaction.DefaultOutcome); err != nil {
			return err
		}
		for _, g := range s.Interaction.AnswerGroups {
			if err := checkDest(name, g.Outcome); err != nil {
				return err
			}
		}
	}
	return nil
}
