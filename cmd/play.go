package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oppia/explord/internal/checkpoint"
	"github.com/oppia/explord/internal/exploration"
	"github.com/oppia/explord/internal/exploration/classify"
	"github.com/oppia/explord/internal/hints"
	"github.com/oppia/explord/internal/progress"
)

var playCmd = &cobra.Command{
	Use:   "play <lesson-id>",
	Short: "Play a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		lessonID := args[0]
		learnerID, _ := cmd.Flags().GetString("learner")
		lessonDir, _ := cmd.Flags().GetString("lessons")
		noSave, _ := cmd.Flags().GetBool("no-save")
		fresh, _ := cmd.Flags().GetBool("fresh")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}

		checkpoints := checkpoint.NewController(st.CheckpointRepo())

		// Resume from a saved checkpoint unless the learner asked for a
		// fresh start.
		var resume *progress.ExplorationCheckpoint
		if !fresh {
			cp, err := checkpoints.Retrieve(ctx, learnerID, lessonID)
			switch {
			case err == nil:
				resume = &cp
				fmt.Printf("Resuming %q at %q.\n\n", cp.LessonTitle, cp.PendingStateName)
			case isCheckpointNotFound(err):
			default:
				fmt.Fprintln(os.Stderr, "warning: could not read checkpoint:", err)
			}
		}

		ctrl, err := progress.NewController(progress.Config{
			Retriever:   exploration.NewDirRetriever(lessonDir),
			Classifier:  classify.New(),
			HintPolicy:  hints.NewPolicy(hints.DefaultConfig()),
			Checkpoints: checkpoints,
			Events:      events,
		})
		if err != nil {
			return fmt.Errorf("build session controller: %w", err)
		}

		err = ctrl.BeginSession(ctx, learnerID, "", "", lessonID, !noSave, resume)
		if err != nil {
			return fmt.Errorf("begin session: %w", err)
		}
		defer ctrl.Flush()

		return runPlayLoop(ctx, ctrl, bufio.NewScanner(os.Stdin), os.Stdout)
	},
}

func init() {
	playCmd.Flags().String("lessons", "lessons", "Directory containing lesson JSON files")
	playCmd.Flags().Bool("no-save", false, "Do not save partial progress")
	playCmd.Flags().Bool("fresh", false, "Ignore any saved checkpoint and start over")
}

func isCheckpointNotFound(err error) bool {
	var notFound *progress.ErrCheckpointNotFound
	return errors.As(err, &notFound)
}

// runPlayLoop drives one session over a line-oriented prompt until the
// lesson finishes or the learner quits.
func runPlayLoop(ctx context.Context, ctrl *progress.Controller, in *bufio.Scanner, out io.Writer) error {
	for {
		es, err := ctrl.CurrentEphemeralState(ctx)
		if err != nil {
			return fmt.Errorf("read session state: %w", err)
		}

		switch s := es.(type) {
		case progress.TerminalState:
			fmt.Fprintln(out, s.State.Content)
			fmt.Fprintln(out, "\nLesson complete!")
			return ctrl.EndSession(ctx)

		case progress.CompletedState:
			fmt.Fprintln(out, s.State.Content)
			for _, a := range s.Answers {
				marker := "x"
				if a.Correct {
					marker = "ok"
				}
				fmt.Fprintf(out, "  [%s] %s\n", marker, a.Answer)
			}
			fmt.Fprint(out, "(reviewing; :next to continue, :back for earlier) ")

		case progress.PendingState:
			fmt.Fprintln(out, s.State.Content)
			if s.HelpIndex.Kind == progress.HelpAvailableHint {
				fmt.Fprintln(out, "(a hint is available; type :hint)")
			}
			if s.HelpIndex.Kind == progress.HelpShowSolution {
				fmt.Fprintln(out, "(the solution is available; type :solution)")
			}
			fmt.Fprint(out, "> ")
		}

		if !in.Scan() {
			// EOF counts as quitting.
			fmt.Fprintln(out)
			endErr := ctrl.EndSession(ctx)
			if err := in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return endErr
		}
		line := strings.TrimSpace(in.Text())

		if strings.HasPrefix(line, ":") {
			if quit, err := handleCommand(ctx, ctrl, es, line, out); err != nil {
				fmt.Fprintln(out, err)
			} else if quit {
				return ctrl.EndSession(ctx)
			}
			continue
		}

		outcome, err := ctrl.SubmitAnswer(ctx, line)
		if err != nil {
			fmt.Fprintln(out, "Could not accept that answer:", err)
			continue
		}
		if outcome.Feedback != "" {
			fmt.Fprintln(out, outcome.Feedback)
		}
		if outcome.Correct && !outcome.Dest.SameState {
			// Step onto the next state right away; the completed view is
			// still reachable with :back.
			if err := ctrl.MoveToNextState(ctx); err != nil && !errors.Is(err, progress.ErrAtFrontier) {
				fmt.Fprintln(out, err)
			}
		}
		fmt.Fprintln(out)
	}
}

// handleCommand executes one colon command. It returns true when the
// learner asked to quit.
func handleCommand(ctx context.Context, ctrl *progress.Controller, es progress.EphemeralState, line string, out io.Writer) (bool, error) {
	switch line {
	case ":quit", ":q":
		return true, nil

	case ":back":
		if err := ctrl.MoveToPreviousState(ctx); err != nil {
			return false, err
		}

	case ":next":
		if err := ctrl.MoveToNextState(ctx); err != nil {
			return false, err
		}

	case ":hint":
		pending, ok := es.(progress.PendingState)
		if !ok {
			return false, errors.New("hints only apply to the question you are answering")
		}
		index := pending.HelpIndex.HintIndex
		if err := ctrl.RevealHint(ctx, index); err != nil {
			return false, err
		}
		fmt.Fprintln(out, "Hint:", pending.State.Interaction.Hints[index].Text)

	case ":solution":
		pending, ok := es.(progress.PendingState)
		if !ok {
			return false, errors.New("the solution only applies to the question you are answering")
		}
		if err := ctrl.RevealSolution(ctx); err != nil {
			return false, err
		}
		sol := pending.State.Interaction.Solution
		fmt.Fprintln(out, "Solution:", sol.CorrectAnswer)
		if sol.Explanation != "" {
			fmt.Fprintln(out, sol.Explanation)
		}

	default:
		return false, fmt.Errorf("unknown command %q (try :hint, :solution, :back, :next, :quit)", line)
	}
	return false, nil
}
