package exploration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrLessonNotFound indicates no lesson exists for the requested id.
type ErrLessonNotFound struct {
	LessonID string
}

func (e *ErrLessonNotFound) Error() string {
	return fmt.Sprintf("lesson %q not found", e.LessonID)
}

// Retriever loads lesson graphs by id. Implementations may be slow
// (disk, network); callers must not hold locks across a call.
type Retriever interface {
	LoadExploration(ctx context.Context, lessonID string) (*Exploration, error)
}

// DirRetriever loads lessons from pre-authored JSON files in a directory,
// one file per lesson named <lessonID>.json.
type DirRetriever struct {
	dir string
}

// NewDirRetriever creates a retriever rooted at dir.
func NewDirRetriever(dir string) *DirRetriever {
	return &DirRetriever{dir: dir}
}

func (r *DirRetriever) LoadExploration(ctx context.Context, lessonID string) (*Exploration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.dir, lessonID+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ErrLessonNotFound{LessonID: lessonID}
		}
		return nil, fmt.Errorf("read lesson file: %w", err)
	}

	exp, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("load lesson %q: %w", lessonID, err)
	}
	if exp.ID != lessonID {
		return nil, fmt.Errorf("lesson file %s declares id %q, want %q", path, exp.ID, lessonID)
	}
	return exp, nil
}
