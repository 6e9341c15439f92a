package organizer

// ProgressFunc observes the move loop. It is invoked synchronously before
// each attempt with the number of files processed so far, the total, and the
// current file's base name. It must not block; its outcome never alters the
// loop.
type ProgressFunc func(processed, total int, name string)

// File statuses reported in per-category detail.
const (
	StatusMoved  = "moved"
	StatusFailed = "failed"
)

// FileStatus describes the outcome for one file.
type FileStatus struct {
	Name      string
	FinalPath string
	Status    string
	Error     string
}

// CategoryResult aggregates outcomes within one category.
type CategoryResult struct {
	Moved  int
	Failed int
	Files  []FileStatus
}

// Result is the outcome of one organize run. Per-file failures live here as
// data; the run itself still completed.
type Result struct {
	Total      int
	Moved      int
	Failed     int
	Categories map[string]*CategoryResult
	Errors     []string
}

// Empty reports whether the run found nothing to organize.
func (r *Result) Empty() bool {
	return r == nil || r.Total == 0
}

// UndoResult is the outcome of an undo pass.
type UndoResult struct {
	Total    int
	Restored int
	Failed   int
	Errors   []string
}
