package ports

// ProgressObserver receives stage milestones during an analysis. It is purely
// observational.
type ProgressObserver interface {
	Progress(stage string, completed int)
}

type ProgressFunc func(stage string, completed int)

func (f ProgressFunc) Progress(stage string, completed int) {
	f(stage, completed)
}

// NoProgress discards every milestone.
var NoProgress ProgressObserver = ProgressFunc(func(string, int) {})
