package model

// StepType is the kind of a step.
type StepType string

const (
	RootStepType     StepType = "root"
	NormalStepType   StepType = "step"
	SplitterStepType StepType = "splitter"
	SinkStepType     StepType = "sink"
)

// StepInfo describes a step to the pipeline options.
type StepInfo struct {
	Type       StepType
	Name       string
	Concurrent int
}

var (
	// StartStep is the virtual parent of every root step.
	StartStep = &Step[any]{Details: &StepInfo{Name: "start"}}
	// EndStep is the virtual child of every sink.
	EndStep = &Step[any]{Details: &StepInfo{Name: "end"}}
)

// Step is the output of a step. The next step reads from Output.
type Step[O any] struct {
	Output  chan O
	Details *StepInfo
}
