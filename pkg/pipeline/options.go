package pipeline

import "github.com/askiada/go-identicon/pkg/pipeline/model"

// StepOption configures a step.
type StepOption[O any] func(s *model.Step[O])

// StepConcurrency sets the number of goroutines running the step function.
func StepConcurrency[O any](concurrent int) StepOption[O] {
	return func(s *model.Step[O]) {
		s.Details.Concurrent = concurrent
	}
}

// SplitterOption configures a splitter.
type SplitterOption[I any] func(s *Splitter[I])

// SplitterBufferSize sets the size of the buffer of every branch.
func SplitterBufferSize[I any](bufferSize int) SplitterOption[I] {
	return func(s *Splitter[I]) {
		s.bufferSize = bufferSize
	}
}
