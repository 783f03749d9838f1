package pipeline

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-identicon/pkg/pipeline/model"
)

// Splitter copies every element of its input to Total branches.
type Splitter[I any] struct {
	mu            sync.Mutex
	currIdx       int
	mainStep      *model.Step[I]
	splittedSteps []*model.Step[I]
	bufferSize    int
	Total         int
}

// Get returns the next branch. It returns false once every branch has been returned.
func (s *Splitter[I]) Get() (*model.Step[I], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currIdx >= len(s.splittedSteps) {
		return nil, false
	}
	step := s.splittedSteps[s.currIdx]
	s.currIdx++

	return step, true
}

func prepareSplitter[I any](pipe *Pipeline, input *model.Step[I], splitter *Splitter[I]) error {
	for _, opt := range pipe.opts {
		err := opt.PrepareSplitter(input.Details, splitter.mainStep.Details)
		if err != nil {
			return errors.Wrap(err, "unable to run before splitter function")
		}
	}

	return nil
}

func newSplitter[I any](name string, total int, opts ...SplitterOption[I]) *Splitter[I] {
	splitter := &Splitter[I]{
		Total: total,
		mainStep: &model.Step[I]{
			Details: &model.StepInfo{
				Type:       model.SplitterStepType,
				Name:       name,
				Concurrent: 1,
			},
		},
	}
	for _, opt := range opts {
		opt(splitter)
	}
	if splitter.bufferSize < 1 {
		splitter.bufferSize = 1
	}

	splitter.splittedSteps = make([]*model.Step[I], total)
	for i := range splitter.splittedSteps {
		// every branch is seen as the splitter by the next steps
		splitter.splittedSteps[i] = &model.Step[I]{
			Details: splitter.mainStep.Details,
			Output:  make(chan I),
		}
	}

	return splitter
}

// forward moves the elements of a buffer to its branch.
func forward[I any](pipe *Pipeline, buf <-chan I, branch *model.Step[I]) error {
	defer close(branch.Output)
	for elem := range buf {
		select {
		case <-pipe.ctx.Done():
			return pipe.ctx.Err()
		case branch.Output <- elem:
		}
	}

	return nil
}

func split[I any](pipe *Pipeline, input *model.Step[I], splitter *Splitter[I], buffers []chan I) error {
	for {
		startIter := time.Now()
		select {
		case <-pipe.ctx.Done():
			return pipe.ctx.Err()
		case entry, ok := <-input.Output:
			if !ok {
				return nil
			}
			startFn := time.Now()
			for _, buf := range buffers {
				select {
				case <-pipe.ctx.Done():
					return pipe.ctx.Err()
				case buf <- entry:
				}
			}
			endFn := time.Since(startFn)
			endIter := time.Since(startIter) - endFn

			for _, opt := range pipe.opts {
				err := opt.OnSplitterOutput(input.Details, splitter.mainStep.Details, endIter, endFn)
				if err != nil {
					return errors.Wrap(err, "unable to run on splitter output function")
				}
			}
		}
	}
}

// AddSplitter adds a step sending every element of input to total branches. Use Get to retrieve the branches.
// The elements are buffered per branch, so a slow branch only blocks the others once its buffer is full.
func AddSplitter[I any](pipe *Pipeline, name string, input *model.Step[I], total int, opts ...SplitterOption[I]) (*Splitter[I], error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}
	if input == nil {
		return nil, ErrInputMustBeSet
	}
	if total <= 0 {
		return nil, ErrSplitterTotal
	}

	splitter := newSplitter(name, total, opts...)
	err := prepareSplitter(pipe, input, splitter)
	if err != nil {
		return nil, err
	}

	buffers := make([]chan I, total)
	for i := range buffers {
		buffers[i] = make(chan I, splitter.bufferSize)
	}

	errC := make(chan error, total+1)
	wgrp := &sync.WaitGroup{}
	wgrp.Add(total)
	for i, buf := range buffers {
		localBuf := buf
		localBranch := splitter.splittedSteps[i]
		go func() {
			defer wgrp.Done()
			err := forward(pipe, localBuf, localBranch)
			if err != nil {
				errC <- err
			}
		}()
	}

	go func() {
		defer func() {
			for _, buf := range buffers {
				close(buf)
			}
			wgrp.Wait()
			close(errC)
		}()
		err := split(pipe, input, splitter, buffers)
		if err != nil {
			errC <- err
		}
	}()
	pipe.errcList.add(newErrorChan(name, errC))

	return splitter, nil
}
