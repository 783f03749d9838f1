package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-identicon/pkg/pipeline/model"
)

func (p *Pipeline) afterSink(step *model.StepInfo) error {
	for _, opt := range p.opts {
		err := opt.AfterSink(step, time.Since(p.startTime))
		if err != nil {
			return errors.Wrap(err, "unable to run after sink function")
		}
	}

	return nil
}

func runSink[I any](pipe *Pipeline, input *model.Step[I], step *model.StepInfo, sinkFn func(ctx context.Context, input I) error) error {
	for {
		startInputChan := time.Now()
		select {
		case <-pipe.ctx.Done():
			return pipe.ctx.Err()
		case in, ok := <-input.Output:
			if !ok {
				return pipe.afterSink(step)
			}
			endInputChan := time.Since(startInputChan)

			startFn := time.Now()
			err := sinkFn(pipe.ctx, in)
			if err != nil {
				return err
			}
			endFn := time.Since(startFn)

			for _, opt := range pipe.opts {
				err := opt.OnSinkOutput(input.Details, step, endInputChan, endFn)
				if err != nil {
					return errors.Wrap(err, "unable to run on sink output function")
				}
			}
		}
	}
}

// AddSink adds a step consuming input. sinkFn is called for every element, one at a time.
func AddSink[I any](pipe *Pipeline, name string, input *model.Step[I], sinkFn func(ctx context.Context, input I) error) error {
	if pipe == nil {
		return ErrPipelineMustBeSet
	}
	if input == nil {
		return ErrInputMustBeSet
	}
	step := &model.StepInfo{
		Type:       model.SinkStepType,
		Name:       name,
		Concurrent: 1,
	}
	for _, opt := range pipe.opts {
		err := opt.PrepareSink(input.Details, step)
		if err != nil {
			return errors.Wrap(err, "unable to run before sink function")
		}
	}

	errC := make(chan error, 1)
	go func() {
		defer close(errC)
		err := runSink(pipe, input, step, sinkFn)
		if err != nil {
			errC <- err
		}
	}()
	pipe.errcList.add(newErrorChan(name, errC))

	return nil
}
