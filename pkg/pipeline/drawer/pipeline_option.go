package drawer

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-identicon/pkg/pipeline/measure"
	"github.com/askiada/go-identicon/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	fileName  string
	startTime time.Time
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(model.StartStep.Details.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep.Details.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) addChild(parentStep, step *model.StepInfo) error {
	err := pd.AddStep(step.Name)
	if err != nil {
		return err
	}

	return pd.AddLink(parentStep.Name, step.Name)
}

func (pd *pipelineDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	return pd.addChild(parentStep, step)
}

func (pd *pipelineDrawer) PrepareSplitter(parentStep, splitterStep *model.StepInfo) error {
	return pd.addChild(parentStep, splitterStep)
}

func (pd *pipelineDrawer) PrepareSink(parentStep, step *model.StepInfo) error {
	err := pd.addChild(parentStep, step)
	if err != nil {
		return err
	}

	return pd.AddLink(step.Name, model.EndStep.Details.Name)
}

func (pd *pipelineDrawer) Finish() error {
	if pd.m != nil {
		err := pd.SetTotalTime(model.EndStep.Details.Name, pd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	file, err := os.Create(pd.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", pd.fileName)
	}
	defer file.Close()

	err = pd.Draw(file)
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return errors.Wrapf(file.Close(), "unable to close file %s", pd.fileName)
}

func (pd *pipelineDrawer) OnStepOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) OnSplitterOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) OnSinkOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) AfterSink(step *model.StepInfo, totalDuration time.Duration) error {
	return nil
}

// PipelineDrawer returns a pipeline option writing the graph of the pipeline to fileName once it is finished.
// When msr is not nil the steps are labelled with their durations.
func PipelineDrawer(drawer Drawer, msr measure.Measure, fileName string) model.PipelineOption {
	return &pipelineDrawer{
		Drawer:    drawer,
		m:         msr,
		fileName:  fileName,
		startTime: time.Now(),
	}
}
