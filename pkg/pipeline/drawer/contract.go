// Package drawer exports the graph of a pipeline.
package drawer

import (
	"io"
	"time"

	"github.com/askiada/go-identicon/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStep adds a step to the pipeline drawer.
	AddStep(stepName string) error
	// AddLink adds a link between parent and children steps.
	AddLink(parentStepName, childrenStepName string) error
	// Draw writes the pipeline graph.
	Draw(wrt io.Writer) error
	// SetTotalTime sets the time elapsed since startTime as the label of the step.
	SetTotalTime(stepName string, startTime time.Time) error
	// AddMeasure labels the steps and links with the durations of msr.
	AddMeasure(msr measure.Measure) error
}
