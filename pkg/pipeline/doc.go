// Package pipeline provides a pipeline for processing data.
//
// The pipeline package offers a convenient way to process data using a series of steps. Each step in the pipeline
// performs a specific operation on the data and passes it to the next step through a channel. A root step feeds the
// pipeline, sinks consume it and a splitter copies every element to several branches.
//
// A step can run many goroutines at once (see StepConcurrency), in which case the order of the elements is not kept.
//
// The pipeline stops on the first error: the context given to every step is cancelled and Run returns the error,
// prefixed by the name of the step that failed.
//
// Options implementing model.PipelineOption observe every step. The measure and drawer packages use them to time
// the steps and to export the pipeline as a Graphviz file.
package pipeline
