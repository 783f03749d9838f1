package drawer

import (
	"fmt"
	"io"
	"math"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-identicon/internal/store"
	"github.com/askiada/go-identicon/pkg/pipeline/measure"
)

// DOTDrawer writes the pipeline graph in the Graphviz DOT language.
type DOTDrawer struct {
	graph graph.Graph[string, string]
	store store.StepStore[string, string]
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer() *DOTDrawer {
	stepStore := store.NewMemoryStore[string, string]()

	return &DOTDrawer{
		graph: graph.NewWithStore(graph.StringHash, graph.Store[string, string](stepStore), graph.Directed()),
		store: stepStore,
	}
}

// AddStep adds a step to the pipeline graph.
func (d *DOTDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between parent and children steps.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

// Draw writes the DOT description of the graph.
func (d *DOTDrawer) Draw(wrt io.Writer) error {
	err := dot(d.graph, wrt)
	if err != nil {
		return errors.Wrap(err, "unable to draw graph")
	}

	return nil
}

// SetTotalTime sets the total time for the step.
func (d *DOTDrawer) SetTotalTime(stepName string, startTime time.Time) error {
	err := d.store.UpdateVertex(stepName, func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = round(time.Since(startTime)).String()
	})
	if err != nil {
		return errors.Wrapf(err, "unable to update vertex %s", stepName)
	}

	return nil
}

const maxRGB = 240

// AddMeasure adds measure to drawer. Links are coloured from blue for the fastest to red for the slowest.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	allChanElapsed := make(map[time.Duration]string)
	sortedAllChanElapsed := []time.Duration{}

	for _, step := range msr.AllMetrics() {
		for _, info := range step.AVGTransportDuration() {
			if info.Elapsed == 0 {
				continue
			}
			if _, ok := allChanElapsed[info.Elapsed]; ok {
				continue
			}
			allChanElapsed[info.Elapsed] = ""
			sortedAllChanElapsed = append(sortedAllChanElapsed, info.Elapsed)
		}
	}

	if len(sortedAllChanElapsed) > 0 {
		sort.Slice(sortedAllChanElapsed, func(i, j int) bool {
			return sortedAllChanElapsed[i] > sortedAllChanElapsed[j]
		})

		maxValue := sortedAllChanElapsed[0]
		minValue := sortedAllChanElapsed[len(sortedAllChanElapsed)-1]

		for curr := range allChanElapsed {
			fraction := 1.0
			if maxValue > minValue {
				fraction = float64(curr-minValue) / float64(maxValue-minValue)
			}

			red := math.Round(maxRGB * fraction)
			blue := maxRGB - red

			edgeColor, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
			if err != nil {
				return errors.Wrap(err, "unable to get colour")
			}

			allChanElapsed[curr] = edgeColor.ToHEX().String()
		}
	}

	err := d.updateMetrics(msr, allChanElapsed)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *DOTDrawer) updateMetrics(msr measure.Measure, allChanElapsed map[time.Duration]string) error {
	for name, step := range msr.AllMetrics() {
		if _, err := d.graph.Vertex(name); err != nil {
			continue
		}

		label := ""
		if stepAvg := step.AVGDuration(); stepAvg != 0 {
			label = stepAvg.String()
		}
		if total := step.GetTotalDuration(); total > 0 {
			label += ", end: " + round(total).String()
		}
		if label != "" {
			err := d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
				p.Attributes["xlabel"] = label
			})
			if err != nil {
				return errors.Wrap(err, "unable to update vertex")
			}
		}

		for inputStep, info := range step.AVGTransportDuration() {
			if info.Elapsed == 0 {
				continue
			}

			err := d.graph.UpdateEdge(inputStep, name,
				graph.EdgeAttribute("label", info.Elapsed.String()),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", allChanElapsed[info.Elapsed]),
			)
			if err != nil {
				return errors.Wrapf(err, "unable to update edge from %s to %s", inputStep, name)
			}
		}
	}

	return nil
}

func round(d time.Duration) time.Duration {
	if d > time.Millisecond {
		return d.Round(time.Millisecond)
	}

	return d.Round(time.Microsecond)
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute sets a top level attribute of the DOT graph.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	// map order is random, the output is not
	vertices := make([]K, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}
	sort.Slice(vertices, func(i, j int) bool {
		return fmt.Sprint(vertices[i]) < fmt.Sprint(vertices[j])
	})

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		attributes := make(map[string]string, len(sourceProperties.Attributes))
		htmlAttributes := make(map[string]string)
		for k, v := range sourceProperties.Attributes {
			if k == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, v)

				continue
			}
			attributes[k] = v
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: attributes,
			HTMLAttributes:   htmlAttributes,
		})

		adjacencies := adjacencyMap[vertex]
		targets := make([]K, 0, len(adjacencies))
		for target := range adjacencies {
			targets = append(targets, target)
		}
		sort.Slice(targets, func(i, j int) bool {
			return fmt.Sprint(targets[i]) < fmt.Sprint(targets[j])
		})

		for _, target := range targets {
			edge := adjacencies[target]
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         target,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
