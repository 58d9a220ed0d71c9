// Package fetchstate adapts the one-shot projects read into an observable
// loading/success/failure state with manual retry.
package fetchstate

import "github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"

// State is one of Loading, Success or Failure.
type State interface {
	isState()
	// Kind names the variant: "loading", "success" or "failure".
	Kind() string
}

// Loading means a read is in flight and no result is held.
type Loading struct{}

// Success holds the collection of the last settled read.
type Success struct {
	Data []domain.Project
}

// Failure holds the error of the last settled read.
type Failure struct {
	Err *domain.FetchError
}

func (Loading) isState() {}
func (Success) isState() {}
func (Failure) isState() {}

func (Loading) Kind() string { return "loading" }
func (Success) Kind() string { return "success" }
func (Failure) Kind() string { return "failure" }

// Output is the flat view of a State consumed by renderers.
type Output struct {
	Data    []domain.Project
	Loading bool
	Error   *domain.FetchError
}

// OutputOf flattens s. Data is never nil.
func OutputOf(s State) Output {
	switch st := s.(type) {
	case Success:
		data := st.Data
		if data == nil {
			data = []domain.Project{}
		}
		return Output{Data: data}
	case Failure:
		return Output{Data: []domain.Project{}, Error: st.Err}
	default:
		return Output{Data: []domain.Project{}, Loading: true}
	}
}
