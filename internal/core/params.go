package core

// Parameter is a single effective setting a simulation reports for display.
type Parameter struct {
	Key   string
	Value string
}

// ParameterReporter is implemented by simulations that expose their effective
// configuration, shown in the status line and in headless run summaries.
type ParameterReporter interface {
	Parameters() []Parameter
}

// AntProvider is implemented by simulations that track a single mobile agent
// the renderer should mark on top of the cell it occupies.
type AntProvider interface {
	Ant() (Point, Heading)
}

// ChurnReporter is implemented by simulations that count cell births and
// deaths during the most recent step.
type ChurnReporter interface {
	Churn() (births, deaths int)
}
