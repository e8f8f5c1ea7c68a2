package copcurve

// Point is one (load %, COP) sample of the de-rating curve.
type Point struct {
	LoadPercent int     `json:"load_percent"`
	COP         float64 `json:"cop"`
}

type Input struct {
	COP float64 `json:"cop"`
	// Defaults to 25/50/75/100 when empty.
	LoadPercents []int `json:"load_percents,omitempty"`
}

type Result struct {
	Points []Point `json:"points"`
}

// DefaultLoadPercents are the chart's standard sample points.
var DefaultLoadPercents = []int{25, 50, 75, 100}

// Calculate evaluates the linear de-rating model
// cop(load) = cop * (1 - 0.1*(1 - load/100)) per point. Each point is
// independent; full load returns the input COP unchanged.
func Calculate(in Input) Result {
	loads := in.LoadPercents
	if len(loads) == 0 {
		loads = DefaultLoadPercents
	}
	points := make([]Point, 0, len(loads))
	for _, l := range loads {
		derated := in.COP * (1 - 0.1*(1-float64(l)/100))
		points = append(points, Point{LoadPercent: l, COP: derated})
	}
	return Result{Points: points}
}
