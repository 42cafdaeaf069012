package insights

import "errors"

// ErrNoData means the user has no records relevant to the requested
// analysis. Callers render an empty state; it is never a server fault.
var ErrNoData = errors.New("no data available")

var ErrUnknownSymptomMetric = errors.New("unknown symptom metric")
