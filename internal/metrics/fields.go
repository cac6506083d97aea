package metrics

// Attribute keys shared by every instrument.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrOperation = "operation"
	AttrResult    = "result"
	AttrOutcome   = "outcome"
	AttrSource    = "source"
)

// ResultOK marks a provider attempt that returned data. Any other result
// value counts as a failed attempt.
const ResultOK = "ok"
