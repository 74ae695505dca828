package instrument

// Descriptor declares which instrumentation an invocation wants and the
// label it reports under. It is read-only input to sink construction.
type Descriptor struct {
	// Category groups related operations, typically the service or
	// client the unit of work belongs to.
	Category string

	// Operation names the logical call within the category.
	Operation string

	// Timed records elapsed time per attempt into the duration timer.
	Timed bool

	// Logged emits structured lines around each attempt.
	Logged bool

	// Counted increments success/failure counters per attempt.
	Counted bool

	// Traced opens a span per attempt. Off unless requested.
	Traced bool
}

// NewDescriptor returns a descriptor with timing, logging, and counting
// enabled, labelled by category and operation.
func NewDescriptor(category, operation string) *Descriptor {
	return &Descriptor{
		Category:  category,
		Operation: operation,
		Timed:     true,
		Logged:    true,
		Counted:   true,
	}
}

// SpanName returns the deterministic span name for this operation.
// Format: invoke.<category>.<operation> or invoke.<operation>
func (d Descriptor) SpanName() string {
	if d.Category != "" {
		return "invoke." + d.Category + "." + d.Operation
	}
	return "invoke." + d.Operation
}
