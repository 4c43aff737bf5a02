package thumbs

import "fmt"

// Status is the terminal state of one asset's derivation.
type Status int

const (
	// StatusSkipped means the output already existed and was left alone.
	StatusSkipped Status = iota
	// StatusDecoded means the native decode chain produced the thumbnail.
	StatusDecoded
	// StatusToolConverted means the external conversion tool produced it.
	StatusToolConverted
	// StatusPlaceholder means a synthetic placeholder was emitted.
	StatusPlaceholder
	// StatusFailed means even placeholder synthesis failed; no artifact exists.
	StatusFailed
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusDecoded:
		return "decoded"
	case StatusToolConverted:
		return "tool-converted"
	case StatusPlaceholder:
		return "placeholder"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Result records what happened to one asset.
type Result struct {
	Source string
	Output string
	Status Status
	Err    error
}

// Summary aggregates per-asset results for one run. Placeholder and
// tool-converted outcomes are counted separately from clean decodes so
// decode failures stay visible, but all three complete the asset.
type Summary struct {
	Skipped       int
	Decoded       int
	ToolConverted int
	Placeholder   int
	Failed        int
}

func (s *Summary) add(r Result) {
	switch r.Status {
	case StatusSkipped:
		s.Skipped++
	case StatusDecoded:
		s.Decoded++
	case StatusToolConverted:
		s.ToolConverted++
	case StatusPlaceholder:
		s.Placeholder++
	case StatusFailed:
		s.Failed++
	}
}

// Completed returns the number of assets that ended with an artifact on
// disk, whatever strategy produced it.
func (s Summary) Completed() int {
	return s.Skipped + s.Decoded + s.ToolConverted + s.Placeholder
}

// Total returns the number of assets processed.
func (s Summary) Total() int {
	return s.Completed() + s.Failed
}
