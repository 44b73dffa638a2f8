package fuzz

// Failure records one sample the solver did not accept.
type Failure struct {
	// File is the sample's name inside the corpus directory.
	File string `json:"file"`
	// ExitCode is the solver's exit status; -1 when it was killed or never ran.
	ExitCode int `json:"exit_code"`
	// Err is set when the solver could not be run at all.
	Err string `json:"error,omitempty"`
}

// Report tallies a driver run. It is printed, never persisted.
type Report struct {
	Dir      string    `json:"dir"`
	Files    int       `json:"files"`
	Failures []Failure `json:"failures"`
}

// Failed reports whether any sample failed.
func (r *Report) Failed() bool { return len(r.Failures) > 0 }
