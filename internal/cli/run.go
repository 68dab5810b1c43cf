package cli

import (
	"io"
	"os"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Path        string
	Debug       bool
	NoColor     bool
	LogFormat   string
	Output      string // "-" writes the collected data to Stdout
	MetricsFile string
	Trace       bool
	NoBanner    bool
	Markdown    bool
	Context     string // Raw JSON object
	JSON        bool
	ResultsDir  string

	// Streams default to the process stdio when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o RunOptions) streams() (io.Reader, io.Writer, io.Writer) {
	in, out, errw := o.Stdin, o.Stdout, o.Stderr
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	return in, out, errw
}
