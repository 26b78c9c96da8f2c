package runner

import "strings"

// Call records one command execution for test verification.
type Call struct {
	Dir         string
	Name        string
	Args        []string
	Interactive bool
}

// Double is an in-memory Runner test double. It records every call and
// never spawns a process. Outputs and Fail are keyed by the full
// command line ("git status --porcelain") or, as a fallback, by the
// command name alone.
type Double struct {
	Calls   []Call
	Outputs map[string][]byte
	Fail    map[string]error
}

// NewDouble creates a new recording Runner test double.
func NewDouble() *Double {
	return &Double{
		Outputs: make(map[string][]byte),
		Fail:    make(map[string]error),
	}
}

// Ensure Double implements Runner
var _ Runner = (*Double)(nil)

func (d *Double) Run(dir, name string, args ...string) error {
	d.Calls = append(d.Calls, Call{Dir: dir, Name: name, Args: args})
	return d.err(name, args)
}

func (d *Double) Output(dir, name string, args ...string) ([]byte, error) {
	d.Calls = append(d.Calls, Call{Dir: dir, Name: name, Args: args})
	if err := d.err(name, args); err != nil {
		return nil, err
	}
	if out, ok := d.Outputs[key(name, args)]; ok {
		return out, nil
	}
	return d.Outputs[name], nil
}

func (d *Double) RunInteractive(dir, name string, args ...string) error {
	d.Calls = append(d.Calls, Call{Dir: dir, Name: name, Args: args, Interactive: true})
	return d.err(name, args)
}

// CommandLines returns every recorded call as a joined command line,
// in order. Convenient for sequence assertions.
func (d *Double) CommandLines() []string {
	lines := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		lines[i] = key(c.Name, c.Args)
	}
	return lines
}

func (d *Double) err(name string, args []string) error {
	if err, ok := d.Fail[key(name, args)]; ok {
		return err
	}
	return d.Fail[name]
}

func key(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
