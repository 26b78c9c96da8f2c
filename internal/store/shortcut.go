// Package store persists the shortcut map backing the projexts CLI.
package store

// Shortcut associates a project name with a runnable command and its
// default arguments. The JSON field names are the on-disk format and
// must not change.
type Shortcut struct {
	Name    string   `json:"project_name"`
	Command string   `json:"run_command"`
	Args    []string `json:"args,omitempty"`
}

// CommandLine returns the command followed by the stored arguments.
func (s Shortcut) CommandLine() []string {
	return append([]string{s.Command}, s.Args...)
}
