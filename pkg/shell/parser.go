package shell

import "strings"

// Command is one parsed input line.
type Command struct {
	Name string
	Args []string
}

// Parse splits line on whitespace into a command name and its arguments.
// There is no quoting or escaping. ok is false for an empty or blank line.
func Parse(line string) (cmd Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{Name: fields[0], Args: fields[1:]}, true
}
