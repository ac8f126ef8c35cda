package parg

import (
	"fmt"
	"strings"
)

// Usage renders the help text: the application description, a one-line
// usage signature enumerating every flag, and one line per argument with
// its description and formatted default. Arguments appear in name order
// and a --help line is always appended. Usage only formats; it never
// touches parse state.
func (c *CLI) Usage() string {
	var b strings.Builder

	if c.appDescription != "" {
		b.WriteString(c.appDescription)
		b.WriteByte('\n')
	}
	b.WriteString("Usage:\n")
	b.WriteString(c.appName)
	for _, name := range c.names {
		if c.args[name].hasValue {
			fmt.Fprintf(&b, " --%s <value>", name)
		} else {
			fmt.Fprintf(&b, " --%s", name)
		}
	}
	b.WriteString("\n\nArguments:\n")
	for _, name := range c.names {
		arg := c.args[name]
		if arg.hasValue {
			fmt.Fprintf(&b, "--%s <value>    %s (default: %s)\n", name, arg.description, arg.formatDefault())
		} else {
			fmt.Fprintf(&b, "--%s    %s (default: )\n", name, arg.description)
		}
	}
	b.WriteString("--help    print this usage text and exit (default: )\n")

	return b.String()
}
