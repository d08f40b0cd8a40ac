package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Options is an ordered option list filled by the location loader.
type Options struct {
	values []string
}

// Append implements form.OptionList.
func (o *Options) Append(v string) { o.values = append(o.values, v) }

// Values returns a copy of the options in insertion order.
func (o *Options) Values() []string {
	cp := make([]string, len(o.values))
	copy(cp, o.values)
	return cp
}

// Len returns the number of options.
func (o *Options) Len() int { return len(o.values) }

// Print writes one numbered option per line, starting at 1.
func (o *Options) Print(w io.Writer) error {
	for i, v := range o.values {
		if _, err := fmt.Fprintf(w, "%3d) %s\n", i+1, v); err != nil {
			return err
		}
	}
	return nil
}

// Resolve maps user input to an option: a 1-based index or a case-insensitive
// name. Any other text is returned unchanged, the backend accepts free text.
func (o *Options) Resolve(input string) string {
	in := strings.TrimSpace(input)
	if n, err := strconv.Atoi(in); err == nil && n >= 1 && n <= len(o.values) {
		return o.values[n-1]
	}
	for _, v := range o.values {
		if strings.EqualFold(v, in) {
			return v
		}
	}
	return in
}
