// Helpers for use with the flag package.
package flagutils

import "strings"

// A repeatable string flag. Each occurrence on the command line appends
// another value.
type SliceFlag []string

func (f *SliceFlag) String() string {
	if f == nil {
		return ""
	}

	return strings.Join(*f, ",")
}

func (f *SliceFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}
