package shell

import "strings"

// tokenDelimiters is the historical strtok set: whitespace plus the
// terminal bell character.
const tokenDelimiters = " \t\r\n\a"

// SplitLine splits one raw input line into command tokens. Runs of
// delimiters collapse, so an empty or all-delimiter line yields no tokens.
// There is no quoting or escaping; token 0, if present, is the command
// name. Returned tokens are independent strings with no ties to the input
// line's storage.
func SplitLine(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r)
	})
}
