// Package search turns free text into a question filter.
package search

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinTokenLength is the shortest token that takes part in a search.
const MinTokenLength = 3

// Fields are the question columns every token is matched against.
var Fields = []string{"questions.title", "questions.description"}

// Filter is a WHERE clause with its positional arguments.
type Filter struct {
	Clause string
	Args   []any
}

// Empty reports whether no token survived tokenisation.
func (f Filter) Empty() bool {
	return f.Clause == ""
}

// Tokens splits text on whitespace and drops tokens shorter than
// MinTokenLength runes.
func Tokens(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) >= MinTokenLength {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// Build returns one case-insensitive substring predicate per token and
// field, all joined with OR. dialect is the gorm dialector name.
func Build(text, dialect string) Filter {
	var conditions []string
	var args []any

	for _, token := range Tokens(text) {
		pattern := "%" + escapeLike(strings.ToLower(token)) + "%"
		for _, field := range Fields {
			conditions = append(conditions, predicate(field, dialect))
			args = append(args, pattern)
		}
	}

	if len(conditions) == 0 {
		return Filter{}
	}
	return Filter{Clause: strings.Join(conditions, " OR "), Args: args}
}

func predicate(field, dialect string) string {
	switch dialect {
	case "postgres":
		return fmt.Sprintf(`%s ILIKE ? ESCAPE '\'`, field)
	case "mysql":
		// backslash is already MySQL's LIKE escape character
		return fmt.Sprintf("LOWER(%s) LIKE ?", field)
	default:
		return fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, field)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
