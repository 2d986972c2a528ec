package store

import (
	"fmt"
	"strings"
	"time"
)

// CallLogFilter narrows call log scans. Every set predicate must hold; Keywords matches when
// either the transcript or the summary contains it. Text predicates are case-insensitive
// literal substring matches.
type CallLogFilter struct {
	Phone    string
	Intent   string
	Keywords string
	Start    *time.Time
	End      *time.Time
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// where renders the filter as a WHERE clause whose placeholders continue after args.
func (f CallLogFilter) where(args []interface{}) (string, []interface{}) {
	var conditions []string

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Phone != "" {
		conditions = append(conditions, "caller_phone ILIKE "+next(containsPattern(f.Phone)))
	}
	if f.Intent != "" {
		conditions = append(conditions, "caller_intent ILIKE "+next(containsPattern(f.Intent)))
	}
	if f.Keywords != "" {
		p := next(containsPattern(f.Keywords))
		conditions = append(conditions, fmt.Sprintf("(transcript ILIKE %s OR summary ILIKE %s)", p, p))
	}
	if f.Start != nil {
		conditions = append(conditions, "created_at >= "+next(f.Start.UTC()))
	}
	if f.End != nil {
		conditions = append(conditions, "created_at <= "+next(f.End.UTC()))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
