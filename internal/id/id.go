// Package id generates the short opaque identifiers used across the row
// tables. Player and session IDs are uppercased, survey IDs keep the
// lowercase UUID hex; both conventions are load-bearing for clients that
// pattern-match on the prefix.
package id

import (
	"strings"

	"github.com/google/uuid"
)

func short() string {
	return uuid.NewString()[:8]
}

func NewPlayerID() string {
	return "P" + strings.ToUpper(short())
}

func NewSessionID() string {
	return "S" + strings.ToUpper(short())
}

func NewPreSurveyID() string {
	return "PRE-" + short()
}

func NewPostSurveyID() string {
	return "POST-" + short()
}
