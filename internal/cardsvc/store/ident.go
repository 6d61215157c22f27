package store

import "regexp"

// identPattern allows word characters only. Anything else (quotes, dots,
// spaces, semicolons) is unsafe to compose into SQL text.
var identPattern = regexp.MustCompile(`^\w+$`)

// ValidIdentifier reports whether name is safe to interpolate into a SQL
// statement as a table or schema name.
func ValidIdentifier(name string) bool {
	return identPattern.MatchString(name)
}

// SanitizeIdentifier returns name when it is a safe identifier, otherwise
// fallback. Data values never go through here, they are always bound
// parameters.
func SanitizeIdentifier(name, fallback string) string {
	if ValidIdentifier(name) {
		return name
	}
	return fallback
}
