package profile

import (
	"fmt"
	"sort"
	"strings"
)

// MatchCurrent returns the first profile whose auth token and base URL both
// equal the values reported by getenv (typically os.Getenv). It returns nil
// when no saved profile matches the live environment.
func MatchCurrent(profiles []Profile, getenv func(string) string) *Profile {
	token := getenv(EnvAuthToken)
	baseURL := getenv(EnvBaseURL)
	if token == "" && baseURL == "" {
		return nil
	}
	for i := range profiles {
		if profiles[i].Env[EnvAuthToken] == token && profiles[i].Env[EnvBaseURL] == baseURL {
			return &profiles[i]
		}
	}
	return nil
}

// ExportStatements renders the profile's env map as shell export
// statements, one per line, in sorted key order for stable output.
func ExportStatements(p *Profile) string {
	keys := make([]string, 0, len(p.Env))
	for k := range p.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "export %s=%s\n", k, shellQuote(p.Env[k]))
	}
	return b.String()
}

// shellQuote single-quotes a value for POSIX shells, escaping embedded
// single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
