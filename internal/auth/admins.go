package auth

import "strings"

// AdminList is the configured set of emails that are granted the admin role.
// Matching is case-insensitive on trimmed addresses. The list is resolved once
// at startup and passed in; it is never re-read from the environment.
type AdminList struct {
	emails map[string]struct{}
}

func NewAdminList(emails []string) *AdminList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = NormalizeEmail(e)
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return &AdminList{emails: set}
}

// Contains reports whether email is on the allow-list.
func (l *AdminList) Contains(email string) bool {
	_, ok := l.emails[NormalizeEmail(email)]
	return ok
}

// NormalizeEmail lowercases and trims an address for comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
