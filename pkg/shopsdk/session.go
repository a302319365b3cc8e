package shopsdk

import "strings"

// Session is an authenticated view of the backend. It is immutable once
// created and safe for concurrent use.
type Session struct {
	client     *SDKClient
	credential string
}

// Credential returns the raw credential the session was created with.
func (s *Session) Credential() string {
	return s.credential
}

// authorization returns the Authorization header value. The backend issues
// tokens that may already carry the "Bearer " prefix; those are sent as-is.
func (s *Session) authorization() string {
	if len(s.credential) > 7 && strings.EqualFold(s.credential[:7], "bearer ") {
		return s.credential
	}
	return "Bearer " + s.credential
}
