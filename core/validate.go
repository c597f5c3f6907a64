package core

import "regexp"

// emailShape is a cheap local@domain.tld shape filter, not full RFC
// validation: word segments separated by single '.' or '-', one '@', and a
// 2-3 character final domain segment.
var emailShape = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// registrationInvalid reports whether registration input fails the shape
// checks: name over 300 characters, password under 6 characters, or an
// email that does not look like an address.
func registrationInvalid(name, email, password string) bool {
	return len(name) > 300 || len(password) < 6 || !emailShape.MatchString(email)
}
