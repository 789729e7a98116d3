package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address's domain is actually
// routable before an account is created: an MX record, or failing
// that, a resolvable host.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if records, err := net.LookupMX(domain); err == nil && len(records) > 0 {
		return true
	}

	addrs, err := net.LookupIP(domain)
	return err == nil && len(addrs) > 0
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
