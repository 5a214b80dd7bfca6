package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailValid checks RFC 5322 shape plus a resolvable domain. The DNS
// lookup is best effort; an unresolvable domain rejects the address.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || at == len(addr.Address)-1 {
		return false
	}
	domain := addr.Address[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}
