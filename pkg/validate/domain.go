package validate

import "regexp"

// RFC 1035 syntax, lowercased labels, at least one dot.
var domainNameRe = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)

const maxDomainNameLen = 253

func IsDomainName(s string) bool {
	if len(s) == 0 || len(s) > maxDomainNameLen {
		return false
	}
	return domainNameRe.MatchString(s)
}
