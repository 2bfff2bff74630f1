package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const emailLookupTimeout = 3 * time.Second

// Resolver is the part of *net.Resolver used to check e-mail domains.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// IsEmailDomainValid checks the domain of email against the system resolver.
func IsEmailDomainValid(email string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), emailLookupTimeout)
	defer cancel()
	return EmailDomainResolves(ctx, net.DefaultResolver, email)
}

// EmailDomainResolves accepts a domain with an MX record, or failing that an
// address record.
func EmailDomainResolves(ctx context.Context, r Resolver, email string) bool {
	_, domain, ok := strings.Cut(email, "@")
	domain = strings.TrimSuffix(strings.ToLower(domain), ".")
	if !ok || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	addrs, err := r.LookupIPAddr(ctx, domain)
	return err == nil && len(addrs) > 0
}
