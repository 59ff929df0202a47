package config

import (
	"net/netip"
	"strings"
	"time"
)

type SecurityConfig interface {
	GetSessionSecret() string
	GetSessionMaxAge() time.Duration
	GetLogoutOnExpiredToken() bool
	GetAuthRateLimitPerMinute() int
	GetTrustedProxies() TrustedProxies
}

type Security struct{}

var _ SecurityConfig = Security{}

// GetSessionSecret seals the session cookies. An empty secret makes the server generate one per process.
func (Security) GetSessionSecret() string {
	return GetEnv("SESSION_SECRET", "")
}

func (Security) GetSessionMaxAge() time.Duration {
	return GetEnvDuration("SESSION_MAX_AGE", 30*24*time.Hour)
}

// GetLogoutOnExpiredToken enables proactive logout when the stored JWT has passed its exp claim.
// Off by default: the backend decides whether a token is still valid.
func (Security) GetLogoutOnExpiredToken() bool {
	return GetEnvBool("LOGOUT_ON_EXPIRED_TOKEN", false)
}

func (Security) GetAuthRateLimitPerMinute() int {
	return GetEnvInt("RATE_LIMIT_AUTH_PER_MIN", 30)
}

// TrustedProxies are the peers whose X-Forwarded-For header is believed
type TrustedProxies []netip.Prefix

func (t TrustedProxies) Contains(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range t {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// GetTrustedProxies reads a comma separated TRUSTED_PROXIES list of addresses or CIDR ranges.
// Entries that do not parse are skipped. Empty means no proxy is trusted.
func (Security) GetTrustedProxies() TrustedProxies {
	var proxies TrustedProxies
	for _, entry := range strings.Split(GetEnv("TRUSTED_PROXIES", ""), ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			proxies = append(proxies, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			addr = addr.Unmap()
			proxies = append(proxies, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return proxies
}
