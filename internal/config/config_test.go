package config_test

import (
	"net/netip"
	"testing"
	"time"

	"github.com/jrsteele09/go-wallet-web/internal/config"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	for _, v := range []string{"PORT", "APP_NAME", "ENV", "API_BASE_URL", "API_BASE_PATH", "API_TIMEOUT", "LOGOUT_ON_EXPIRED_TOKEN", "CHECKOUT_CURRENCY"} {
		t.Setenv(v, "")
	}
	c := config.New()

	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "PayFlow Wallet", c.GetAppName())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, "http://localhost:8081", c.GetAPIBaseURL())
	require.Equal(t, "/api", c.GetAPIBasePath())
	require.Equal(t, time.Duration(0), c.GetAPITimeout())
	require.False(t, c.GetLogoutOnExpiredToken())
	require.Equal(t, "INR", c.GetCheckoutCurrency())
	require.Equal(t, "#e91e63", c.GetCheckoutThemeColor())
}

func TestConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("API_BASE_URL", "https://wallet.example.com/")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("LOGOUT_ON_EXPIRED_TOKEN", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	c := config.New()

	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, "https://wallet.example.com", c.GetAPIBaseURL())
	require.Equal(t, 5*time.Second, c.GetAPITimeout())
	require.True(t, c.GetLogoutOnExpiredToken())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("https://b.example.com"))
	require.False(t, c.GetAllowedOrigins().IsAllowedOrigin("https://c.example.com"))
}

func TestConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_AUTH_PER_MIN", "many")
	t.Setenv("DISPLAY_TIMEZONE", "Not/AZone")
	c := config.New()

	require.Equal(t, time.Duration(0), c.GetAPITimeout())
	require.Equal(t, 30, c.GetAuthRateLimitPerMinute())
	require.Equal(t, time.Local, c.GetDisplayLocation())
}

func TestConfig_TrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.7, not-an-ip")
	proxies := config.New().GetTrustedProxies()

	require.Len(t, proxies, 2)
	require.True(t, proxies.Contains(netip.MustParseAddr("10.1.2.3")))
	require.True(t, proxies.Contains(netip.MustParseAddr("192.0.2.7")))
	require.True(t, proxies.Contains(netip.MustParseAddr("::ffff:192.0.2.7")))
	require.False(t, proxies.Contains(netip.MustParseAddr("192.0.2.8")))

	t.Setenv("TRUSTED_PROXIES", "")
	require.Empty(t, config.New().GetTrustedProxies())
}
