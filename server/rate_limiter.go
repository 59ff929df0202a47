package server

import (
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jrsteele09/go-wallet-web/internal/config"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an idle client's limiter is kept
const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter throttles form submissions per client IP. A non-positive rate disables it.
type RateLimiter struct {
	perMinute int
	trusted   config.TrustedProxies
	now       func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

// NewRateLimiter keys clients on the connecting address. X-Forwarded-For is only read when the
// connection comes from one of trusted.
func NewRateLimiter(perMinute int, trusted config.TrustedProxies) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		trusted:   trusted,
		now:       time.Now,
		clients:   make(map[string]*clientLimiter),
	}
}

// Allow reports whether the client may make another attempt now
func (rl *RateLimiter) Allow(clientIP string) bool {
	if rl.perMinute <= 0 {
		return true
	}
	return rl.getOrCreate(clientIP).AllowN(rl.now(), 1)
}

func (rl *RateLimiter) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		if !rl.Allow(ip) {
			log.Warn().Str("client_ip", ip).Str("path", r.URL.Path).Msg("rate limit exceeded")
			retryAfter := 60 / rl.perMinute
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "Too many attempts. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// Len is the number of clients currently tracked
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *RateLimiter) getOrCreate(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > limiterIdleTTL {
		for key, cl := range rl.clients {
			if now.Sub(cl.lastAccess) > limiterIdleTTL {
				delete(rl.clients, key)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMinute)), rl.perMinute)}
		rl.clients[ip] = cl
	}
	cl.lastAccess = now
	return cl.limiter
}

// clientIP is the socket peer, unless the peer is a trusted proxy. Then the X-Forwarded-For chain
// is walked from the right and the first hop that is not itself a trusted proxy is used.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	peer := remoteHost(r)
	peerAddr, err := netip.ParseAddr(peer)
	if err != nil || !rl.trusted.Contains(peerAddr) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	client := peer
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		client = hop.Unmap().String()
		if !rl.trusted.Contains(hop) {
			break
		}
	}
	return client
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
