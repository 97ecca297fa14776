// Package connectivity answers the single question "is the network
// available right now". The answer is advisory: no implementation performs
// an application-level handshake, and a positive answer does not guarantee
// the next request will succeed. The sync layer consults the oracle before
// deciding whether to attempt remote calls at all.
package connectivity

import (
	"context"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Oracle reports best-effort network reachability.
type Oracle interface {
	// Online reports whether the network is believed to be available.
	// The answer is advisory and may be stale.
	Online(ctx context.Context) bool
}

// Manual is an Oracle driven entirely by its owner: the UI's airplane-mode
// switch in the application, or the test harness in tests. The zero value
// reports offline.
type Manual struct {
	mu     sync.RWMutex
	online bool
}

// NewManual returns a Manual oracle with the given initial state.
func NewManual(online bool) *Manual {
	return &Manual{online: online}
}

// Online implements [Oracle].
func (m *Manual) Online(_ context.Context) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Set records the current reachability state.
func (m *Manual) Set(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.online = online
}

// Prober is an Oracle that checks reachability by opening a TCP connection
// to the API host and caches the verdict for a TTL. The dial proves only
// that something is listening, not that the API works.
type Prober struct {
	host    string
	timeout time.Duration
	ttl     time.Duration

	mu        sync.Mutex
	lastCheck time.Time
	lastSeen  bool
}

// NewProber builds a Prober from the remote API base address (with or
// without a scheme). timeout bounds a single probe; ttl is how long the
// verdict is cached before the next probe.
func NewProber(baseAddress string, timeout, ttl time.Duration) *Prober {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Prober{host: hostPort(baseAddress), timeout: timeout, ttl: ttl}
}

// Online implements [Oracle]. A cached verdict younger than the TTL is
// returned as-is; otherwise a fresh TCP dial decides.
func (p *Prober) Online(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCheck) < p.ttl {
		return p.lastSeen
	}

	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", p.host)
	if err == nil {
		conn.Close()
	}

	p.lastCheck = time.Now()
	p.lastSeen = err == nil
	return p.lastSeen
}

func hostPort(baseAddress string) string {
	raw := strings.TrimSpace(baseAddress)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return baseAddress
	}

	if u.Port() != "" {
		return u.Host
	}
	if u.Scheme == "https" {
		return net.JoinHostPort(u.Hostname(), "443")
	}
	return net.JoinHostPort(u.Hostname(), "80")
}
