package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	visitorRate  rate.Limit = 20
	visitorBurst            = 60
	visitorTTL              = 30 * time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// Visitors maps a Visitor to an IP address.
type Visitors struct {
	mu  sync.Mutex
	val map[string]Visitor
}

func NewVisitors() *Visitors { return &Visitors{val: make(map[string]Visitor)} }

// Fetch retrieves the Visitor for the given ip, creating a new Visitor if not seen.
//
// New Visitors may make 20 requests a second with bursts of up to 60;
// a client's entry document pulls several assets at once.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(visitorRate, visitorBurst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len returns the number of Visitors tracked.
func (vs *Visitors) Len() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	return len(vs.val)
}

// Sweep forgets Visitors not seen since before cutoff.
func (vs *Visitors) Sweep(cutoff time.Time) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	for ip, v := range vs.val {
		if v.LastSeen.Before(cutoff) {
			delete(vs.val, ip)
		}
	}
}

// RateLimit responds with 429 Too Many Requests once a Visitor exceeds its limit.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(ClientIPAddress(r)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.Sweep(time.Now().UTC().Add(-visitorTTL))
			h.ServeHTTP(w, r)
		})
	}
}
