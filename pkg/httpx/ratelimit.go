package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/encore/pkg/slogx"
	"golang.org/x/time/rate"
)

// Limit is a token bucket: Requests per Window, with up to Burst spent at
// once.
type Limit struct {
	Requests int           `toml:"requests"`
	Window   time.Duration `toml:"window"`
	Burst    int           `toml:"burst"`
}

func (l Limit) perSecond() rate.Limit {
	if l.Window <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(l.Requests) / l.Window.Seconds())
}

// Limits groups the buckets by endpoint class.
type Limits struct {
	Strict   Limit `toml:"strict"`   // credentials and TOTP codes
	Moderate Limit `toml:"moderate"` // authenticated writes
	Lenient  Limit `toml:"lenient"`  // profile reads and health probes
	Public   Limit `toml:"public"`   // anonymous catalogue reads
}

// DefaultLimits returns the production limits: 5, 20, 100 and 1000 requests
// per minute.
func DefaultLimits() Limits {
	perMinute := func(n int) Limit { return Limit{Requests: n, Window: time.Minute, Burst: n} }
	return Limits{
		Strict:   perMinute(5),
		Moderate: perMinute(20),
		Lenient:  perMinute(100),
		Public:   perMinute(1000),
	}
}

// FromEnv overrides each class from RATELIMIT_{CLASS}_REQUESTS,
// RATELIMIT_{CLASS}_WINDOW_SEC and RATELIMIT_{CLASS}_BURST. Non-positive or
// malformed values are ignored.
func (l Limits) FromEnv() Limits {
	l.Strict = limitFromEnv("STRICT", l.Strict)
	l.Moderate = limitFromEnv("MODERATE", l.Moderate)
	l.Lenient = limitFromEnv("LENIENT", l.Lenient)
	l.Public = limitFromEnv("PUBLIC", l.Public)
	return l
}

func limitFromEnv(class string, l Limit) Limit {
	positive := func(field string) (int, bool) {
		n, err := strconv.Atoi(os.Getenv("RATELIMIT_" + class + "_" + field))
		return n, err == nil && n > 0
	}
	if n, ok := positive("REQUESTS"); ok {
		l.Requests = n
	}
	if n, ok := positive("WINDOW_SEC"); ok {
		l.Window = time.Duration(n) * time.Second
	}
	if n, ok := positive("BURST"); ok {
		l.Burst = n
	}
	return l
}

// KeyExtractor groups requests into buckets. An empty key exempts the
// request.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor returns the client address, honouring X-Forwarded-For and
// then X-Real-IP for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor returns the authenticated user id, or "".
func UserIDKeyExtractor(r *http.Request) string {
	userID, _ := r.Context().Value(CtxKeyUserID).(string)
	return userID
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep, so
// an anonymous request keyed by (UserIDKeyExtractor, IPKeyExtractor) yields
// just the IP.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extractor := range extractors {
			if key := extractor(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// bucketIdleTTL is how long an untouched bucket is kept.
const bucketIdleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// bucketSet holds one limiter per key and evicts idle ones on a sweep.
type bucketSet struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newBucketSet(l Limit) *bucketSet {
	return &bucketSet{
		limit:     l.perSecond(),
		burst:     max(l.Burst, 1),
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

func (s *bucketSet) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > bucketIdleTTL {
		for k, b := range s.buckets {
			if now.Sub(b.lastSeen) > bucketIdleTTL {
				delete(s.buckets, k)
			}
		}
		s.lastSweep = now
	}

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

func (s *bucketSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// RejectHook is called for every request refused with 429.
type RejectHook func(r *http.Request, key string)

// RateLimit refuses requests over l with 429 and a Retry-After header.
// Requests are grouped by keyFn.
func RateLimit(l Limit, keyFn KeyExtractor, hooks ...RejectHook) Middleware {
	buckets := newBucketSet(l)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyFn(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			limiter := buckets.get(key, now)
			if limiter.AllowN(now, 1) {
				next.ServeHTTP(w, r)
				return
			}

			// Peek at when the next token lands without spending it.
			res := limiter.ReserveN(now, 1)
			retryAfter := max(int(res.DelayFrom(now).Seconds()), 1)
			res.CancelAt(now)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Requests))
			w.Header().Set("X-RateLimit-Window", l.Window.String())

			log.Warn("rate limit exceeded",
				"key", key,
				"endpoint", r.URL.Path,
				"retry_after", retryAfter,
			)
			for _, hook := range hooks {
				hook(r, key)
			}

			WriteError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		})
	}
}

// RateLimitByIP limits by client address.
func RateLimitByIP(l Limit, hooks ...RejectHook) Middleware {
	return RateLimit(l, IPKeyExtractor, hooks...)
}

// RateLimitByUser limits by authenticated user and address. It must run
// after AuthnMiddleware; anonymous requests fall back to the address.
func RateLimitByUser(l Limit, hooks ...RejectHook) Middleware {
	return RateLimit(l, CompositeKeyExtractor(":",
		UserIDKeyExtractor,
		IPKeyExtractor,
	), hooks...)
}
