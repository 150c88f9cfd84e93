package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/giftroll/internal/metrics"
)

// Rate limit buckets. The Mini App polls the round state twice a second, so those
// requests get their own larger budget instead of starving bets and deposits.
const (
	BucketPoll = "poll"
	BucketAPI  = "api"
)

// ipWindow counts one address's traffic from its first request until the window expires
type ipWindow struct {
	mu         sync.Mutex
	requests   map[string]int
	failedAuth int
}

// SuspiciousActivityDetector counts requests and failed admin logins per IP.
// Each address gets a fixed window starting at its first request; the LRU bounds
// how many addresses are tracked at once.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *ipWindow]
	limits  map[string]int
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(RateLimitWindow, MaxTrackedIPs, map[string]int{
		BucketPoll: PollRateLimitRequests,
		BucketAPI:  RateLimitRequests,
	})
}

func newDetector(window time.Duration, maxIPs int, limits map[string]int) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		windows: expirable.NewLRU[string, *ipWindow](maxIPs, nil, window),
		limits:  limits,
	}
}

func (s *SuspiciousActivityDetector) window(ip string) *ipWindow {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.windows.Get(ip); ok {
		return w
	}
	w := &ipWindow{requests: make(map[string]int)}
	s.windows.Add(ip, w)
	return w
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	w := s.window(ip)
	w.mu.Lock()
	w.failedAuth++
	count := w.failedAuth
	w.mu.Unlock()

	metrics.AdminAuthFailures.Inc()
	if count >= FailedAuthAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest counts a request against bucket and returns false once the IP is over its limit
func (s *SuspiciousActivityDetector) RecordRequest(ip, bucket string) bool {
	w := s.window(ip)
	w.mu.Lock()
	w.requests[bucket]++
	count := w.requests[bucket]
	w.mu.Unlock()

	if limit, ok := s.limits[bucket]; ok && count > limit {
		metrics.RequestsThrottled.WithLabelValues(bucket).Inc()
		if count%100 == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "bucket", bucket, "count_in_window", count)
		}
		return false
	}
	return true
}

func (s *SuspiciousActivityDetector) counts(ip string) (requests map[string]int, failedAuth int) {
	w, ok := s.windows.Peek(ip)
	if !ok {
		return nil, 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	requests = make(map[string]int, len(w.requests))
	for k, v := range w.requests {
		requests[k] = v
	}
	return requests, w.failedAuth
}

// RateLimitMiddleware enforces the per IP request limits
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies), bucketFor(r.URL.Path)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bucketFor(path string) string {
	if path == PathRollsState || path == PathRollsStream {
		return BucketPoll
	}
	return BucketAPI
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
		break
	}

	return remoteIP
}
