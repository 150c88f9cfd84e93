package server

import "net/http"

// SecurityHeadersMiddleware adds security headers to responses. Frames stay
// same-origin only; Telegram opens the Mini App page itself, not the API.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	headers := [][2]string{
		{HeaderContentType, HeaderValueNoSniff},
		{HeaderFrameOptions, HeaderValueSameOrigin},
		{HeaderXSSProtection, HeaderValueXSSBlock},
		{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range headers {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware lets the Mini App page call the API and answers preflights
func CORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderAllowOrigin, HeaderValueAnyOrigin)
			w.Header().Set(HeaderAllowMethods, HeaderValueCORSMethods)
			w.Header().Set(HeaderAllowHeaders, HeaderValueCORSHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
