package transport

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/farm-portal/cmd/config"
	"github.com/muhammadheryan/farm-portal/constant"
	redisrepo "github.com/muhammadheryan/farm-portal/repository/redis"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	"go.uber.org/zap"
)

// rateClass returns the limiter bucket for path, or "" when the path is not limited.
func rateClass(path string) string {
	switch path {
	case "/auth/login":
		return "login"
	case "/auth/register", "/admin/users":
		return "register"
	case "/auth/verify", "/auth/resend-verification", "/auth/forgot-password", "/auth/reset-password":
		return "otp"
	}
	return ""
}

// RateLimitMiddleware applies fixed-window limits per client address to the
// credential endpoints. Redis failures let the request through.
func RateLimitMiddleware(cfg config.RateLimitConfig, repo redisrepo.Repository) mux.MiddlewareFunc {
	rules := map[string]config.RateRule{
		"login":    cfg.Login,
		"register": cfg.Register,
		"otp":      cfg.OTP,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			class := rateClass(r.URL.Path)
			rule, limited := rules[class]
			if !cfg.Enabled || repo == nil || r.Method != http.MethodPost || !limited || rule.Limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			count, err := repo.IncrWindow(r.Context(), class+":"+clientIP(r, cfg.TrustProxy), rule.Window)
			if err != nil {
				logger.Warn("[RateLimitMiddleware] err incr window, allowing request",
					zap.String("class", class),
					zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if count > int64(rule.Limit) {
				w.Header().Set("Retry-After", retryAfter(rule))
				writeError(w, errors.SetCustomError(constant.ErrRateLimited))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func retryAfter(rule config.RateRule) string {
	secs := int(rule.Window.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP returns the peer address, or the first X-Forwarded-For hop when
// the ingress proxy is trusted to set it.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0]); fwd != "" {
			return fwd
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
