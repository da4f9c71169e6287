package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/fitcoach/internal/common"
	"github.com/dmitrijs2005/fitcoach/internal/server/users"
)

type ctxKey string

const userKey ctxKey = "user"

// bearerAuth resolves the Authorization header to a user and stores it in
// the request context. Missing or invalid credentials end the request with
// 401.
func (s *HTTPServer) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := common.BearerToken(r.Header.Get(common.AuthorizationHeader))
		if !ok {
			writeUnauthorized(w, "Not authenticated")
			return
		}

		user, err := s.users.Authenticate(r.Context(), token)
		if err != nil {
			if !errors.Is(err, users.ErrUnauthorized) {
				s.logger.Error(r.Context(), "authenticate", "err", err)
			}
			writeUnauthorized(w, "Could not validate credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

func userFromContext(ctx context.Context) *users.User {
	u, _ := ctx.Value(userKey).(*users.User)
	return u
}

func (s *HTTPServer) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chiMiddleware.GetReqID(r.Context()),
		)
	})
}
