package common

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TokenAuthenticator resolves a bearer token into a trusted Identity.
type TokenAuthenticator interface {
	AuthenticateToken(token string) (Identity, error)
}

// RequestAuthenticator validates an HTTP request (including websocket upgrades).
type RequestAuthenticator interface {
	Authenticate(r *http.Request) (Identity, error)
}

// AuthInterceptor checks the `authorization` metadata on every unary call
// except publicMethods and injects the Identity into the context.
func AuthInterceptor(auth TokenAuthenticator, publicMethods ...string) grpc.UnaryServerInterceptor {
	public := make(map[string]bool, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = true
	}

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if public[info.FullMethod] {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		vals := md["authorization"]
		if len(vals) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization required")
		}

		// vals[0] = Bearer <token>
		parts := strings.Fields(vals[0])
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return nil, status.Error(codes.Unauthenticated, "invalid auth header")
		}

		id, err := auth.AuthenticateToken(parts[1])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		return handler(WithIdentity(ctx, id), req)
	}
}

// HTTPAuth rejects requests without a valid token before they reach next.
func HTTPAuth(auth RequestAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := auth.Authenticate(r)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// HTTPStatus maps the error taxonomy onto response codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation), errors.Is(err, ErrMalformedFrame):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode maps the error taxonomy onto gRPC status codes.
func GRPCCode(err error) codes.Code {
	switch {
	case errors.Is(err, ErrAuthentication):
		return codes.Unauthenticated
	case errors.Is(err, ErrValidation), errors.Is(err, ErrMalformedFrame):
		return codes.InvalidArgument
	case errors.Is(err, ErrForbidden):
		return codes.PermissionDenied
	case errors.Is(err, ErrNotFound):
		return codes.NotFound
	default:
		return codes.Internal
	}
}
