package grpc

import (
	"context"
	"crypto/subtle"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const actorAddressKey ctxKey = "actorAddress"

// Methods callable without an access token.
var publicMethods = map[string]bool{
	"/privseal.review.ReviewService/Register":     true,
	"/privseal.review.ReviewService/GetSalt":      true,
	"/privseal.review.ReviewService/Login":        true,
	"/privseal.review.ReviewService/RefreshToken": true,
	"/privseal.review.ReviewService/Ping":         true,
}

const callbackMethod = "/privseal.review.ReviewService/DecryptionCallback"

func metadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(key)
		if len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// authInterceptor authenticates every call except the public methods. The
// gateway callback is authenticated with the shared gateway key instead of a
// JWT; all other protected methods carry an access token whose actor address
// is stored into the context for the handlers.
func (s *GRPCServer) authInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	if info.FullMethod == callbackMethod {
		key := metadataValue(ctx, common.GatewayKeyHeaderName)
		if subtle.ConstantTimeCompare([]byte(key), s.gatewayKey) != 1 {
			return nil, status.Error(codes.Unauthenticated, "invalid gateway key")
		}
		return handler(ctx, req)
	}

	accessToken := metadataValue(ctx, common.AccessTokenHeaderName)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	address, err := auth.GetAddressFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, actorAddressKey, address)
	return handler(ctx, req)
}

// actorFromContext returns the authenticated caller address placed into the
// context by the interceptor.
func actorFromContext(ctx context.Context) string {
	if address, ok := ctx.Value(actorAddressKey).(string); ok {
		return address
	}
	return ""
}
