package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on authenticated requests.
const AccessTokenHeaderName = "access_token"

// GatewayKeyHeaderName is the gRPC metadata key the decryption gateway uses
// to authenticate its callback calls.
const GatewayKeyHeaderName = "gateway_key"
