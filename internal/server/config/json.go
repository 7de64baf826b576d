package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avolkovx/privseal/internal/flagx"
	"github.com/avolkovx/privseal/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// Interval fields use timex.Duration, which parses both string values such
// as "1h" and integer nanoseconds. After unmarshalling, its fields are
// copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	SealPassphrase               string         `json:"seal_passphrase"`
	SealSalt                     string         `json:"seal_salt"`
	GatewayKey                   string         `json:"gateway_key"`
	GatewayEndpoint              string         `json:"gateway_endpoint"`
	MinReviewFee                 int64          `json:"min_review_fee"`
	DecryptionTimeout            timex.Duration `json:"decryption_timeout"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. An unreadable or
// malformed file panics: a requested-but-broken config is a startup error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration.Duration)
	config.SealPassphrase = c.SealPassphrase
	config.SealSalt = c.SealSalt
	config.GatewayKey = c.GatewayKey
	config.GatewayEndpoint = c.GatewayEndpoint
	config.MinReviewFee = c.MinReviewFee
	config.DecryptionTimeout = time.Duration(c.DecryptionTimeout.Duration)
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
