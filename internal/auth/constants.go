package auth

import "time"

const (
	// DefaultTokenTTL is the lifetime of a performer token when none is given.
	DefaultTokenTTL = 7 * 24 * time.Hour

	// Issuer is stamped into every token this service mints.
	Issuer = "buyer-merchant"
)

// Error messages
const (
	ErrMsgGenerateJTIFailed = "failed to generate token id"
	ErrMsgSignTokenFailed   = "failed to sign token"
	ErrMsgUnexpectedSigning = "unexpected signing method: %v"
	ErrMsgInvalidToken      = "invalid token"
	ErrMsgMissingSubject    = "token has no subject"
	ErrMsgPerformerRequired = "performer id is required"
	ErrMsgSecretRequired    = "signing secret is required"
)
