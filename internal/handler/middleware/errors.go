package middleware

import "marketplace-core/internal/pkg/errs"

var (
	errMissingToken     = errs.New("access token required")
	errMissingIdentity  = errs.New("auth middleware missing from chain")
	errInsufficientRole = errs.New("insufficient role")
	errRateLimited      = errs.New("rate limit exceeded")
)
