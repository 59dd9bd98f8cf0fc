package model

// InvalidReason names why a request failed verification.
type InvalidReason string

// Reasons are sent verbatim to the lock API, which keeps the issuer reason misspelled.
const (
	InvalidIssuerSignature   InvalidReason = "Invalid Issure Signature"
	InvalidWithdrawSignature InvalidReason = "Invalid Withdraw Signature"
)

// Verdict is the outcome of reconciling one open transaction.
type Verdict struct {
	Verified bool
	Reason   InvalidReason
}

// VerifiedVerdict builds a positive verdict.
func VerifiedVerdict() Verdict {
	return Verdict{Verified: true}
}

// InvalidVerdict builds a negative verdict with its reason.
func InvalidVerdict(reason InvalidReason) Verdict {
	return Verdict{Reason: reason}
}
