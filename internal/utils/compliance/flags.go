package compliance

import "github.com/talofaremit/remit_backend/internal/core/domain"

// PtrThresholdNzdCents is the regulatory threshold (NZD 1,000.00) at and above
// which a qualifying transaction must be reported.
const PtrThresholdNzdCents = int64(100000)

// EvaluateFlags decides the compliance flags for a transaction total.
//
// A PTR is required for international transfers (destination not in the home
// currency) at or over the threshold. goAML export readiness uses the same
// threshold but is evaluated regardless of currency: domestic transactions at
// or over the threshold are also export-ready.
func EvaluateFlags(currency domain.Currency, totalPaidNzdCents int64) domain.ComplianceFlags {
	overThreshold := totalPaidNzdCents >= PtrThresholdNzdCents
	return domain.ComplianceFlags{
		PtrRequired: currency.IsInternational() && overThreshold,
		GoAmlReady:  overThreshold,
	}
}
