package business

// ClauseType enumerates the legal clause templates available to invoices.
type ClauseType string

const (
	ClausePaymentTerms     ClauseType = "paymentTerms"
	ClauseRetentionOfTitle ClauseType = "retentionOfTitle"
)

// KnownClauseTypes lists every clause type in template order.
var KnownClauseTypes = []ClauseType{ClausePaymentTerms, ClauseRetentionOfTitle}

// IsValidClauseType reports whether t names a known clause template set.
func IsValidClauseType(t ClauseType) bool {
	for _, known := range KnownClauseTypes {
		if t == known {
			return true
		}
	}
	return false
}
