package services

import (
	"strings"

	"github.com/invoxa/invoxa-api/types/business"
)

// legalClauses maps clause type to per-jurisdiction template text.
// Placeholders use {key} syntax and are filled from caller-supplied
// variables.
var legalClauses = map[business.ClauseType]map[string]string{
	business.ClausePaymentTerms: {
		"US": "Payment due within {days} days of invoice date. Late payments subject to {rate}% monthly interest.",
		"EU": "Payment due within {days} days. Late payments subject to European Directive 2011/7/EU.",
		"UK": "Payment due within {days} days. Interest may apply under the Late Payment of Commercial Debts Act 2013.",
		"AU": "Payment due {days} days from issue. GST included where applicable.",
		"JP": "請求日から{days}日以内にお支払いください。延滞利息は年{rate}%です。",
	},
	business.ClauseRetentionOfTitle: {
		"US": "Goods remain seller's property until paid in full.",
		"EU": "Retention of title under EU law until full payment received.",
		"DE": "Eigentumsvorbehalt bis zur vollständigen Zahlung.",
		"FR": "Réserve de propriété jusqu'au paiement intégral.",
	},
}

// LegalClauseService composes jurisdiction-specific legal boilerplate for
// invoice documents.
type LegalClauseService struct{}

// NewLegalClauseService creates a clause composer.
func NewLegalClauseService() *LegalClauseService {
	return &LegalClauseService{}
}

// GenerateClause returns the clause text for a (type, jurisdiction) pair
// with variables substituted. When no template exists for the jurisdiction
// it falls back to "EU" for VAT territories and "US" otherwise, so every
// call yields some clause text: absent legal boilerplate on an invoice is
// worse than an imperfect default. Unmatched placeholders are left literal
// in the output.
func (s *LegalClauseService) GenerateClause(clauseType business.ClauseType, jurisdiction business.Jurisdiction, variables map[string]string) string {
	countryClauses, ok := legalClauses[clauseType]
	if !ok {
		return ""
	}

	clause, ok := countryClauses[jurisdiction.Code]
	if !ok {
		if jurisdiction.TaxType == business.TaxTypeVAT {
			clause = countryClauses["EU"]
		} else {
			clause = countryClauses["US"]
		}
	}

	for key, value := range variables {
		clause = strings.ReplaceAll(clause, "{"+key+"}", value)
	}

	return clause
}
