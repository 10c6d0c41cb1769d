// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

// InvalidDate replaces the expiration date when the validity window of a
// certificate cannot be determined.
const InvalidDate = "Invalid date"

// Report is the outcome of evaluating one leaf certificate against one
// requested hostname.
type Report struct {
	ValidityStatus   bool   `json:"validity_status"`
	ExpirationDate   string `json:"expiration_date"`
	Issuer           string `json:"issuer"`
	Subject          string `json:"subject"`
	ValidForDomain   bool   `json:"valid_for_domain"`
	CAValid          bool   `json:"ca_valid"`
	SelfSigned       bool   `json:"self_signed"`
	RevocationStatus string `json:"revocation_status"`
}

// Invalid reports whether the certificate should be counted as invalid:
// outside its validity window or not issued for the requested hostname.
func (r *Report) Invalid() bool {
	return !r.ValidityStatus || !r.ValidForDomain
}
