package domain

// Credential is a third-party assertion about a user, materialized only when
// every required field of the source item is present and well-typed. Its id is
// cred-<documentId>-<author>-<platform>, so two credentials from the same
// author on the same platform within one document overwrite each other.
type Credential struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
	IssueTime   int32  `json:"issueTime"`
	ExpiryTime  int32  `json:"expiryTime"`
	UserAddress string `json:"userAddress"`
	// ClaimsEncrypted references a ClaimsEncrypted entity sharing the
	// credential's id, when the source carried an encrypted payload.
	ClaimsEncrypted *string `json:"claimsEncrypted,omitempty"`
	// Claims is nil when the source carried no claims array, and non-nil
	// (possibly empty) when it did.
	Claims []string `json:"claims,omitempty"`
}

// CredentialWrapper is the issuer/signature envelope around a Credential,
// co-located under the same id. Signatures are stored verbatim, never
// verified here.
type CredentialWrapper struct {
	ID         string `json:"id"`
	Credential string `json:"credential"`
	Issuer     string `json:"issuer"`
	Signature1 string `json:"signature1"`
	Signature2 string `json:"signature2"`
}

// Claim is one atomic assertion within a credential. Its id is
// <credentialId>-<criteria>; criteria is expected to be unique within one
// credential's claim set, but that is a data-quality expectation of the
// source, not something enforced here.
type Claim struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	Criteria  string `json:"criteria"`
	Condition string `json:"condition"`
	Value     string `json:"value"`
}

// ClaimsEncrypted is an opaque encrypted claim payload, keyed by the owning
// credential's id.
type ClaimsEncrypted struct {
	ID                     string `json:"id"`
	CipherText             string `json:"cipherText"`
	AccessControlCondition string `json:"accessControlCondition"`
}
