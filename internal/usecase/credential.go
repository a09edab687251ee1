package usecase

import (
	"context"
	"fmt"

	"github.com/workmesh/metadata-indexer/internal/domain"
)

// credentialBundle is one fully validated credential with its sub-entities.
// Extraction is all-or-nothing per bundle, so a bundle never represents a
// partial credential.
type credentialBundle struct {
	credential domain.Credential
	wrapper    domain.CredentialWrapper
	claims     []domain.Claim
	encrypted  *domain.ClaimsEncrypted
}

// extractCredential validates one element of the credentials array. Any
// missing or mistyped required field voids the whole element; sibling
// elements are unaffected.
func extractCredential(documentID string, element any) (credentialBundle, bool) {
	wrapped, _ := element.(map[string]any)
	if wrapped == nil {
		return credentialBundle{}, false
	}
	credObj := getObject(wrapped, "credential")
	if credObj == nil {
		return credentialBundle{}, false
	}

	issuer := getString(wrapped, "issuer")
	signature1 := getString(wrapped, "signature1")
	signature2 := getString(wrapped, "signature2")
	author := getString(credObj, "author")
	platform := getString(credObj, "platform")
	description := getString(credObj, "description")
	issueTime := getInt(credObj, "issueTime")
	expiryTime := getInt(credObj, "expiryTime")
	userAddress := getString(credObj, "userAddress")
	claims := getArray(credObj, "claims")
	encryptedObj := getObject(credObj, "claimsEncrypted")

	if issuer == nil ||
		signature1 == nil ||
		signature2 == nil ||
		author == nil ||
		platform == nil ||
		description == nil ||
		issueTime == nil ||
		expiryTime == nil ||
		userAddress == nil ||
		(claims == nil && encryptedObj == nil) {
		return credentialBundle{}, false
	}

	credID := fmt.Sprintf("cred-%s-%s-%s", documentID, *author, *platform)

	bundle := credentialBundle{
		credential: domain.Credential{
			ID:          credID,
			Author:      *author,
			Platform:    *platform,
			Description: *description,
			IssueTime:   int32(*issueTime),
			ExpiryTime:  int32(*expiryTime),
			UserAddress: *userAddress,
		},
		wrapper: domain.CredentialWrapper{
			ID:         credID,
			Credential: credID,
			Issuer:     *issuer,
			Signature1: *signature1,
			Signature2: *signature2,
		},
	}

	if encryptedObj != nil {
		encrypted := extractClaimsEncrypted(credID, encryptedObj)
		if encrypted == nil {
			// A present claimsEncrypted key is a promise: either it is
			// honored completely or the credential is void.
			return credentialBundle{}, false
		}
		bundle.encrypted = encrypted
		ref := credID
		bundle.credential.ClaimsEncrypted = &ref
	}

	if claims != nil {
		claimIDs := []string{}
		for _, item := range claims {
			claim := extractClaim(credID, item)
			if claim == nil {
				continue
			}
			bundle.claims = append(bundle.claims, *claim)
			claimIDs = append(claimIDs, claim.ID)
		}
		// The list stays attached even when every claim was dropped; the
		// participation gate above checks array presence, not survivors.
		bundle.credential.Claims = claimIDs
	}

	return bundle, true
}

// extractClaim validates one element of a claims array. A failed claim is
// dropped without affecting sibling claims or the owning credential.
func extractClaim(credentialID string, element any) *domain.Claim {
	obj, _ := element.(map[string]any)
	if obj == nil {
		return nil
	}
	platform := getString(obj, "platform")
	criteria := getString(obj, "criteria")
	condition := getString(obj, "condition")
	value := getString(obj, "value")
	if platform == nil || criteria == nil || condition == nil || value == nil {
		return nil
	}
	return &domain.Claim{
		ID:        credentialID + "-" + *criteria,
		Platform:  *platform,
		Criteria:  *criteria,
		Condition: *condition,
		Value:     *value,
	}
}

// extractClaimsEncrypted validates an encrypted-claims payload.
func extractClaimsEncrypted(credentialID string, obj map[string]any) *domain.ClaimsEncrypted {
	cipherText := getString(obj, "cipherText")
	accessControlCondition := getString(obj, "accessControlCondition")
	if cipherText == nil || accessControlCondition == nil {
		return nil
	}
	return &domain.ClaimsEncrypted{
		ID:                     credentialID,
		CipherText:             *cipherText,
		AccessControlCondition: *accessControlCondition,
	}
}

// storeCredentials walks the document's credentials array in order,
// persisting each surviving bundle child-first (claims and encrypted payload
// before the credential that references them, the credential before its
// wrapper) and collecting credential ids gap-free.
func (uc *DocumentUsecase) storeCredentials(ctx context.Context, documentID string, elements []any) ([]string, error) {
	ids := []string{}
	for _, element := range elements {
		bundle, ok := extractCredential(documentID, element)
		if !ok {
			continue
		}
		if bundle.encrypted != nil {
			if err := uc.credentials.SaveClaimsEncrypted(ctx, *bundle.encrypted); err != nil {
				return nil, err
			}
		}
		for _, claim := range bundle.claims {
			if err := uc.credentials.SaveClaim(ctx, claim); err != nil {
				return nil, err
			}
		}
		if err := uc.credentials.SaveCredential(ctx, bundle.credential); err != nil {
			return nil, err
		}
		if err := uc.credentials.SaveCredentialWrapper(ctx, bundle.wrapper); err != nil {
			return nil, err
		}
		ids = append(ids, bundle.credential.ID)
	}
	return ids, nil
}
