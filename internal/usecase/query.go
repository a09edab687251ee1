package usecase

import (
	"context"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// CredentialView aggregates a credential with its envelope and sub-entities.
type CredentialView struct {
	Credential      domain.Credential        `json:"credential"`
	Wrapper         domain.CredentialWrapper `json:"wrapper"`
	Claims          []domain.Claim           `json:"claims,omitempty"`
	ClaimsEncrypted *domain.ClaimsEncrypted  `json:"claimsEncrypted,omitempty"`
}

// GetDescription looks up the stored description for a category.
func (uc *DocumentUsecase) GetDescription(ctx context.Context, category workmesh.Category, id string) (any, error) {
	switch category {
	case workmesh.CategoryService:
		return uc.descriptions.GetService(ctx, id)
	case workmesh.CategoryProposal:
		return uc.descriptions.GetProposal(ctx, id)
	case workmesh.CategoryUser:
		return uc.descriptions.GetUser(ctx, id)
	case workmesh.CategoryReview:
		return uc.descriptions.GetReview(ctx, id)
	case workmesh.CategoryPlatform:
		return uc.descriptions.GetPlatform(ctx, id)
	case workmesh.CategoryEvidence:
		return uc.descriptions.GetEvidence(ctx, id)
	default:
		return nil, domain.ErrUnknownCategory
	}
}

// GetCredential assembles the credential graph for one credential id.
func (uc *DocumentUsecase) GetCredential(ctx context.Context, id string) (CredentialView, error) {
	credential, err := uc.credentials.GetCredential(ctx, id)
	if err != nil {
		return CredentialView{}, err
	}

	wrapper, err := uc.credentials.GetCredentialWrapper(ctx, id)
	if err != nil {
		return CredentialView{}, err
	}

	view := CredentialView{
		Credential: credential,
		Wrapper:    wrapper,
	}

	if len(credential.Claims) > 0 {
		claims, err := uc.credentials.GetClaims(ctx, credential.Claims)
		if err != nil {
			return CredentialView{}, err
		}
		view.Claims = claims
	}

	if credential.ClaimsEncrypted != nil {
		encrypted, err := uc.credentials.GetClaimsEncrypted(ctx, *credential.ClaimsEncrypted)
		if err != nil {
			return CredentialView{}, err
		}
		view.ClaimsEncrypted = &encrypted
	}

	return view, nil
}
