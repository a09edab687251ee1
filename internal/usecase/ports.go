package usecase

import (
	"context"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// DescriptionRepository defines persistence/lookup for description entities.
// Save semantics are create-or-overwrite by id; there is no update-in-place.
type DescriptionRepository interface {
	SaveService(ctx context.Context, d domain.ServiceDescription) error
	SaveProposal(ctx context.Context, d domain.ProposalDescription) error
	SaveReview(ctx context.Context, d domain.ReviewDescription) error
	SaveUser(ctx context.Context, d domain.UserDescription) error
	SavePlatform(ctx context.Context, d domain.PlatformDescription) error
	SaveEvidence(ctx context.Context, d domain.EvidenceDescription) error
	SaveWeb3mailPreferences(ctx context.Context, p domain.UserWeb3mailPreferences) error

	GetService(ctx context.Context, id string) (domain.ServiceDescription, error)
	GetProposal(ctx context.Context, id string) (domain.ProposalDescription, error)
	GetReview(ctx context.Context, id string) (domain.ReviewDescription, error)
	GetUser(ctx context.Context, id string) (domain.UserDescription, error)
	GetPlatform(ctx context.Context, id string) (domain.PlatformDescription, error)
	GetEvidence(ctx context.Context, id string) (domain.EvidenceDescription, error)
}

// CredentialRepository defines persistence/lookup for the credential graph.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, c domain.Credential) error
	SaveCredentialWrapper(ctx context.Context, w domain.CredentialWrapper) error
	SaveClaim(ctx context.Context, c domain.Claim) error
	SaveClaimsEncrypted(ctx context.Context, e domain.ClaimsEncrypted) error

	GetCredential(ctx context.Context, id string) (domain.Credential, error)
	GetCredentialWrapper(ctx context.Context, id string) (domain.CredentialWrapper, error)
	GetClaims(ctx context.Context, ids []string) ([]domain.Claim, error)
	GetClaimsEncrypted(ctx context.Context, id string) (domain.ClaimsEncrypted, error)
}

// EventPublisher announces indexed documents to interested listeners.
type EventPublisher interface {
	Publish(ctx context.Context, event workmesh.Event) error
}
