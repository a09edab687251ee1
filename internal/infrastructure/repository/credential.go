package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/workmesh/metadata-indexer/internal/domain"
	"github.com/workmesh/metadata-indexer/internal/infrastructure/database/models"
)

// CredentialRepository persists credentials and their sub-entities with
// create-or-overwrite-by-id semantics, matching the id-collision contract of
// the ingestion path.
type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) SaveCredential(ctx context.Context, c domain.Credential) error {
	m := models.Credential{
		ID:              c.ID,
		Author:          c.Author,
		Platform:        c.Platform,
		Description:     c.Description,
		IssueTime:       c.IssueTime,
		ExpiryTime:      c.ExpiryTime,
		UserAddress:     c.UserAddress,
		ClaimsEncrypted: c.ClaimsEncrypted,
		Claims:          c.Claims,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"author", "platform", "description", "issue_time", "expiry_time", "user_address", "claims_encrypted", "claims"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save credential")
	}
	return nil
}

func (r *CredentialRepository) SaveCredentialWrapper(ctx context.Context, w domain.CredentialWrapper) error {
	m := models.CredentialWrapper{
		ID:         w.ID,
		Credential: w.Credential,
		Issuer:     w.Issuer,
		Signature1: w.Signature1,
		Signature2: w.Signature2,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"credential", "issuer", "signature1", "signature2"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save credential wrapper")
	}
	return nil
}

func (r *CredentialRepository) SaveClaim(ctx context.Context, c domain.Claim) error {
	m := models.Claim{
		ID:        c.ID,
		Platform:  c.Platform,
		Criteria:  c.Criteria,
		Condition: c.Condition,
		Value:     c.Value,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "criteria", "condition", "value"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save claim")
	}
	return nil
}

func (r *CredentialRepository) SaveClaimsEncrypted(ctx context.Context, c domain.ClaimsEncrypted) error {
	m := models.ClaimsEncrypted{
		ID:                     c.ID,
		CipherText:             c.CipherText,
		AccessControlCondition: c.AccessControlCondition,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"cipher_text", "access_control_condition"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save encrypted claims")
	}
	return nil
}

func (r *CredentialRepository) GetCredential(ctx context.Context, id string) (domain.Credential, error) {
	var m models.Credential
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Credential{}, domain.NotFoundError{Resource: "credential"}
		}
		return domain.Credential{}, errors.Wrap(err, "failed to get credential")
	}
	return domain.Credential{
		ID:              m.ID,
		Author:          m.Author,
		Platform:        m.Platform,
		Description:     m.Description,
		IssueTime:       m.IssueTime,
		ExpiryTime:      m.ExpiryTime,
		UserAddress:     m.UserAddress,
		ClaimsEncrypted: m.ClaimsEncrypted,
		Claims:          m.Claims,
	}, nil
}

func (r *CredentialRepository) GetCredentialWrapper(ctx context.Context, id string) (domain.CredentialWrapper, error) {
	var m models.CredentialWrapper
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CredentialWrapper{}, domain.NotFoundError{Resource: "credential wrapper"}
		}
		return domain.CredentialWrapper{}, errors.Wrap(err, "failed to get credential wrapper")
	}
	return domain.CredentialWrapper{
		ID:         m.ID,
		Credential: m.Credential,
		Issuer:     m.Issuer,
		Signature1: m.Signature1,
		Signature2: m.Signature2,
	}, nil
}

// GetClaims returns the claims for the given ids, preserving the caller's
// order. Ids with no stored claim are silently omitted.
func (r *CredentialRepository) GetClaims(ctx context.Context, ids []string) ([]domain.Claim, error) {
	if len(ids) == 0 {
		return []domain.Claim{}, nil
	}
	var rows []models.Claim
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get claims")
	}
	byID := make(map[string]models.Claim, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	claims := make([]domain.Claim, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			continue
		}
		claims = append(claims, domain.Claim{
			ID:        m.ID,
			Platform:  m.Platform,
			Criteria:  m.Criteria,
			Condition: m.Condition,
			Value:     m.Value,
		})
	}
	return claims, nil
}

func (r *CredentialRepository) GetClaimsEncrypted(ctx context.Context, id string) (domain.ClaimsEncrypted, error) {
	var m models.ClaimsEncrypted
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClaimsEncrypted{}, domain.NotFoundError{Resource: "encrypted claims"}
		}
		return domain.ClaimsEncrypted{}, errors.Wrap(err, "failed to get encrypted claims")
	}
	return domain.ClaimsEncrypted{
		ID:                     m.ID,
		CipherText:             m.CipherText,
		AccessControlCondition: m.AccessControlCondition,
	}, nil
}
