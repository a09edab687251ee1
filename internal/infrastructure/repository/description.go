package repository

import (
	"context"
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/workmesh/metadata-indexer/internal/domain"
	"github.com/workmesh/metadata-indexer/internal/infrastructure/database/models"
)

// DescriptionRepository persists description entities with
// create-or-overwrite-by-id semantics. Reads go through memcached when a
// client is configured; descriptions are overwritten wholesale on
// re-delivery, so cached entries are dropped on every save.
type DescriptionRepository struct {
	db *gorm.DB
	mc *memcache.Client
}

func NewDescriptionRepository(db *gorm.DB, mc *memcache.Client) *DescriptionRepository {
	return &DescriptionRepository{db: db, mc: mc}
}

func descriptionCacheKey(category, id string) string {
	return "desc:" + category + ":" + id
}

func (r *DescriptionRepository) cacheGet(key string, out any) bool {
	if r.mc == nil {
		return false
	}
	item, err := r.mc.Get(key)
	if err != nil {
		return false
	}
	return json.Unmarshal(item.Value, out) == nil
}

func (r *DescriptionRepository) cacheSet(key string, value any) {
	if r.mc == nil {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers.
	_ = r.mc.Set(&memcache.Item{Key: key, Value: encoded})
}

func (r *DescriptionRepository) cacheDelete(key string) {
	if r.mc == nil {
		return
	}
	_ = r.mc.Delete(key)
}

func (r *DescriptionRepository) SaveService(ctx context.Context, d domain.ServiceDescription) error {
	m := models.ServiceDescription{
		ID:              d.ID,
		Service:         d.Service,
		Title:           d.Title,
		About:           d.About,
		StartDate:       d.StartDate,
		ExpectedEndDate: d.ExpectedEndDate,
		KeywordsRaw:     d.KeywordsRaw,
		RateToken:       d.RateToken,
		RateAmount:      d.RateAmount,
		VideoURL:        d.VideoURL,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"service", "title", "about", "start_date", "expected_end_date", "keywords_raw", "rate_token", "rate_amount", "video_url"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save service description")
	}
	r.cacheDelete(descriptionCacheKey("service", d.ID))
	return nil
}

func (r *DescriptionRepository) SaveProposal(ctx context.Context, d domain.ProposalDescription) error {
	m := models.ProposalDescription{
		ID:            d.ID,
		Proposal:      d.Proposal,
		StartDate:     d.StartDate,
		About:         d.About,
		ExpectedHours: d.ExpectedHours,
		VideoURL:      d.VideoURL,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"proposal", "start_date", "about", "expected_hours", "video_url"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save proposal description")
	}
	r.cacheDelete(descriptionCacheKey("proposal", d.ID))
	return nil
}

func (r *DescriptionRepository) SaveReview(ctx context.Context, d domain.ReviewDescription) error {
	m := models.ReviewDescription{
		ID:      d.ID,
		Review:  d.Review,
		Content: d.Content,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"review", "content"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save review description")
	}
	r.cacheDelete(descriptionCacheKey("review", d.ID))
	return nil
}

func (r *DescriptionRepository) SaveUser(ctx context.Context, d domain.UserDescription) error {
	m := models.UserDescription{
		ID:                  d.ID,
		User:                d.User,
		Title:               d.Title,
		About:               d.About,
		SkillsRaw:           d.SkillsRaw,
		Credentials:         d.Credentials,
		Timezone:            d.Timezone,
		Headline:            d.Headline,
		Country:             d.Country,
		Role:                d.Role,
		Name:                d.Name,
		VideoURL:            d.VideoURL,
		ImageURL:            d.ImageURL,
		Web3mailPreferences: d.Web3mailPreferences,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user", "title", "about", "skills_raw", "credentials", "timezone", "headline", "country", "role", "name", "video_url", "image_url", "web3mail_preferences"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save user description")
	}
	r.cacheDelete(descriptionCacheKey("user", d.ID))
	return nil
}

func (r *DescriptionRepository) SavePlatform(ctx context.Context, d domain.PlatformDescription) error {
	m := models.PlatformDescription{
		ID:       d.ID,
		Platform: d.Platform,
		About:    d.About,
		Website:  d.Website,
		VideoURL: d.VideoURL,
		ImageURL: d.ImageURL,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "about", "website", "video_url", "image_url"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save platform description")
	}
	r.cacheDelete(descriptionCacheKey("platform", d.ID))
	return nil
}

func (r *DescriptionRepository) SaveEvidence(ctx context.Context, d domain.EvidenceDescription) error {
	m := models.EvidenceDescription{
		ID:                d.ID,
		Evidence:          d.Evidence,
		FileURI:           d.FileURI,
		FileHash:          d.FileHash,
		FileTypeExtension: d.FileTypeExtension,
		Name:              d.Name,
		Description:       d.Description,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"evidence", "file_uri", "file_hash", "file_type_extension", "name", "description"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save evidence description")
	}
	r.cacheDelete(descriptionCacheKey("evidence", d.ID))
	return nil
}

func (r *DescriptionRepository) SaveWeb3mailPreferences(ctx context.Context, p domain.UserWeb3mailPreferences) error {
	m := models.UserWeb3mailPreferences{
		ID:                        p.ID,
		ActiveOnNewService:        p.ActiveOnNewService,
		ActiveOnNewProposal:       p.ActiveOnNewProposal,
		ActiveOnProposalValidated: p.ActiveOnProposalValidated,
		ActiveOnFundRelease:       p.ActiveOnFundRelease,
		ActiveOnReview:            p.ActiveOnReview,
		ActiveOnPlatformMarketing: p.ActiveOnPlatformMarketing,
		ActiveOnProtocolMarketing: p.ActiveOnProtocolMarketing,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"active_on_new_service", "active_on_new_proposal", "active_on_proposal_validated", "active_on_fund_release", "active_on_review", "active_on_platform_marketing", "active_on_protocol_marketing"}),
	}).Create(&m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save web3mail preferences")
	}
	return nil
}

func (r *DescriptionRepository) GetService(ctx context.Context, id string) (domain.ServiceDescription, error) {
	key := descriptionCacheKey("service", id)
	var cached domain.ServiceDescription
	if r.cacheGet(key, &cached) {
		return cached, nil
	}

	var m models.ServiceDescription
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ServiceDescription{}, domain.NotFoundError{Resource: "service description"}
		}
		return domain.ServiceDescription{}, errors.Wrap(err, "failed to get service description")
	}
	d := domain.ServiceDescription{
		ID:              m.ID,
		Service:         m.Service,
		Title:           m.Title,
		About:           m.About,
		StartDate:       m.StartDate,
		ExpectedEndDate: m.ExpectedEndDate,
		KeywordsRaw:     m.KeywordsRaw,
		RateToken:       m.RateToken,
		RateAmount:      m.RateAmount,
		VideoURL:        m.VideoURL,
	}
	r.cacheSet(key, d)
	return d, nil
}

func (r *DescriptionRepository) GetProposal(ctx context.Context, id string) (domain.ProposalDescription, error) {
	key := descriptionCacheKey("proposal", id)
	var cached domain.ProposalDescription
	if r.cacheGet(key, &cached) {
		return cached, nil
	}

	var m models.ProposalDescription
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProposalDescription{}, domain.NotFoundError{Resource: "proposal description"}
		}
		return domain.ProposalDescription{}, errors.Wrap(err, "failed to get proposal description")
	}
	d := domain.ProposalDescription{
		ID:            m.ID,
		Proposal:      m.Proposal,
		StartDate:     m.StartDate,
		About:         m.About,
		ExpectedHours: m.ExpectedHours,
		VideoURL:      m.VideoURL,
	}
	r.cacheSet(key, d)
	return d, nil
}

func (r *DescriptionRepository) GetReview(ctx context.Context, id string) (domain.ReviewDescription, error) {
	key := descriptionCacheKey("review", id)
	var cached domain.ReviewDescription
	if r.cacheGet(key, &cached) {
		return cached, nil
	}

	var m models.ReviewDescription
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewDescription{}, domain.NotFoundError{Resource: "review description"}
		}
		return domain.ReviewDescription{}, errors.Wrap(err, "failed to get review description")
	}
	d := domain.ReviewDescription{
		ID:      m.ID,
		Review:  m.Review,
		Content: m.Content,
	}
	r.cacheSet(key, d)
	return d, nil
}

func (r *DescriptionRepository) GetUser(ctx context.Context, id string) (domain.UserDescription, error) {
	key := descriptionCacheKey("user", id)
	var cached domain.UserDescription
	if r.cacheGet(key, &cached) {
		return cached, nil
	}

	var m models.UserDescription
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserDescription{}, domain.NotFoundError{Resource: "user description"}
		}
		return domain.UserDescription{}, errors.Wrap(err, "failed to get user description")
	}
	d := domain.UserDescription{
		ID:                  m.ID,
		User:                m.User,
		Title:               m.Title,
		About:               m.About,
		SkillsRaw:           m.SkillsRaw,
		Credentials:         m.Credentials,
		Timezone:            m.Timezone,
		Headline:            m.Headline,
		Country:             m.Country,
		Role:                m.Role,
		Name:                m.Name,
		VideoURL:            m.VideoURL,
		ImageURL:            m.ImageURL,
		Web3mailPreferences: m.Web3mailPreferences,
	}
	r.cacheSet(key, d)
	return d, nil
}

func (r *DescriptionRepository) GetPlatform(ctx context.Context, id string) (domain.PlatformDescription, error) {
	key := descriptionCacheKey("platform", id)
	var cached domain.PlatformDescription
	if r.cacheGet(key, &cached) {
		return cached, nil
	}

	var m models.PlatformDescription
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PlatformDescription{}, domain.NotFoundError{Resource: "platform description"}
		}
		return domain.PlatformDescription{}, errors.Wrap(err, "failed to get platform description")
	}
	d := domain.PlatformDescription{
		ID:       m.ID,
		Platform: m.Platform,
		About:    m.About,
		Website:  m.Website,
		VideoURL: m.VideoURL,
		ImageURL: m.ImageURL,
	}
	r.cacheSet(key, d)
	return d, nil
}

func (r *DescriptionRepository) GetEvidence(ctx context.Context, id string) (domain.EvidenceDescription, error) {
	key := descriptionCacheKey("evidence", id)
	var cached domain.EvidenceDescription
	if r.cacheGet(key, &cached) {
		return cached, nil
	}

	var m models.EvidenceDescription
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EvidenceDescription{}, domain.NotFoundError{Resource: "evidence description"}
		}
		return domain.EvidenceDescription{}, errors.Wrap(err, "failed to get evidence description")
	}
	d := domain.EvidenceDescription{
		ID:                m.ID,
		Evidence:          m.Evidence,
		FileURI:           m.FileURI,
		FileHash:          m.FileHash,
		FileTypeExtension: m.FileTypeExtension,
		Name:              m.Name,
		Description:       m.Description,
	}
	r.cacheSet(key, d)
	return d, nil
}
