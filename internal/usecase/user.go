package usecase

import (
	"context"
	"strings"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// IngestUser normalizes a user profile document, including the nested
// credential graph. The description is persisted last, after every entity it
// references is already durable.
func (uc *DocumentUsecase) IngestUser(ctx context.Context, content []byte, dc workmesh.DocumentContext) error {
	ctx, span := tracer.Start(ctx, "Document.IngestUser")
	defer span.End()

	obj, err := decodeObject(content, workmesh.CategoryUser, dc)
	if err != nil {
		return err
	}

	description := domain.UserDescription{
		ID:   dc.DocumentID,
		User: dc.SubjectID,
	}
	description.Title = getString(obj, "title")
	description.About = getString(obj, "about")
	if skills := getString(obj, "skills"); skills != nil {
		lowered := strings.ToLower(*skills)
		description.SkillsRaw = &lowered
	}

	if credentials := getArray(obj, "credentials"); credentials != nil {
		ids, err := uc.storeCredentials(ctx, dc.DocumentID, credentials)
		if err != nil {
			return err
		}
		description.Credentials = ids
	}

	description.Timezone = getInt(obj, "timezone")
	description.Headline = getString(obj, "headline")
	description.Country = getString(obj, "country")
	description.Role = getString(obj, "role")
	description.Name = getString(obj, "name")
	description.VideoURL = getString(obj, "video_url")
	description.ImageURL = getString(obj, "image_url")

	if preferences := getObject(obj, "web3mailPreferences"); preferences != nil {
		prefs := domain.UserWeb3mailPreferences{
			ID:                        dc.DocumentID,
			ActiveOnNewService:        getBool(preferences, "activeOnNewService", false),
			ActiveOnNewProposal:       getBool(preferences, "activeOnNewProposal", true),
			ActiveOnProposalValidated: getBool(preferences, "activeOnProposalValidated", true),
			ActiveOnFundRelease:       getBool(preferences, "activeOnFundRelease", true),
			ActiveOnReview:            getBool(preferences, "activeOnReview", true),
			ActiveOnPlatformMarketing: getBool(preferences, "activeOnPlatformMarketing", false),
			ActiveOnProtocolMarketing: getBool(preferences, "activeOnProtocolMarketing", false),
		}
		if err := uc.descriptions.SaveWeb3mailPreferences(ctx, prefs); err != nil {
			return err
		}
		ref := dc.DocumentID
		description.Web3mailPreferences = &ref
	}

	if err := uc.descriptions.SaveUser(ctx, description); err != nil {
		return err
	}

	uc.notifyIndexed(ctx, workmesh.CategoryUser, dc)
	return nil
}
