package usecase

import (
	"context"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// IngestPlatform normalizes a platform metadata document.
func (uc *DocumentUsecase) IngestPlatform(ctx context.Context, content []byte, dc workmesh.DocumentContext) error {
	ctx, span := tracer.Start(ctx, "Document.IngestPlatform")
	defer span.End()

	obj, err := decodeObject(content, workmesh.CategoryPlatform, dc)
	if err != nil {
		return err
	}

	description := domain.PlatformDescription{
		ID:       dc.DocumentID,
		Platform: dc.SubjectID,
	}
	description.About = getString(obj, "about")
	description.Website = getString(obj, "website")
	description.VideoURL = getString(obj, "video_url")
	description.ImageURL = getString(obj, "image_url")

	if err := uc.descriptions.SavePlatform(ctx, description); err != nil {
		return err
	}

	uc.notifyIndexed(ctx, workmesh.CategoryPlatform, dc)
	return nil
}
