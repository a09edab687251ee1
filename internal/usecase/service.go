package usecase

import (
	"context"
	"strings"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// IngestService normalizes a service metadata document.
func (uc *DocumentUsecase) IngestService(ctx context.Context, content []byte, dc workmesh.DocumentContext) error {
	ctx, span := tracer.Start(ctx, "Document.IngestService")
	defer span.End()

	obj, err := decodeObject(content, workmesh.CategoryService, dc)
	if err != nil {
		return err
	}

	description := domain.ServiceDescription{
		ID:      dc.DocumentID,
		Service: dc.SubjectID,
	}
	description.Title = getString(obj, "title")
	description.About = getString(obj, "about")
	description.StartDate = getInt(obj, "startDate")
	description.ExpectedEndDate = getInt(obj, "expectedEndDate")
	if keywords := getString(obj, "keywords"); keywords != nil {
		lowered := strings.ToLower(*keywords)
		description.KeywordsRaw = &lowered
	}
	description.RateToken = getString(obj, "rateToken")
	description.RateAmount = getString(obj, "rateAmount")
	description.VideoURL = getString(obj, "video_url")

	if err := uc.descriptions.SaveService(ctx, description); err != nil {
		return err
	}

	uc.notifyIndexed(ctx, workmesh.CategoryService, dc)
	return nil
}
