package usecase

import (
	"context"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// IngestReview normalizes a review metadata document. Reviews are never
// updated upstream, so re-delivery always carries identical content.
func (uc *DocumentUsecase) IngestReview(ctx context.Context, content []byte, dc workmesh.DocumentContext) error {
	ctx, span := tracer.Start(ctx, "Document.IngestReview")
	defer span.End()

	obj, err := decodeObject(content, workmesh.CategoryReview, dc)
	if err != nil {
		return err
	}

	description := domain.ReviewDescription{
		ID:     dc.DocumentID,
		Review: dc.SubjectID,
	}
	description.Content = getString(obj, "content")

	if err := uc.descriptions.SaveReview(ctx, description); err != nil {
		return err
	}

	uc.notifyIndexed(ctx, workmesh.CategoryReview, dc)
	return nil
}
