package usecase

import (
	"context"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// IngestProposal normalizes a proposal metadata document.
func (uc *DocumentUsecase) IngestProposal(ctx context.Context, content []byte, dc workmesh.DocumentContext) error {
	ctx, span := tracer.Start(ctx, "Document.IngestProposal")
	defer span.End()

	obj, err := decodeObject(content, workmesh.CategoryProposal, dc)
	if err != nil {
		return err
	}

	description := domain.ProposalDescription{
		ID:       dc.DocumentID,
		Proposal: dc.SubjectID,
	}
	description.StartDate = getInt(obj, "startDate")
	description.About = getString(obj, "about")
	description.ExpectedHours = getInt(obj, "expectedHours")
	description.VideoURL = getString(obj, "video_url")

	if err := uc.descriptions.SaveProposal(ctx, description); err != nil {
		return err
	}

	uc.notifyIndexed(ctx, workmesh.CategoryProposal, dc)
	return nil
}
