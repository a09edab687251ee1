package usecase

import (
	"context"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// IngestEvidence normalizes an evidence metadata document.
func (uc *DocumentUsecase) IngestEvidence(ctx context.Context, content []byte, dc workmesh.DocumentContext) error {
	ctx, span := tracer.Start(ctx, "Document.IngestEvidence")
	defer span.End()

	obj, err := decodeObject(content, workmesh.CategoryEvidence, dc)
	if err != nil {
		return err
	}

	description := domain.EvidenceDescription{
		ID:       dc.DocumentID,
		Evidence: dc.SubjectID,
	}
	description.FileURI = getString(obj, "fileUri")
	description.FileHash = getString(obj, "fileHash")
	description.FileTypeExtension = getString(obj, "fileTypeExtension")
	description.Name = getString(obj, "name")
	description.Description = getString(obj, "description")

	if err := uc.descriptions.SaveEvidence(ctx, description); err != nil {
		return err
	}

	uc.notifyIndexed(ctx, workmesh.CategoryEvidence, dc)
	return nil
}
