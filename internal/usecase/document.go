package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

var tracer = otel.Tracer("document")

// DocumentUsecase normalizes raw metadata documents into the entity graph.
// One call per document, run to completion; a malformed nested item never
// fails the surrounding document, only a top-level decode failure does.
type DocumentUsecase struct {
	descriptions DescriptionRepository
	credentials  CredentialRepository
	signal       EventPublisher
}

func NewDocumentUsecase(
	descriptions DescriptionRepository,
	credentials CredentialRepository,
	signal EventPublisher,
) *DocumentUsecase {
	return &DocumentUsecase{
		descriptions: descriptions,
		credentials:  credentials,
		signal:       signal,
	}
}

// Ingest dispatches a document to the normalizer for its category.
func (uc *DocumentUsecase) Ingest(ctx context.Context, category workmesh.Category, content []byte, dc workmesh.DocumentContext) error {
	switch category {
	case workmesh.CategoryService:
		return uc.IngestService(ctx, content, dc)
	case workmesh.CategoryProposal:
		return uc.IngestProposal(ctx, content, dc)
	case workmesh.CategoryUser:
		return uc.IngestUser(ctx, content, dc)
	case workmesh.CategoryReview:
		return uc.IngestReview(ctx, content, dc)
	case workmesh.CategoryPlatform:
		return uc.IngestPlatform(ctx, content, dc)
	case workmesh.CategoryEvidence:
		return uc.IngestEvidence(ctx, content, dc)
	default:
		return domain.ErrUnknownCategory
	}
}

// decodeObject decodes document bytes into a JSON object. Anything else
// (including a top-level array or scalar) aborts the call with a single
// warning and zero writes.
func decodeObject(content []byte, source workmesh.Category, dc workmesh.DocumentContext) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(content, &obj); err != nil || obj == nil {
		slog.Warn(
			"error parsing document json",
			slog.String("source", string(source)),
			slog.String("document", dc.DocumentID),
		)
		return nil, domain.ErrMalformedDocument
	}
	return obj, nil
}

func (uc *DocumentUsecase) notifyIndexed(ctx context.Context, category workmesh.Category, dc workmesh.DocumentContext) {
	if uc.signal == nil {
		return
	}
	event := workmesh.Event{
		DocumentID: dc.DocumentID,
		Category:   category,
		SubjectID:  dc.SubjectID,
	}
	if err := uc.signal.Publish(ctx, event); err != nil {
		slog.Warn(
			"failed to publish indexed event",
			slog.String("document", dc.DocumentID),
			slog.String("error", err.Error()),
		)
	}
}
