package workmesh

// Category identifies what kind of marketplace entity a metadata document
// describes. The category is chosen by the submitter, not inferred from the
// document body.
type Category string

const (
	CategoryService  Category = "service"
	CategoryProposal Category = "proposal"
	CategoryUser     Category = "user"
	CategoryReview   Category = "review"
	CategoryPlatform Category = "platform"
	CategoryEvidence Category = "evidence"
)

// ParseCategory validates a submitter-supplied category string.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryService, CategoryProposal, CategoryUser, CategoryReview, CategoryPlatform, CategoryEvidence:
		return Category(s), true
	}
	return "", false
}

// DocumentContext carries the caller-determined identifiers for one ingested
// document: the document's own content-derived id and the id of the entity
// the document describes. Presence is the caller's responsibility.
type DocumentContext struct {
	DocumentID string `json:"documentID"`
	SubjectID  string `json:"subjectID"`
}

// Event is published on the signal channel after a document has been indexed.
type Event struct {
	DocumentID string   `json:"documentID"`
	Category   Category `json:"category"`
	SubjectID  string   `json:"subjectID"`
}
