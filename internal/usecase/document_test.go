package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
)

// --- mocks ---

// mockStore implements both repositories and records every write in order so
// tests can assert child-before-parent sequencing.
type mockStore struct {
	services    map[string]domain.ServiceDescription
	proposals   map[string]domain.ProposalDescription
	reviews     map[string]domain.ReviewDescription
	users       map[string]domain.UserDescription
	platforms   map[string]domain.PlatformDescription
	evidences   map[string]domain.EvidenceDescription
	preferences map[string]domain.UserWeb3mailPreferences
	credentials map[string]domain.Credential
	wrappers    map[string]domain.CredentialWrapper
	claims      map[string]domain.Claim
	encrypted   map[string]domain.ClaimsEncrypted
	writes      []string
}

func newMockStore() *mockStore {
	return &mockStore{
		services:    map[string]domain.ServiceDescription{},
		proposals:   map[string]domain.ProposalDescription{},
		reviews:     map[string]domain.ReviewDescription{},
		users:       map[string]domain.UserDescription{},
		platforms:   map[string]domain.PlatformDescription{},
		evidences:   map[string]domain.EvidenceDescription{},
		preferences: map[string]domain.UserWeb3mailPreferences{},
		credentials: map[string]domain.Credential{},
		wrappers:    map[string]domain.CredentialWrapper{},
		claims:      map[string]domain.Claim{},
		encrypted:   map[string]domain.ClaimsEncrypted{},
	}
}

func (m *mockStore) record(kind, id string) {
	m.writes = append(m.writes, kind+":"+id)
}

func (m *mockStore) SaveService(_ context.Context, d domain.ServiceDescription) error {
	m.services[d.ID] = d
	m.record("service", d.ID)
	return nil
}

func (m *mockStore) SaveProposal(_ context.Context, d domain.ProposalDescription) error {
	m.proposals[d.ID] = d
	m.record("proposal", d.ID)
	return nil
}

func (m *mockStore) SaveReview(_ context.Context, d domain.ReviewDescription) error {
	m.reviews[d.ID] = d
	m.record("review", d.ID)
	return nil
}

func (m *mockStore) SaveUser(_ context.Context, d domain.UserDescription) error {
	m.users[d.ID] = d
	m.record("user", d.ID)
	return nil
}

func (m *mockStore) SavePlatform(_ context.Context, d domain.PlatformDescription) error {
	m.platforms[d.ID] = d
	m.record("platform", d.ID)
	return nil
}

func (m *mockStore) SaveEvidence(_ context.Context, d domain.EvidenceDescription) error {
	m.evidences[d.ID] = d
	m.record("evidence", d.ID)
	return nil
}

func (m *mockStore) SaveWeb3mailPreferences(_ context.Context, p domain.UserWeb3mailPreferences) error {
	m.preferences[p.ID] = p
	m.record("preferences", p.ID)
	return nil
}

func (m *mockStore) SaveCredential(_ context.Context, c domain.Credential) error {
	m.credentials[c.ID] = c
	m.record("credential", c.ID)
	return nil
}

func (m *mockStore) SaveCredentialWrapper(_ context.Context, w domain.CredentialWrapper) error {
	m.wrappers[w.ID] = w
	m.record("wrapper", w.ID)
	return nil
}

func (m *mockStore) SaveClaim(_ context.Context, c domain.Claim) error {
	m.claims[c.ID] = c
	m.record("claim", c.ID)
	return nil
}

func (m *mockStore) SaveClaimsEncrypted(_ context.Context, e domain.ClaimsEncrypted) error {
	m.encrypted[e.ID] = e
	m.record("encrypted", e.ID)
	return nil
}

func (m *mockStore) GetService(_ context.Context, id string) (domain.ServiceDescription, error) {
	if d, ok := m.services[id]; ok {
		return d, nil
	}
	return domain.ServiceDescription{}, domain.ErrNotFound
}

func (m *mockStore) GetProposal(_ context.Context, id string) (domain.ProposalDescription, error) {
	if d, ok := m.proposals[id]; ok {
		return d, nil
	}
	return domain.ProposalDescription{}, domain.ErrNotFound
}

func (m *mockStore) GetReview(_ context.Context, id string) (domain.ReviewDescription, error) {
	if d, ok := m.reviews[id]; ok {
		return d, nil
	}
	return domain.ReviewDescription{}, domain.ErrNotFound
}

func (m *mockStore) GetUser(_ context.Context, id string) (domain.UserDescription, error) {
	if d, ok := m.users[id]; ok {
		return d, nil
	}
	return domain.UserDescription{}, domain.ErrNotFound
}

func (m *mockStore) GetPlatform(_ context.Context, id string) (domain.PlatformDescription, error) {
	if d, ok := m.platforms[id]; ok {
		return d, nil
	}
	return domain.PlatformDescription{}, domain.ErrNotFound
}

func (m *mockStore) GetEvidence(_ context.Context, id string) (domain.EvidenceDescription, error) {
	if d, ok := m.evidences[id]; ok {
		return d, nil
	}
	return domain.EvidenceDescription{}, domain.ErrNotFound
}

func (m *mockStore) GetCredential(_ context.Context, id string) (domain.Credential, error) {
	if c, ok := m.credentials[id]; ok {
		return c, nil
	}
	return domain.Credential{}, domain.ErrNotFound
}

func (m *mockStore) GetCredentialWrapper(_ context.Context, id string) (domain.CredentialWrapper, error) {
	if w, ok := m.wrappers[id]; ok {
		return w, nil
	}
	return domain.CredentialWrapper{}, domain.ErrNotFound
}

func (m *mockStore) GetClaims(_ context.Context, ids []string) ([]domain.Claim, error) {
	claims := []domain.Claim{}
	for _, id := range ids {
		if c, ok := m.claims[id]; ok {
			claims = append(claims, c)
		}
	}
	return claims, nil
}

func (m *mockStore) GetClaimsEncrypted(_ context.Context, id string) (domain.ClaimsEncrypted, error) {
	if e, ok := m.encrypted[id]; ok {
		return e, nil
	}
	return domain.ClaimsEncrypted{}, domain.ErrNotFound
}

type mockPublisher struct {
	events []workmesh.Event
}

func (m *mockPublisher) Publish(_ context.Context, event workmesh.Event) error {
	m.events = append(m.events, event)
	return nil
}

func newTestUsecase() (*DocumentUsecase, *mockStore, *mockPublisher) {
	store := newMockStore()
	publisher := &mockPublisher{}
	return NewDocumentUsecase(store, store, publisher), store, publisher
}

// --- tests ---

func TestIngestServiceFlatFields(t *testing.T) {
	uc, store, publisher := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmService", SubjectID: "42"}

	content := []byte(`{
		"title": "Build a dapp",
		"about": "Frontend work",
		"startDate": 1700000000,
		"expectedEndDate": 1700600000,
		"keywords": "React, Solidity",
		"rateToken": "0xToken",
		"rateAmount": "500",
		"video_url": "https://example.com/v"
	}`)

	require.NoError(t, uc.IngestService(context.Background(), content, dc))

	saved := store.services["QmService"]
	require.Equal(t, "42", saved.Service)
	require.Equal(t, "Build a dapp", *saved.Title)
	require.Equal(t, int64(1700000000), *saved.StartDate)
	require.Equal(t, "react, solidity", *saved.KeywordsRaw)
	require.Equal(t, "500", *saved.RateAmount)

	require.Len(t, publisher.events, 1)
	require.Equal(t, workmesh.CategoryService, publisher.events[0].Category)
}

func TestIngestServicePartialDocument(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmPartial", SubjectID: "7"}

	// Wrong kinds and missing keys are normal, not errors.
	content := []byte(`{"title": 12, "startDate": "soon", "about": null}`)
	require.NoError(t, uc.IngestService(context.Background(), content, dc))

	saved := store.services["QmPartial"]
	require.Nil(t, saved.Title)
	require.Nil(t, saved.StartDate)
	require.Nil(t, saved.About)
}

func TestIngestMalformedDocumentWritesNothing(t *testing.T) {
	for _, category := range []workmesh.Category{
		workmesh.CategoryService,
		workmesh.CategoryProposal,
		workmesh.CategoryUser,
		workmesh.CategoryReview,
		workmesh.CategoryPlatform,
		workmesh.CategoryEvidence,
	} {
		uc, store, publisher := newTestUsecase()
		dc := workmesh.DocumentContext{DocumentID: "QmBad", SubjectID: "1"}

		err := uc.Ingest(context.Background(), category, []byte(`not json at all`), dc)
		require.ErrorIs(t, err, domain.ErrMalformedDocument, "category %s", category)
		require.Empty(t, store.writes, "category %s", category)
		require.Empty(t, publisher.events, "category %s", category)
	}
}

func TestIngestTopLevelArrayIsMalformed(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmArr", SubjectID: "1"}

	err := uc.IngestReview(context.Background(), []byte(`[1,2,3]`), dc)
	require.ErrorIs(t, err, domain.ErrMalformedDocument)
	require.Empty(t, store.writes)
}

func TestIngestUnknownCategory(t *testing.T) {
	uc, _, _ := newTestUsecase()
	err := uc.Ingest(context.Background(), workmesh.Category("keyword"), []byte(`{}`), workmesh.DocumentContext{})
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestIngestIdempotent(t *testing.T) {
	content := []byte(`{"content": "great work"}`)
	dc := workmesh.DocumentContext{DocumentID: "QmReview", SubjectID: "9-1"}

	uc1, store1, _ := newTestUsecase()
	require.NoError(t, uc1.IngestReview(context.Background(), content, dc))

	uc2, store2, _ := newTestUsecase()
	require.NoError(t, uc2.IngestReview(context.Background(), content, dc))
	require.NoError(t, uc2.IngestReview(context.Background(), content, dc))

	require.Equal(t, store1.reviews["QmReview"], store2.reviews["QmReview"])
}

func TestIngestEvidenceFields(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmEv", SubjectID: "3"}

	content := []byte(`{"fileUri":"ipfs://f","fileHash":"0xabc","fileTypeExtension":"pdf","name":"invoice","description":"proof of delivery"}`)
	require.NoError(t, uc.IngestEvidence(context.Background(), content, dc))

	saved := store.evidences["QmEv"]
	require.Equal(t, "3", saved.Evidence)
	require.Equal(t, "pdf", *saved.FileTypeExtension)
	require.Equal(t, "proof of delivery", *saved.Description)
}

func TestGetDescriptionRoundTrip(t *testing.T) {
	uc, _, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmPlat", SubjectID: "5"}

	require.NoError(t, uc.IngestPlatform(context.Background(), []byte(`{"website":"https://example.com"}`), dc))

	got, err := uc.GetDescription(context.Background(), workmesh.CategoryPlatform, "QmPlat")
	require.NoError(t, err)
	platform, ok := got.(domain.PlatformDescription)
	require.True(t, ok)
	require.Equal(t, "https://example.com", *platform.Website)

	_, err = uc.GetDescription(context.Background(), workmesh.CategoryPlatform, "QmMissing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
