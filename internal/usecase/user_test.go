package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workmesh/metadata-indexer"
)

func wellFormedCredential() map[string]any {
	return map[string]any{
		"issuer":     "0xA",
		"signature1": "s1",
		"signature2": "s2",
		"credential": map[string]any{
			"author":      "0xB",
			"platform":    "github",
			"description": "verified dev",
			"issueTime":   1000,
			"expiryTime":  2000,
			"userAddress": "0xC",
			"claims": []any{
				map[string]any{"platform": "github", "criteria": "stars", "condition": "gt", "value": "100"},
			},
		},
	}
}

func userDocument(credentials ...map[string]any) []byte {
	doc := map[string]any{"name": "Alice"}
	if credentials != nil {
		items := make([]any, 0, len(credentials))
		for _, c := range credentials {
			items = append(items, c)
		}
		doc["credentials"] = items
	}
	content, _ := json.Marshal(doc)
	return content
}

func TestIngestUserEndToEnd(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "Qm123", SubjectID: "1"}

	require.NoError(t, uc.IngestUser(context.Background(), userDocument(wellFormedCredential()), dc))

	user := store.users["Qm123"]
	require.Equal(t, "Alice", *user.Name)
	require.Equal(t, []string{"cred-Qm123-0xB-github"}, user.Credentials)

	credential := store.credentials["cred-Qm123-0xB-github"]
	require.Equal(t, "0xB", credential.Author)
	require.Equal(t, "github", credential.Platform)
	require.Equal(t, int32(1000), credential.IssueTime)
	require.Equal(t, int32(2000), credential.ExpiryTime)
	require.Equal(t, "0xC", credential.UserAddress)
	require.Equal(t, []string{"cred-Qm123-0xB-github-stars"}, credential.Claims)
	require.Nil(t, credential.ClaimsEncrypted)

	claim := store.claims["cred-Qm123-0xB-github-stars"]
	require.Equal(t, "stars", claim.Criteria)
	require.Equal(t, "gt", claim.Condition)
	require.Equal(t, "100", claim.Value)

	wrapper := store.wrappers["cred-Qm123-0xB-github"]
	require.Equal(t, "0xA", wrapper.Issuer)
	require.Equal(t, "cred-Qm123-0xB-github", wrapper.Credential)
}

func TestIngestUserWriteOrdering(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "Qm123", SubjectID: "1"}

	require.NoError(t, uc.IngestUser(context.Background(), userDocument(wellFormedCredential()), dc))

	require.Equal(t, []string{
		"claim:cred-Qm123-0xB-github-stars",
		"credential:cred-Qm123-0xB-github",
		"wrapper:cred-Qm123-0xB-github",
		"user:Qm123",
	}, store.writes)
}

func TestIngestUserMissingRequiredFieldDropsCredential(t *testing.T) {
	required := []string{"issuer", "signature1", "signature2", "author", "platform", "description", "issueTime", "expiryTime", "userAddress"}

	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			broken := wellFormedCredential()
			if _, ok := broken[field]; ok {
				delete(broken, field)
			} else {
				delete(broken["credential"].(map[string]any), field)
			}
			// A second, distinct well-formed credential must survive.
			sibling := wellFormedCredential()
			sibling["credential"].(map[string]any)["platform"] = "gitlab"

			uc, store, _ := newTestUsecase()
			dc := workmesh.DocumentContext{DocumentID: "QmX", SubjectID: "1"}
			require.NoError(t, uc.IngestUser(context.Background(), userDocument(broken, sibling), dc))

			user := store.users["QmX"]
			require.Equal(t, []string{"cred-QmX-0xB-gitlab"}, user.Credentials)
			require.NotContains(t, store.credentials, "cred-QmX-0xB-github")
			require.NotContains(t, store.wrappers, "cred-QmX-0xB-github")
			require.NotContains(t, store.claims, "cred-QmX-0xB-github-stars")
		})
	}
}

func TestIngestUserMalformedClaimSkipped(t *testing.T) {
	credential := wellFormedCredential()
	credential["credential"].(map[string]any)["claims"] = []any{
		map[string]any{"platform": "github", "criteria": "stars", "condition": "gt", "value": "100"},
		map[string]any{"platform": "github", "criteria": "forks", "condition": "gt"}, // no value
		"not even an object",
	}

	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmC", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), userDocument(credential), dc))

	saved := store.credentials["cred-QmC-0xB-github"]
	require.Equal(t, []string{"cred-QmC-0xB-github-stars"}, saved.Claims)
	require.NotContains(t, store.claims, "cred-QmC-0xB-github-forks")
}

func TestIngestUserEmptyClaimsArrayKeepsCredential(t *testing.T) {
	credential := wellFormedCredential()
	credential["credential"].(map[string]any)["claims"] = []any{}

	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmE", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), userDocument(credential), dc))

	saved, ok := store.credentials["cred-QmE-0xB-github"]
	require.True(t, ok)
	require.NotNil(t, saved.Claims)
	require.Empty(t, saved.Claims)
}

func TestIngestUserNoClaimSourceDropsCredential(t *testing.T) {
	credential := wellFormedCredential()
	delete(credential["credential"].(map[string]any), "claims")

	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmN", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), userDocument(credential), dc))

	require.Empty(t, store.credentials)
	require.Equal(t, []string{}, store.users["QmN"].Credentials)
}

func TestIngestUserClaimsEncrypted(t *testing.T) {
	credential := wellFormedCredential()
	inner := credential["credential"].(map[string]any)
	delete(inner, "claims")
	inner["claimsEncrypted"] = map[string]any{
		"cipherText":             "0xdeadbeef",
		"accessControlCondition": "balance > 0",
	}

	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmS", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), userDocument(credential), dc))

	saved := store.credentials["cred-QmS-0xB-github"]
	require.NotNil(t, saved.ClaimsEncrypted)
	require.Equal(t, "cred-QmS-0xB-github", *saved.ClaimsEncrypted)

	encrypted := store.encrypted["cred-QmS-0xB-github"]
	require.Equal(t, "0xdeadbeef", encrypted.CipherText)
	require.Equal(t, "balance > 0", encrypted.AccessControlCondition)
}

func TestIngestUserInvalidClaimsEncryptedDropsCredential(t *testing.T) {
	credential := wellFormedCredential()
	// Scalars and claims are all valid; the broken encrypted payload still
	// voids the whole credential.
	credential["credential"].(map[string]any)["claimsEncrypted"] = map[string]any{
		"cipherText": "0xdeadbeef",
	}

	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmB", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), userDocument(credential), dc))

	require.Empty(t, store.credentials)
	require.Empty(t, store.claims)
	require.Empty(t, store.encrypted)
	require.Equal(t, []string{}, store.users["QmB"].Credentials)
}

func TestIngestUserCredentialIDCollisionOverwrites(t *testing.T) {
	first := wellFormedCredential()
	second := wellFormedCredential()
	second["credential"].(map[string]any)["description"] = "second opinion"

	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmD", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), userDocument(first, second), dc))

	// Both occurrences land in the list; the store holds the last content.
	require.Equal(t, []string{"cred-QmD-0xB-github", "cred-QmD-0xB-github"}, store.users["QmD"].Credentials)
	require.Equal(t, "second opinion", store.credentials["cred-QmD-0xB-github"].Description)
}

func TestIngestUserNoCredentialsKey(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmU", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), []byte(`{"name":"Bob","skills":"Go, Rust"}`), dc))

	user := store.users["QmU"]
	require.Nil(t, user.Credentials)
	require.Equal(t, "go, rust", *user.SkillsRaw)
}

func TestIngestUserWeb3mailPreferencesAbsent(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmP", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), []byte(`{"name":"Alice"}`), dc))

	require.Empty(t, store.preferences)
	require.Nil(t, store.users["QmP"].Web3mailPreferences)
}

func TestIngestUserWeb3mailPreferencesDefaults(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmP", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), []byte(`{"web3mailPreferences":{}}`), dc))

	prefs := store.preferences["QmP"]
	require.False(t, prefs.ActiveOnNewService)
	require.True(t, prefs.ActiveOnNewProposal)
	require.True(t, prefs.ActiveOnProposalValidated)
	require.True(t, prefs.ActiveOnFundRelease)
	require.True(t, prefs.ActiveOnReview)
	require.False(t, prefs.ActiveOnPlatformMarketing)
	require.False(t, prefs.ActiveOnProtocolMarketing)

	require.Equal(t, "QmP", *store.users["QmP"].Web3mailPreferences)
}

func TestIngestUserWeb3mailPreferencesOverrides(t *testing.T) {
	uc, store, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmP", SubjectID: "1"}
	content := []byte(`{"web3mailPreferences":{"activeOnNewProposal":false,"activeOnPlatformMarketing":true,"activeOnReview":"yes"}}`)
	require.NoError(t, uc.IngestUser(context.Background(), content, dc))

	prefs := store.preferences["QmP"]
	require.False(t, prefs.ActiveOnNewProposal)
	require.True(t, prefs.ActiveOnPlatformMarketing)
	// Mistyped flag falls back to its default.
	require.True(t, prefs.ActiveOnReview)
}

func TestGetCredentialView(t *testing.T) {
	uc, _, _ := newTestUsecase()
	dc := workmesh.DocumentContext{DocumentID: "QmV", SubjectID: "1"}
	require.NoError(t, uc.IngestUser(context.Background(), userDocument(wellFormedCredential()), dc))

	view, err := uc.GetCredential(context.Background(), "cred-QmV-0xB-github")
	require.NoError(t, err)
	require.Equal(t, "0xA", view.Wrapper.Issuer)
	require.Len(t, view.Claims, 1)
	require.Equal(t, "stars", view.Claims[0].Criteria)
	require.Nil(t, view.ClaimsEncrypted)
}
