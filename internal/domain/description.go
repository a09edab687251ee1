package domain

// Description entities are keyed by the document's content-derived id and
// reference the marketplace entity the document describes. All flat fields
// are optional: partial documents are the normal case.

type ServiceDescription struct {
	ID              string  `json:"id"`
	Service         string  `json:"service"`
	Title           *string `json:"title,omitempty"`
	About           *string `json:"about,omitempty"`
	StartDate       *int64  `json:"startDate,omitempty"`
	ExpectedEndDate *int64  `json:"expectedEndDate,omitempty"`
	KeywordsRaw     *string `json:"keywords_raw,omitempty"`
	RateToken       *string `json:"rateToken,omitempty"`
	RateAmount      *string `json:"rateAmount,omitempty"`
	VideoURL        *string `json:"video_url,omitempty"`
}

type ProposalDescription struct {
	ID            string  `json:"id"`
	Proposal      string  `json:"proposal"`
	StartDate     *int64  `json:"startDate,omitempty"`
	About         *string `json:"about,omitempty"`
	ExpectedHours *int64  `json:"expectedHours,omitempty"`
	VideoURL      *string `json:"video_url,omitempty"`
}

type ReviewDescription struct {
	ID      string  `json:"id"`
	Review  string  `json:"review"`
	Content *string `json:"content,omitempty"`
}

type UserDescription struct {
	ID        string  `json:"id"`
	User      string  `json:"user"`
	Title     *string `json:"title,omitempty"`
	About     *string `json:"about,omitempty"`
	SkillsRaw *string `json:"skills_raw,omitempty"`
	// Credentials is nil when the document carried no credentials array,
	// and non-nil (possibly empty) when it did.
	Credentials         []string `json:"credentials,omitempty"`
	Timezone            *int64   `json:"timezone,omitempty"`
	Headline            *string  `json:"headline,omitempty"`
	Country             *string  `json:"country,omitempty"`
	Role                *string  `json:"role,omitempty"`
	Name                *string  `json:"name,omitempty"`
	VideoURL            *string  `json:"video_url,omitempty"`
	ImageURL            *string  `json:"image_url,omitempty"`
	Web3mailPreferences *string  `json:"web3mailPreferences,omitempty"`
}

type PlatformDescription struct {
	ID       string  `json:"id"`
	Platform string  `json:"platform"`
	About    *string `json:"about,omitempty"`
	Website  *string `json:"website,omitempty"`
	VideoURL *string `json:"video_url,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

type EvidenceDescription struct {
	ID                string  `json:"id"`
	Evidence          string  `json:"evidence"`
	FileURI           *string `json:"fileUri,omitempty"`
	FileHash          *string `json:"fileHash,omitempty"`
	FileTypeExtension *string `json:"fileTypeExtension,omitempty"`
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
}

// UserWeb3mailPreferences shares its id with the owning user description.
type UserWeb3mailPreferences struct {
	ID                        string `json:"id"`
	ActiveOnNewService        bool   `json:"activeOnNewService"`
	ActiveOnNewProposal       bool   `json:"activeOnNewProposal"`
	ActiveOnProposalValidated bool   `json:"activeOnProposalValidated"`
	ActiveOnFundRelease       bool   `json:"activeOnFundRelease"`
	ActiveOnReview            bool   `json:"activeOnReview"`
	ActiveOnPlatformMarketing bool   `json:"activeOnPlatformMarketing"`
	ActiveOnProtocolMarketing bool   `json:"activeOnProtocolMarketing"`
}
