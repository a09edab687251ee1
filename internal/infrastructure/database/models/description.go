package models

import (
	"time"

	"github.com/lib/pq"
)

type ServiceDescription struct {
	ID              string    `json:"id" gorm:"primaryKey;type:text"`
	Service         string    `json:"service" gorm:"type:text;index"`
	Title           *string   `json:"title" gorm:"type:text"`
	About           *string   `json:"about" gorm:"type:text"`
	StartDate       *int64    `json:"startDate"`
	ExpectedEndDate *int64    `json:"expectedEndDate"`
	KeywordsRaw     *string   `json:"keywords_raw" gorm:"type:text"`
	RateToken       *string   `json:"rateToken" gorm:"type:text"`
	RateAmount      *string   `json:"rateAmount" gorm:"type:text"`
	VideoURL        *string   `json:"video_url" gorm:"type:text"`
	CDate           time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type ProposalDescription struct {
	ID            string    `json:"id" gorm:"primaryKey;type:text"`
	Proposal      string    `json:"proposal" gorm:"type:text;index"`
	StartDate     *int64    `json:"startDate"`
	About         *string   `json:"about" gorm:"type:text"`
	ExpectedHours *int64    `json:"expectedHours"`
	VideoURL      *string   `json:"video_url" gorm:"type:text"`
	CDate         time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type ReviewDescription struct {
	ID      string    `json:"id" gorm:"primaryKey;type:text"`
	Review  string    `json:"review" gorm:"type:text;index"`
	Content *string   `json:"content" gorm:"type:text"`
	CDate   time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type UserDescription struct {
	ID                  string         `json:"id" gorm:"primaryKey;type:text"`
	User                string         `json:"user" gorm:"type:text;index"`
	Title               *string        `json:"title" gorm:"type:text"`
	About               *string        `json:"about" gorm:"type:text"`
	SkillsRaw           *string        `json:"skills_raw" gorm:"type:text"`
	Credentials         pq.StringArray `json:"credentials" gorm:"type:text[]"`
	Timezone            *int64         `json:"timezone"`
	Headline            *string        `json:"headline" gorm:"type:text"`
	Country             *string        `json:"country" gorm:"type:text"`
	Role                *string        `json:"role" gorm:"type:text"`
	Name                *string        `json:"name" gorm:"type:text"`
	VideoURL            *string        `json:"video_url" gorm:"type:text"`
	ImageURL            *string        `json:"image_url" gorm:"type:text"`
	Web3mailPreferences *string        `json:"web3mailPreferences" gorm:"type:text"`
	CDate               time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type PlatformDescription struct {
	ID       string    `json:"id" gorm:"primaryKey;type:text"`
	Platform string    `json:"platform" gorm:"type:text;index"`
	About    *string   `json:"about" gorm:"type:text"`
	Website  *string   `json:"website" gorm:"type:text"`
	VideoURL *string   `json:"video_url" gorm:"type:text"`
	ImageURL *string   `json:"image_url" gorm:"type:text"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type EvidenceDescription struct {
	ID                string    `json:"id" gorm:"primaryKey;type:text"`
	Evidence          string    `json:"evidence" gorm:"type:text;index"`
	FileURI           *string   `json:"fileUri" gorm:"type:text"`
	FileHash          *string   `json:"fileHash" gorm:"type:text"`
	FileTypeExtension *string   `json:"fileTypeExtension" gorm:"type:text"`
	Name              *string   `json:"name" gorm:"type:text"`
	Description       *string   `json:"description" gorm:"type:text"`
	CDate             time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type UserWeb3mailPreferences struct {
	ID                        string    `json:"id" gorm:"primaryKey;type:text"`
	ActiveOnNewService        bool      `json:"activeOnNewService"`
	ActiveOnNewProposal       bool      `json:"activeOnNewProposal"`
	ActiveOnProposalValidated bool      `json:"activeOnProposalValidated"`
	ActiveOnFundRelease       bool      `json:"activeOnFundRelease"`
	ActiveOnReview            bool      `json:"activeOnReview"`
	ActiveOnPlatformMarketing bool      `json:"activeOnPlatformMarketing"`
	ActiveOnProtocolMarketing bool      `json:"activeOnProtocolMarketing"`
	CDate                     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
