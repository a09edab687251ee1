package models

import (
	"time"

	"github.com/lib/pq"
)

type Credential struct {
	ID              string         `json:"id" gorm:"primaryKey;type:text"`
	Author          string         `json:"author" gorm:"type:text;index"`
	Platform        string         `json:"platform" gorm:"type:text"`
	Description     string         `json:"description" gorm:"type:text"`
	IssueTime       int32          `json:"issueTime"`
	ExpiryTime      int32          `json:"expiryTime"`
	UserAddress     string         `json:"userAddress" gorm:"type:text"`
	ClaimsEncrypted *string        `json:"claimsEncrypted" gorm:"type:text"`
	Claims          pq.StringArray `json:"claims" gorm:"type:text[]"`
	CDate           time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type CredentialWrapper struct {
	ID         string    `json:"id" gorm:"primaryKey;type:text"`
	Credential string    `json:"credential" gorm:"type:text"`
	Issuer     string    `json:"issuer" gorm:"type:text;index"`
	Signature1 string    `json:"signature1" gorm:"type:text"`
	Signature2 string    `json:"signature2" gorm:"type:text"`
	CDate      time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Claim struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	Platform  string    `json:"platform" gorm:"type:text"`
	Criteria  string    `json:"criteria" gorm:"type:text"`
	Condition string    `json:"condition" gorm:"type:text"`
	Value     string    `json:"value" gorm:"type:text"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type ClaimsEncrypted struct {
	ID                     string    `json:"id" gorm:"primaryKey;type:text"`
	CipherText             string    `json:"cipherText" gorm:"type:text"`
	AccessControlCondition string    `json:"accessControlCondition" gorm:"type:text"`
	CDate                  time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
