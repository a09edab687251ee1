package providers

import (
	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/workmesh/metadata-indexer/client"
	"github.com/workmesh/metadata-indexer/internal/config"
	"github.com/workmesh/metadata-indexer/internal/infrastructure/database"
)

// NewDatabase opens a Postgres connection using the configured DSN.
func NewDatabase(conf config.Server) (*gorm.DB, error) {
	return database.NewPostgres(conf.PostgresDsn)
}

// MigrateDatabase applies migrations for the application models.
func MigrateDatabase(db *gorm.DB) error {
	return database.MigratePostgres(db)
}

// NewMemcache creates a memcache client.
func NewMemcache(addr string) *memcache.Client {
	return memcache.New(addr)
}

// NewClient constructs the IPFS gateway client used to fetch documents by cid.
func NewClient(conf config.Server) *client.Client {
	return client.New(conf.IpfsGateway)
}
