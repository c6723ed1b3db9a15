package postgres

import (
	"forwarding/internal/adapters/out/postgres/outboxrepo"
	"forwarding/internal/adapters/out/postgres/packagerepo"
	"forwarding/internal/adapters/out/postgres/racerepo"
	"forwarding/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by this adapter, children first.
var Tables = []string{"reception_statuses", "packages", "races", "users", "outbox_messages"}

// Migrate creates or updates the schema of all repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&racerepo.RaceDTO{},
		&packagerepo.PackageDTO{},
		&packagerepo.ReceptionStatusDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
