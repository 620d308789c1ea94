package postgres

import (
	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/sso-jung/lolchat/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Player{},
		&domain.SkillOwned{},
		&domain.Inventory{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Player:     NewPlayerRepository(db),
		SkillOwned: NewSkillOwnedRepository(db),
		Inventory:  NewInventoryRepository(db),
		Tx:         NewTransactor(db),
	}
}
