package infra

import (
	"fmt"
	"log"

	"github.com/contractify/contractify-backend/config"
	"github.com/contractify/contractify-backend/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresClient struct {
	DB *gorm.DB
}

func InitPostgresClient(cfg *config.EnvConfig) *PostgresClient {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Postgres.Host,
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Postgres connection failed: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.UserPreferences{},
		&entity.UserSession{},
		&entity.Contract{},
		&entity.ContractVersion{},
		&entity.ContractParty{},
		&entity.ActivityLog{},
		&entity.Job{},
		&entity.Signature{},
		&entity.SignatureToken{},
		&entity.Invitation{},
		&entity.Reminder{},
		&entity.Document{},
	)
	if err != nil {
		log.Fatalf("Postgres migration failed: %v", err)
	}

	log.Println("Connected to Postgres:", cfg.Postgres.Host+":"+cfg.Postgres.Port)

	return &PostgresClient{DB: db}
}
