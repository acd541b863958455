// Package db opens the GORM database connection used by the repositories.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "user_backend/internal/feature/auth/domain/entity"
	usersentity "user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/platform/config"
)

// Open connects to MySQL, retrying until a 60 second deadline, and runs the
// schema automigration when cfg.RunMigrations is set. It exits the process on
// an unrecoverable failure, matching the startup-only call site.
func Open(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&usersentity.User{},
			&authentity.AuthUser{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
