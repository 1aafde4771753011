// Package db opens the GORM MySQL connection used by the service.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"user_backend/internal/feature/account/domain/entity"
)

// OpenDB connects to MySQL using environment configuration and retries for
// up to a minute so the service survives a database that is still starting.
// When INSTANCE_CONNECTION_NAME is set the connection goes through the
// Cloud SQL unix socket.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	instance := os.Getenv("INSTANCE_CONNECTION_NAME")

	var dsn string
	if instance != "" {
		dsn = fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, instance, name)
	} else {
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, host, port, name)
	}

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

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// Creates the users table, including the unique email index the
		// registration workflow relies on.
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
