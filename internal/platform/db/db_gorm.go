package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	commententity "github.com/deepak20001/quickflicks-backend/internal/feature/comments/domain/entity"
	likeentity "github.com/deepak20001/quickflicks-backend/internal/feature/likes/domain/entity"
	reelentity "github.com/deepak20001/quickflicks-backend/internal/feature/reels/domain/entity"
	relentity "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/domain/entity"
)

// OpenDB opens the MySQL connection, retrying for up to a minute so the
// service survives a database that starts after it does.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
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
		if err := db.AutoMigrate(
			&authentity.User{},
			&reelentity.Reel{},
			&reelentity.SavedReel{},
			&commententity.Comment{},
			&likeentity.Like{},
			&relentity.Relationship{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
