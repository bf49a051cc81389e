package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/deepak20001/quickflicks-backend/internal/app/router"
	authadapters "github.com/deepak20001/quickflicks-backend/internal/feature/auth/adapters"
	authhandler "github.com/deepak20001/quickflicks-backend/internal/feature/auth/transport/handler"
	authusecase "github.com/deepak20001/quickflicks-backend/internal/feature/auth/usecase"
	commentadapters "github.com/deepak20001/quickflicks-backend/internal/feature/comments/adapters"
	commenthandler "github.com/deepak20001/quickflicks-backend/internal/feature/comments/transport/handler"
	commentusecase "github.com/deepak20001/quickflicks-backend/internal/feature/comments/usecase"
	likeadapters "github.com/deepak20001/quickflicks-backend/internal/feature/likes/adapters"
	likehandler "github.com/deepak20001/quickflicks-backend/internal/feature/likes/transport/handler"
	likeusecase "github.com/deepak20001/quickflicks-backend/internal/feature/likes/usecase"
	reeladapters "github.com/deepak20001/quickflicks-backend/internal/feature/reels/adapters"
	reelhandler "github.com/deepak20001/quickflicks-backend/internal/feature/reels/transport/handler"
	reelusecase "github.com/deepak20001/quickflicks-backend/internal/feature/reels/usecase"
	reladapters "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/adapters"
	relhandler "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/transport/handler"
	relusecase "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/usecase"
	searchadapters "github.com/deepak20001/quickflicks-backend/internal/feature/search/adapters"
	searchhandler "github.com/deepak20001/quickflicks-backend/internal/feature/search/transport/handler"
	searchusecase "github.com/deepak20001/quickflicks-backend/internal/feature/search/usecase"
	useradapters "github.com/deepak20001/quickflicks-backend/internal/feature/users/adapters"
	userhandler "github.com/deepak20001/quickflicks-backend/internal/feature/users/transport/handler"
	userusecase "github.com/deepak20001/quickflicks-backend/internal/feature/users/usecase"
	"github.com/deepak20001/quickflicks-backend/internal/platform/db"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
	platformredis "github.com/deepak20001/quickflicks-backend/internal/platform/redis"
	"github.com/deepak20001/quickflicks-backend/internal/platform/session"
	"github.com/deepak20001/quickflicks-backend/internal/platform/storage"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func main() {
	gdb := db.OpenDB()

	rdb, err := platformredis.NewRedisClient()
	if err != nil {
		log.Fatalf("redis connect failed: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	media, err := storage.NewMinioStorage(context.Background())
	if err != nil {
		log.Fatalf("minio connect failed: %v", err)
	}

	// Repositories
	userRepo := authadapters.NewUserMySQL(gdb)
	accountRepo := useradapters.NewUserMySQL(gdb)
	reelRepo := reeladapters.NewReelMySQL(gdb)
	commentRepo := commentadapters.NewCommentMySQL(gdb)
	likeRepo := likeadapters.NewLikeMySQL(gdb)
	relRepo := reladapters.NewRelationshipMySQL(gdb)
	searchRepo := searchadapters.NewSearchMySQL(gdb)
	sessions := session.NewSessionRedis(rdb, "session")

	// Usecases
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessions, jwtGen, media, refreshTokenTTL)
	userUC := userusecase.NewUsersUsecase(accountRepo, media)
	reelUC := reelusecase.NewReelsUsecase(reelRepo, accountRepo, media)
	commentUC := commentusecase.NewCommentsUsecase(commentRepo, reelRepo)
	likeUC := likeusecase.NewLikesUsecase(likeRepo, reelRepo, commentRepo)
	relUC := relusecase.NewRelationshipsUsecase(relRepo, accountRepo)
	searchUC := searchusecase.NewSearchUsecase(searchRepo, reelRepo)

	// Handlers
	r := router.NewRouter(router.Handlers{
		Auth:          authhandler.NewAuthHandler(authUC),
		Users:         userhandler.NewUserHandler(userUC),
		Reels:         reelhandler.NewReelHandler(reelUC),
		Comments:      commenthandler.NewCommentHandler(commentUC),
		Likes:         likehandler.NewLikeHandler(likeUC),
		Relationships: relhandler.NewRelationshipHandler(relUC),
		Search:        searchhandler.NewSearchHandler(searchUC),
	})

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
