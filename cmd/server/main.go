package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"user_backend/internal/app/router"
	authadapters "user_backend/internal/feature/auth/adapters"
	authhandler "user_backend/internal/feature/auth/transport/handler"
	authusecase "user_backend/internal/feature/auth/usecase"
	useradapters "user_backend/internal/feature/users/adapters"
	userhandler "user_backend/internal/feature/users/transport/handler"
	userusecase "user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/cache"
	"user_backend/internal/platform/config"
	"user_backend/internal/platform/db"
	jwtmw "user_backend/internal/platform/jwt"
	platformredis "user_backend/internal/platform/redis"
	"user_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	gdb := db.Open(cfg.DB)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories; single-record reads go through the Redis cache.
	authRepo := authadapters.NewAuthUserMySQL(gdb)
	userRepo := useradapters.NewUserMySQL(gdb)
	cachedUserRepo := cache.NewCachingUserRepository(rdb, cfg.CacheTTL, userRepo, "users")

	// Usecases
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(authRepo, tokenGen)
	userUC := userusecase.NewUserUsecase(cachedUserRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)

	// Shared fixed-window limiter for the credential endpoints.
	limiter := ratelimiter.New(cfg.AuthRateLimit, cfg.AuthRateWindow)

	r := router.NewRouter(authH, userH, limiter.Middleware(), cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
