package api

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"tixbid/adapters/denylist"
	"tixbid/adapters/password"
	"tixbid/adapters/token"
	"tixbid/repository"
	"tixbid/service"
)

type ServerImpl struct {
	store       repository.IStore
	auction     *service.AuctionService
	accounts    *service.AccountService
	issuer      token.IIssuer
	hasher      *password.Hasher
	htmlChecker *bluemonday.Policy
	redisClient *redis.Client
	db          *gorm.DB

	config ServerConfig
}

func NewServer(config ServerConfig) (*ServerImpl, error) {
	const op = "NewServer"

	// 初始化token簽發器
	issuer, err := token.NewIssuer(
		[]byte(config.Auth.Secret),
		token.WithIssuer(config.Auth.Issuer),
		token.WithAccessTokenTTL(config.Auth.AccessTokenTTL),
		token.WithRefreshTokenTTL(config.Auth.RefreshTokenTTL),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create token issuer, err=%w", op, err)
	}

	// 初始化資料庫連線
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s", config.DB.User, config.DB.Password, config.DB.Host, config.DB.Port, config.DB.Database, config.DB.Schema)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: config.DB.Schema + ".",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database, err=%w", op, err)
	}

	// 初始化Redis連線
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	// 初始化deny-list與各服務
	denyList := denylist.NewStore(
		redisClient,
		denylist.WithStorePrefix(config.Redis.KeyPrefix+"denylist:"),
	)
	store := repository.NewGormStore(db)
	hasher := password.NewHasher()

	return &ServerImpl{
		store:       store,
		auction:     service.NewAuctionService(store),
		accounts:    service.NewAccountService(store, hasher, issuer, denyList),
		issuer:      issuer,
		hasher:      hasher,
		htmlChecker: bluemonday.UGCPolicy(),
		redisClient: redisClient,
		db:          db,
		config:      config,
	}, nil
}

func (impl *ServerImpl) Close() {
	// 關閉Redis連線
	impl.redisClient.Close()
	// 關閉資料庫連線
	if sqlDB, err := impl.db.DB(); err == nil {
		sqlDB.Close()
	}
}
