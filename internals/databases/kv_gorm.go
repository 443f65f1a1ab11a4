package databases

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// KVBlob mappe la table kv_blobs: une ligne par clé, valeur JSON entière.
// Le contrat lecture-modification-réécriture du blob reste identique au
// backend mémoire; seul le support change.
type KVBlob struct {
	Key       string         `gorm:"column:key;primaryKey;size:100" json:"key"`
	Value     datatypes.JSON `gorm:"column:value" json:"value"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KVBlob) TableName() string {
	return "kv_blobs"
}

// GormKV persiste les blobs dans PostgreSQL via GORM.
type GormKV struct {
	db *gorm.DB
}

// ConnectKV ouvre la connexion PostgreSQL et migre la table des blobs.
func ConnectKV(databaseURL string) (*GormKV, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  databaseURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&KVBlob{}); err != nil {
		return nil, err
	}
	log.Println("✅ Base de données connectée (kv_blobs)")
	return &GormKV{db: db}, nil
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (s *GormKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var blob KVBlob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(blob.Value), true, nil
}

func (s *GormKV) Set(ctx context.Context, key string, value []byte) error {
	blob := KVBlob{Key: key, Value: datatypes.JSON(value)}
	return s.db.WithContext(ctx).Save(&blob).Error
}

func (s *GormKV) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KVBlob{}, "key = ?", key).Error
}

// Close ferme le pool SQL sous-jacent (utilisé à l'arrêt du serveur).
func (s *GormKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
