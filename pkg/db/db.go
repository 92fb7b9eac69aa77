package db

import (
	"fmt"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"liyu1981.xyz/trade-alerts/pkg/common"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

func openConn(dialector gorm.Dialector) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("set sqlite journal mode: %w", err)
	}
	return conn, nil
}

// GetInstance opens the database on first use. Later calls return the same
// instance whatever dialector they pass.
func GetInstance(dialector gorm.Dialector) *DB {
	logger := common.GetCategoryLogger(common.LoggerNameStore, common.LoggerCategoryStore)
	once.Do(func() {
		conn, err := openConn(dialector)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))
		instance = &DB{Conn: conn}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyDbPath); !found {
		dbPath = "alerts.db"
	}
	return UseSqliteFileDialector(dbPath)
}

func UseSqliteFileDialector(dbPath string) gorm.Dialector {
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}
