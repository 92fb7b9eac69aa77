package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

// AlertStore keeps alert rows in a sqlite table whose table and column names
// come from a models.TableConfig.
type AlertStore struct {
	db *DB
}

func NewAlertStore(db *DB) *AlertStore {
	return &AlertStore{db: db}
}

func (s *AlertStore) conn(ctx context.Context) *gorm.DB {
	return s.db.Conn.WithContext(ctx)
}

func (s *AlertStore) quote(name string) string {
	return s.db.Conn.Statement.Quote(name)
}

func eq(column string, value any) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &models.StoreError{Op: op, Err: err}
}

// EnsureTable creates the alert table for cfg if it does not exist yet.
func (s *AlertStore) EnsureTable(ctx context.Context, cfg models.TableConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	%s TEXT NOT NULL,
	%s TEXT,
	%s REAL,
	%s TEXT,
	%s TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`,
		s.quote(cfg.Tablename),
		s.quote(cfg.HashColumnName),
		s.quote(cfg.SymbolColumnName),
		s.quote(cfg.PriceLevelColumnName),
		s.quote(cfg.UserIDColumnName),
		s.quote(cfg.DirectionColumnName),
	)
	if err := s.conn(ctx).Exec(ddl).Error; err != nil {
		return storeError("ensure table", err)
	}

	index := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		s.quote("idx_"+cfg.Tablename+"_"+cfg.HashColumnName),
		s.quote(cfg.Tablename),
		s.quote(cfg.HashColumnName),
	)
	if err := s.conn(ctx).Exec(index).Error; err != nil {
		return storeError("ensure table", err)
	}

	common.GetCategoryLogger(common.LoggerNameStore, common.LoggerCategoryStore).
		Info("Alert table ready", zap.String("table", cfg.Tablename))
	return nil
}

func (s *AlertStore) DistinctSymbols(ctx context.Context, cfg models.TableConfig) ([]string, error) {
	var symbols []string
	err := s.conn(ctx).
		Table(cfg.Tablename).
		Where(clause.Neq{Column: clause.Column{Name: cfg.SymbolColumnName}, Value: nil}).
		Distinct().
		Pluck(cfg.SymbolColumnName, &symbols).Error
	if err != nil {
		return nil, storeError("distinct symbols", err)
	}
	return symbols, nil
}

func (s *AlertStore) selectRows(ctx context.Context, table string, conds ...any) ([]models.Row, error) {
	var found []map[string]interface{}
	query := s.conn(ctx).Table(table)
	for _, cond := range conds {
		query = query.Where(cond)
	}
	if err := query.Order("id").Find(&found).Error; err != nil {
		return nil, err
	}

	rows := make([]models.Row, len(found))
	for i, row := range found {
		rows[i] = models.Row(row)
	}
	return rows, nil
}

func (s *AlertStore) AllAlerts(ctx context.Context, cfg models.TableConfig) ([]models.Row, error) {
	rows, err := s.selectRows(ctx, cfg.Tablename)
	if err != nil {
		return nil, storeError("all alerts", err)
	}
	return rows, nil
}

func (s *AlertStore) SelectWhere(ctx context.Context, cfg models.TableConfig, column string, value string) ([]models.Row, error) {
	rows, err := s.selectRows(ctx, cfg.Tablename, eq(column, value))
	if err != nil {
		return nil, storeError("select", err)
	}
	return rows, nil
}

func (s *AlertStore) ResolveIDByHash(ctx context.Context, hash string, cfg models.TableConfig) (models.RowID, error) {
	var ids []int64
	err := s.conn(ctx).
		Table(cfg.Tablename).
		Where(eq(cfg.HashColumnName, hash)).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return 0, storeError("resolve id", err)
	}

	switch len(ids) {
	case 0:
		return 0, storeError("resolve id", fmt.Errorf("hash %s: %w", hash, models.ErrNotFound))
	case 1:
		return models.RowID(ids[0]), nil
	default:
		return 0, storeError("resolve id", &models.AmbiguousHashError{
			Hash: hash,
			IDs:  common.Mapper(ids, func(id int64) models.RowID { return models.RowID(id) }),
		})
	}
}

func (s *AlertStore) DeleteRow(ctx context.Context, table string, id models.RowID) error {
	result := s.conn(ctx).Exec("DELETE FROM "+s.quote(table)+" WHERE id = ?", int64(id))
	if result.Error != nil {
		return storeError("delete row", result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError("delete row", fmt.Errorf("id %d: %w", id, models.ErrNotFound))
	}
	return nil
}

func (s *AlertStore) InsertIfUnique(ctx context.Context, cfg models.TableConfig, row models.Row) error {
	hash, ok := row[cfg.HashColumnName].(string)
	if !ok || hash == "" {
		return storeError("insert", fmt.Errorf("%w: row has no %s", models.ErrInvalidAlert, cfg.HashColumnName))
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(cfg.Tablename).Where(eq(cfg.HashColumnName, hash)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("hash %s: %w", hash, models.ErrDuplicateHash)
		}
		return tx.Table(cfg.Tablename).Create(map[string]interface{}(row)).Error
	})
	return storeError("insert", err)
}
