// Package mysql implements the repository interfaces on GORM over MySQL.
package mysql

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"bizconnect/config"
	"bizconnect/internal/domain/lifecycle"
	"bizconnect/internal/errors"

	gormmysql "gorm.io/driver/mysql"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MySQL client with optional read replicas.
func New(params Params) (*gorm.DB, error) {
	conn := params.Config.MySQL
	if conn == nil {
		return nil, errors.New("mysql configuration is missing")
	}

	db, err := gorm.Open(gormmysql.Open(conn.DSN()), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
		TranslateError:         true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MySQL client")
	}

	if len(conn.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(conn.Replicas))
		for _, replica := range conn.Replicas {
			replicas = append(replicas, gormmysql.Open(conn.ReplicaDSN(replica)))
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get MySQL sql.DB")
	}

	if conn.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conn.MaxOpenConns)
	}
	if conn.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conn.MaxIdleConns)
	}
	if conn.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conn.ConnMaxLifetime)
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping MySQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "MySQL pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "MySQL pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
