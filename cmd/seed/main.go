// Command seed wipes the identities table and inserts the two fixed
// accounts the workflow needs: one student and one secretary. Run once
// after provisioning the database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dwahderian-ui/uniform/config"
	"github.com/dwahderian-ui/uniform/internal/model"
	"github.com/dwahderian-ui/uniform/internal/repository"
	"github.com/dwahderian-ui/uniform/pkg/credential"
	"github.com/dwahderian-ui/uniform/pkg/database"
	applogger "github.com/dwahderian-ui/uniform/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("access underlying sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}
	defer sqlDB.Close()

	repo := repository.NewRepository(db)

	identities := []model.Identity{
		{
			Username:     "ido26",
			PasswordHash: credential.Digest("student123"),
			Role:         model.RoleStudent,
		},
		{
			Username:     "anna_admin",
			PasswordHash: credential.Digest("admin123"),
			Role:         model.RoleSecretary,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// clear existing identities to avoid duplicates
	if err := repo.Identity.DeleteAll(ctx); err != nil {
		logger.Fatal("clear identities failed", zap.Error(err))
	}

	for i := range identities {
		if err := repo.Identity.Create(ctx, &identities[i]); err != nil {
			logger.Fatal("insert identity failed",
				zap.String("username", identities[i].Username),
				zap.Error(err),
			)
		}
	}

	logger.Info("seed data inserted",
		zap.String("student", "ido26"),
		zap.String("secretary", "anna_admin"),
	)
}
