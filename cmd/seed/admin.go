package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"backoffice/internal/auth"
	"backoffice/internal/config"
	"backoffice/internal/db"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/logger"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// adminOptions describes the administrator account to seed.
type adminOptions struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

func adminCmd() *cobra.Command {
	opts := adminOptions{}

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create the default administrator",
		Long:  `Create an active administrator account unless one with the same email already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}
			log := logger.New("info")

			gormDB, err := db.NewMySQL(cfg.MySQLDSN)
			if err != nil {
				return err
			}
			if err := db.Migrate(gormDB); err != nil {
				return err
			}

			repo := repository.NewAccountRepository(gormDB)
			hasher := auth.NewPasswordHasher(cfg.BcryptCost)

			created, err := seedAdmin(cmd.Context(), repo, hasher, opts)
			if err != nil {
				return err
			}
			if created {
				log.Info("administrator created", slog.String("email", model.NormalizeEmail(opts.Email)))
			} else {
				log.Info("administrator already exists", slog.String("email", model.NormalizeEmail(opts.Email)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "admin@example.com", "Administrator email")
	cmd.Flags().StringVar(&opts.Password, "password", "admin123", "Administrator password")
	cmd.Flags().StringVar(&opts.Name, "name", "Admin User", "Administrator display name")
	cmd.Flags().StringVar(&opts.Phone, "phone", "+1234567890", "Administrator phone number")

	return cmd
}

// seedAdmin creates the administrator described by opts. It reports false when an
// account with that email is already stored, leaving it untouched.
func seedAdmin(ctx context.Context, repo repository.AccountRepository, hasher *auth.PasswordHasher, opts adminOptions) (bool, error) {
	email := model.NormalizeEmail(opts.Email)
	if email == "" || opts.Password == "" {
		return false, errors.New("email and password are required")
	}

	_, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return false, fmt.Errorf("check existing admin: %w", err)
	}

	hash, err := hasher.Hash(opts.Password)
	if err != nil {
		return false, err
	}
	admin := &model.Account{
		Name:         opts.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdministrator,
		Status:       model.AccountActive,
		Phone:        opts.Phone,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
