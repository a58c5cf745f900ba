package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"leagueportal/internal/auth"
	"leagueportal/internal/config"
	"leagueportal/internal/db"
	"leagueportal/internal/logger"
	"leagueportal/internal/repository"
	"leagueportal/internal/service"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "leaguectl",
		Short:         "Operator tasks for the league portal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(promoteCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every subcommand needs: configuration, a logger and the database.
type env struct {
	cfg *config.Config
	log *slog.Logger
	db  *gorm.DB
}

func connect() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New("leaguectl", cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}
	gormDB, err := db.NewMySQL(cfg.MySQL.DSN, db.Options{MaxOpenConns: 2})
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, db: gormDB}, nil
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (e *env) authService() service.AuthService {
	return service.NewAuthService(
		repository.NewUserRepository(e.db),
		auth.NewJWTService(e.cfg.Auth.JWTSecret, e.cfg.Auth.TokenTTL),
		auth.NewTokenStore(nil),
		e.log,
	)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users, players, payments and payment_events tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := connect()
			if err != nil {
				return err
			}
			defer e.close()
			if err := db.Migrate(e.db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	var name, phone, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an account with the admin role",
		Long: `Create an account with the admin role.

Signup through the API always yields role user; this is the only way to
create an admin from scratch.

Examples:
  leaguectl create-admin --name "League Office" --phone 9000000000 --password s3cret!`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := connect()
			if err != nil {
				return err
			}
			defer e.close()
			user, err := e.authService().CreateAdmin(cmd.Context(), service.SignupInput{
				Name:     name,
				Phone:    phone,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created (%s)\n", user.Phone, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&phone, "phone", "", "login phone number")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func promoteCmd() *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Give an existing account the admin role",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := connect()
			if err != nil {
				return err
			}
			defer e.close()
			user, err := e.authService().Promote(cmd.Context(), phone)
			if err != nil {
				return fmt.Errorf("promote %s: %w", phone, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Phone, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number of the account")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}
