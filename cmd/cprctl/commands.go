package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cpr-planning/internal/application/ports"
	"github.com/jhoicas/cpr-planning/internal/application/procurement"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/lock"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/postgres"
	"github.com/jhoicas/cpr-planning/pkg/config"
	"github.com/jhoicas/cpr-planning/pkg/jwt"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

const cliActor = "cprctl"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cprctl",
		Short:         "Operación de cpr-planning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newReconcileCmd(), newTokenCmd(), newHashKeyCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea o actualiza el esquema en PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				return err
			}
			log.Info().Msg("esquema aplicado")
			return nil
		},
	}
}

func newReconcileCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Elimina pedidos consolidados con número repetido (conserva el más antiguo)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			var locker ports.RunLocker = lock.NewLocalLocker()
			if cfg.Redis.URL != "" {
				rdb, err := lock.NewRedisClient(ctx, cfg.Redis.URL)
				if err != nil {
					return err
				}
				defer rdb.Close()
				locker = lock.NewRedisLocker(rdb)
			}

			repos := postgres.NewRepos(pool)
			uc := procurement.NewReconcileUseCase(postgres.NewTxRunner(pool), repos.Consolidated, locker, cfg.Maintenance.LockTTL(), log)
			res, err := uc.Reconcile(ctx, cliActor, dryRun)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "solo informa, no borra")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var user, role string
	var minutes int
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT firmado con JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}
			switch role {
			case jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleCook, jwt.RoleLogistic:
			default:
				return fmt.Errorf("rol desconocido %q", role)
			}
			if minutes <= 0 {
				minutes = cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(cfg.JWT.Secret, user, role, cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "identificador del usuario")
	cmd.Flags().StringVar(&role, "role", jwt.RoleOperator, "admin, operator, cocina o logistica")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "validez en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newHashKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-key <clave>",
		Short: "Genera el valor de MAINTENANCE_KEY_HASH para una clave",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return err
		},
	}
}

func load() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cliActor, Output: os.Stderr}), nil
}
