package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/chantierhq/chantier/internal/auth"
	"github.com/chantierhq/chantier/internal/config"
	"github.com/chantierhq/chantier/internal/db"
	"github.com/spf13/cobra"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBResetCmd())
	cmd.AddCommand(newDBSeedCmd())
	return cmd
}

func newDBSeedCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo projects into an existing database",
		Long:  "Inserts example projects, tasks and resources. Does nothing when projects already exist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBSeed(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "chantier.yaml", "path to Chantier config file")
	return cmd
}

func runDBSeed(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Database.Database, err)
	}

	n, err := db.SeedDemo(gormDB)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(out, "Projects already present, nothing seeded.")
		return nil
	}
	fmt.Fprintf(out, "Seeded %d demo projects\n", n)
	return nil
}

func newDBInitCmd() *cobra.Command {
	var (
		configPath string
		password   string
		demo       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the Chantier database",
		Long:  "Creates the MySQL database, migrates all tables and seeds the admin account. With --demo, also inserts a few example projects.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath, password, demo)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "chantier.yaml", "path to Chantier config file")
	cmd.Flags().StringVar(&password, "admin-password", "", "admin password (prompted when omitted)")
	cmd.Flags().BoolVar(&demo, "demo", false, "seed example projects, tasks and resources")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath, password string, demo bool) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fmt.Fprintf(out, "Loaded config for admin %q from %s\n", cfg.Admin.Email, configPath)

	if password == "" {
		password, err = promptPassword(cmd, fmt.Sprintf("Password for %s: ", cfg.Admin.Email))
		if err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("admin password must not be empty")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	adminDB, err := db.ConnectAdmin(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to MySQL at %s:%d: %w", cfg.Database.Host, cfg.Database.Port, err)
	}
	fmt.Fprintf(out, "Connected to MySQL at %s:%d\n", cfg.Database.Host, cfg.Database.Port)

	if err := db.CreateDatabase(adminDB, cfg.Database.Database); err != nil {
		return err
	}
	fmt.Fprintf(out, "Database %s ready\n", cfg.Database.Database)

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Database.Database, err)
	}

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	if err := db.SeedAdmin(gormDB, cfg.Admin.Email, hash); err != nil {
		return err
	}
	fmt.Fprintf(out, "Admin account %s ready\n", cfg.Admin.Email)

	if demo {
		n, err := db.SeedDemo(gormDB)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(out, "Projects already present, demo seed skipped")
		} else {
			fmt.Fprintf(out, "Seeded %d demo projects\n", n)
		}
	}

	fmt.Fprintln(out, "\nChantier database initialized successfully.")
	return nil
}

func newDBResetCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop the Chantier database",
		Long: `Drops the Chantier database after confirmation.

Run "chantier db init" afterwards to re-create it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBReset(cmd, configPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "chantier.yaml", "path to Chantier config file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func runDBReset(cmd *cobra.Command, configPath string, skipConfirm bool) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if !skipConfirm && !confirmReset(cmd, cfg.Database.Database) {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	adminDB, err := db.ConnectAdmin(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to MySQL at %s:%d: %w", cfg.Database.Host, cfg.Database.Port, err)
	}

	if err := db.DropDatabase(adminDB, cfg.Database.Database); err != nil {
		return err
	}
	fmt.Fprintf(out, "Dropped database %s\n", cfg.Database.Database)

	fmt.Fprintln(out, "\nDatabase dropped successfully.")
	return nil
}

func confirmReset(cmd *cobra.Command, dbName string) bool {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "WARNING: This will permanently delete all data in database %q.\n", dbName)
	fmt.Fprintln(out, "This action cannot be undone.")
	fmt.Fprintln(out)
	fmt.Fprint(out, "Type \"yes\" to confirm: ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()) == "yes"
	}
	return false
}
