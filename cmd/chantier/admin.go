package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chantierhq/chantier/internal/auth"
	"github.com/chantierhq/chantier/internal/config"
	"github.com/chantierhq/chantier/internal/db"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin account management commands",
	}

	cmd.AddCommand(newAdminCreateCmd())
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var (
		configPath string
		email      string
		password   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update an admin account",
		Long:  "Creates an admin account with the given email, or resets the password of an existing one. The password is prompted unless --password is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCreate(cmd, configPath, email, password)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "chantier.yaml", "path to Chantier config file")
	cmd.Flags().StringVarP(&email, "email", "e", "", "admin email (defaults to admin.email from config)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted)")
	return cmd
}

func runAdminCreate(cmd *cobra.Command, configPath, email, password string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if email == "" {
		email = cfg.Admin.Email
	}

	if password == "" {
		password, err = promptPassword(cmd, fmt.Sprintf("Password for %s: ", email))
		if err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Database.Database, err)
	}

	if err := db.SeedAdmin(gormDB, email, hash); err != nil {
		return err
	}
	fmt.Fprintf(out, "Admin account %s ready\n", email)
	return nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (tests, pipes).
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, prompt)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(data), nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}
