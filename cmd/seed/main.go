package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go-ems/internal/app"
	"go-ems/internal/auth"
	"go-ems/internal/department"
	"go-ems/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	adminEmail    string
	adminPassword string
)

func connect() (*gorm.DB, error) {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return nil, err
	}
	return db, app.Migrate(db)
}

func seedAdmin(cmd *cobra.Command, args []string) error {
	if adminEmail == "" || adminPassword == "" {
		return errors.New("--email and --password are required")
	}

	db, err := connect()
	if err != nil {
		return err
	}

	repo := auth.NewRepository(db)
	ctx := context.Background()

	taken, err := repo.EmailTaken(ctx, adminEmail)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("a user with email %s already exists", adminEmail)
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	if err := repo.Create(ctx, auth.NewAdminUser(adminEmail, hashed)); err != nil {
		return err
	}

	cmd.Printf("admin user %s created\n", adminEmail)
	return nil
}

var defaultDepartments = []struct {
	Name        string
	Description string
}{
	{"Engineering", "Product development and platform teams"},
	{"Human Resources", "People operations and recruiting"},
	{"Finance", "Accounting, payroll and budgeting"},
	{"Sales", "Revenue and account management"},
	{"Marketing", "Brand, content and demand generation"},
}

func seedDepartments(cmd *cobra.Command, args []string) error {
	db, err := connect()
	if err != nil {
		return err
	}

	repo := department.NewRepository(db)
	ctx := context.Background()

	created := 0
	for _, d := range defaultDepartments {
		taken, err := repo.NameTaken(ctx, d.Name, "")
		if err != nil {
			return err
		}
		if taken {
			continue
		}
		if err := repo.Create(ctx, &department.Department{
			ID:          uuid.New(),
			Name:        d.Name,
			Description: d.Description,
		}); err != nil {
			return err
		}
		created++
	}

	cmd.Printf("%d department(s) created\n", created)
	return nil
}

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Seed baseline records into the database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an admin user",
		RunE:  seedAdmin,
	}
	adminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email address")
	adminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")

	departmentsCmd := &cobra.Command{
		Use:   "departments",
		Short: "Create the default department set",
		RunE:  seedDepartments,
	}

	root.AddCommand(adminCmd, departmentsCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
