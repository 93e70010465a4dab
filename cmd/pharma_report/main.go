package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/pharmacy_dashboard/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// cliActor is recorded as creator for rows written from this tool.
const cliActor = "cli"

type poolKey struct{}

// formatAliases are the short names accepted by --format besides the
// file-style names served over HTTP.
var formatAliases = map[string]domain.ReportFormat{
	"pdf":          domain.ReportFinancialPDF,
	"summary":      domain.ReportSummaryPDF,
	"expenses":     domain.ReportExpensesPDF,
	"csv-sales":    domain.ReportSalesCSV,
	"csv-expenses": domain.ReportExpensesCSV,
	"xlsx":         domain.ReportPharmaciesXLSX,
}

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"PGSQL_URL"},
	}
}

func initDB(c *cli.Context) error {
	pool, err := database.NewPgxPool(c.Context, c.String("db-url"), true)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.Context = context.WithValue(c.Context, poolKey{}, pool)
	return nil
}

func closeDB(c *cli.Context) error {
	if pool, ok := c.Context.Value(poolKey{}).(*pgxpool.Pool); ok && pool != nil {
		pool.Close()
	}
	return nil
}

func repositories(c *cli.Context) portsrepo.RepositoryProvider {
	return pgsql.NewRepositoryProvider(c.Context.Value(poolKey{}).(*pgxpool.Pool))
}

func formatNames() string {
	return "pdf, summary, expenses, csv-sales, csv-expenses, xlsx"
}

func parseFormat(raw string) domain.ReportFormat {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return f
	}
	return domain.ReportFormat(raw)
}

func runExport(c *cli.Context) error {
	format := parseFormat(c.String("format"))
	if !format.IsValid() {
		return cli.Exit(fmt.Sprintf("unknown format %q, expected one of: %s", format, formatNames()), 2)
	}

	var filter domain.RecordFilter
	if c.IsSet("year") {
		y := c.Int("year")
		filter.Year = &y
	}
	if c.IsSet("month") {
		m := c.Int("month")
		filter.Month = &m
	}
	if id := c.String("pharmacy"); id != "" {
		filter.PharmacyID = &id
	}

	out := c.String("out")
	if out == "" {
		out = string(format)
	}

	repos := repositories(c)
	reportSvc := services.NewReportService(repos.SaleRepo, repos.ExpenseRepo, repos.PharmacyRepo, c.String("company"))

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	renderErr := reportSvc.RenderReport(c.Context, format, filter, f, "")
	closeErr := f.Close()

	if renderErr != nil {
		_ = os.Remove(out)
		if errors.Is(renderErr, apperrors.ErrNoData) {
			return cli.Exit("no sales or expenses for the selected period", 3)
		}
		return renderErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to write %s: %w", out, closeErr)
	}

	slog.Info("Report written", slog.String("format", string(format)), slog.String("path", out))
	return nil
}

func runCreateAdmin(c *cli.Context) error {
	repos := repositories(c)
	userSvc := services.NewUserService(repos.UserRepo)

	user, err := userSvc.CreateUser(c.Context, dto.CreateUserRequest{
		Name:     c.String("name"),
		Email:    c.String("email"),
		Password: c.String("password"),
		Role:     domain.RoleAdmin,
	}, cliActor)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return cli.Exit("a user with that email already exists", 1)
		}
		return err
	}

	slog.Info("Administrator created", slog.String("user_id", user.UserID), slog.String("email", user.Email))
	return nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := &cli.App{
		Name:  "pharma_report",
		Usage: "Offline reports and administration for the pharmacy dashboard",
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Render a report for a period to a file",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:  "format",
						Usage: "Report format: " + formatNames(),
						Value: "pdf",
					},
					&cli.IntFlag{Name: "year", Usage: "Year filter"},
					&cli.IntFlag{Name: "month", Usage: "Month filter (1-12)"},
					&cli.StringFlag{Name: "pharmacy", Usage: "Pharmacy ID filter"},
					&cli.StringFlag{Name: "out", Usage: "Output path, defaults to the format name"},
					&cli.StringFlag{
						Name:    "company",
						Usage:   "Company name printed on PDF headers",
						Value:   "Farmacias GI",
						EnvVars: []string{"REPORT_COMPANY_NAME"},
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runExport,
			},
			{
				Name:  "create-admin",
				Usage: "Create an administrator account",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
				},
				Before: initDB,
				After:  closeDB,
				Action: runCreateAdmin,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
