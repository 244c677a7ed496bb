// Command provision creates salon accounts and records visits from the
// command line. The HTTP API has no registration endpoint.
//
//	provision user -username giulia -password s3cret -role client -first-name Giulia -points 40
//	provision appointment -client giulia -service Taglio -date 2026-01-10 -time 10:30 -points 10
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/ports"
	"github.com/salonelidia/salon-system/internal/core/service"
	"github.com/salonelidia/salon-system/internal/infrastructure/config"
	"github.com/salonelidia/salon-system/internal/infrastructure/db/sqlite"
	"github.com/salonelidia/salon-system/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.LoadTool(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})

	if err := run(ctx, cfg.SQLite.Path, os.Args[1], os.Args[2:], log); err != nil {
		log.Error().Err(err).Msg("provision failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: provision user|appointment [flags]")
}

func run(ctx context.Context, dbPath, cmd string, args []string, log zerolog.Logger) error {
	db, err := sqlite.Open(ctx, sqlite.Config{Path: dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db, log); err != nil {
		return err
	}
	repo := sqlite.NewRepository(db)
	p := service.NewProvisioner(repo, log)

	switch cmd {
	case "user":
		in, err := parseUser(args)
		if err != nil {
			return err
		}
		u, err := p.Create(ctx, in)
		if err != nil {
			return err
		}
		log.Info().Int64("id", u.ID).Str("username", u.Username).Str("role", u.Role.String()).Msg("user created")
		return nil
	case "appointment":
		in, err := parseAppointment(args)
		if err != nil {
			return err
		}
		_, err = p.RecordAppointment(ctx, repo, in)
		return err
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseUser(args []string) (ports.NewUserInput, error) {
	fs := flag.NewFlagSet("user", flag.ContinueOnError)
	var in ports.NewUserInput
	var role string
	fs.StringVar(&in.Username, "username", "", "login name (case-sensitive)")
	fs.StringVar(&in.Password, "password", "", "plaintext password, hashed before storage")
	fs.StringVar(&role, "role", string(domain.RoleClient), "admin or client")
	fs.StringVar(&in.FirstName, "first-name", "", "display name")
	fs.StringVar(&in.Phone, "phone", "", "contact phone")
	fs.Int64Var(&in.Points, "points", 0, "initial loyalty points")
	if err := fs.Parse(args); err != nil {
		return ports.NewUserInput{}, err
	}

	r, err := domain.ParseRole(role)
	if err != nil {
		return ports.NewUserInput{}, err
	}
	in.Role = r
	return in, nil
}

func parseAppointment(args []string) (ports.NewAppointmentInput, error) {
	fs := flag.NewFlagSet("appointment", flag.ContinueOnError)
	var in ports.NewAppointmentInput
	fs.StringVar(&in.ClientUsername, "client", "", "client username")
	fs.StringVar(&in.Service, "service", "", "service name")
	fs.StringVar(&in.Date, "date", "", "YYYY-MM-DD")
	fs.StringVar(&in.Time, "time", "", "HH:MM")
	fs.Int64Var(&in.Points, "points", 0, "points awarded by the visit")
	fs.StringVar(&in.Status, "status", domain.DefaultAppointmentStatus, "appointment status")
	if err := fs.Parse(args); err != nil {
		return ports.NewAppointmentInput{}, err
	}
	return in, nil
}
