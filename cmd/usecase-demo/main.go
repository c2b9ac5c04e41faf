package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	usecase "github.com/stevehodgkiss/use-case"
	"github.com/stevehodgkiss/use-case/examples/signup"
	"github.com/stevehodgkiss/use-case/pkg/logger"
)

type config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON"  envDefault:"false"`
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var username, email, password string
	cmd := &cobra.Command{
		Use:   "usecase-demo",
		Short: "Runs the sign-up example use case against an in-memory repository",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := env.ParseAs[config]()
			if err != nil {
				return fmt.Errorf("parse environment: %w", err)
			}
			log := logger.NewLogger(&logger.Config{
				Level: logger.LogLevel(cfg.LogLevel),
				JSON:  cfg.LogJSON,
			})
			ctx := logger.ContextWithLogger(cmd.Context(), log)

			form := signup.NewForm(map[string]any{
				"username": username,
				"email":    email,
				"password": password,
			})
			uc := usecase.Invoke(ctx, signup.NewSignUp(
				signup.NewMemoryRepository(),
				stdoutMailer{},
				form,
			))
			if !uc.Succeeded() {
				for _, msg := range uc.Errors().Messages() {
					fmt.Fprintln(os.Stderr, msg)
				}
				os.Exit(1)
			}
			fmt.Printf("signed up %s (%s)\n", uc.User().Username, uc.User().ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username to register")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

// stdoutMailer stands in for an outbound mail service.
type stdoutMailer struct{}

func (stdoutMailer) DeliverWelcome(ctx context.Context, user *signup.User) error {
	logger.FromContext(ctx).Info("Welcome mail sent", "email", user.Email)
	return nil
}
