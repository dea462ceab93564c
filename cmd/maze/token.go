package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/api"
	"github.com/katalvlaran/labyrinth/config"
)

func newTokenCmd(a *app) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the write routes of \"maze serve\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.JWTSecret == "" {
				return fmt.Errorf("%w: JWT_SECRET is not set", config.ErrInvalidConfig)
			}
			if ttl <= 0 {
				return fmt.Errorf("%w: --ttl must be positive", config.ErrInvalidConfig)
			}
			token, err := api.NewTokenizer(a.cfg.JWTSecret, a.cfg.JWTIssuer).Generate(subject, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, token)

			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
