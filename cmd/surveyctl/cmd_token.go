package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moda-survey/internal/config"
	"moda-survey/internal/service"
)

var (
	tokenSubject string
	tokenRole    string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for dataset uploads",
	Long:  `Sign an access token with JWT_SECRET. The token is printed on stdout.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "token subject (who uploads)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", service.RoleUploader, "role claim")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if !jwtSvc.Configured() {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	token, expires, err := jwtSvc.IssueAccessToken(tokenSubject, tokenRole)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	logger.Info("token issued", zap.String("subject", tokenSubject), zap.Time("expires_at", expires))
	return nil
}
