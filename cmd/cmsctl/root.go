package main

import (
	"os"

	"github.com/spf13/cobra"

	"visionguard-backend/pkg/client"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:           "cmsctl",
	Short:         "Admin CLI untuk CMS VisionGuard",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultURL := os.Getenv("CMS_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "base URL API CMS")
}

func api() *client.Client {
	return client.New(apiURL)
}
