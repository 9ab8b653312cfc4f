package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"visionguard-backend/internal/models"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Kelola proyek portfolio",
}

var portfolioListCmd = &cobra.Command{
	Use:   "list",
	Short: "Tampilkan semua proyek",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := api().ListProjects(cmd.Context())
		if err != nil {
			return err
		}
		printProjects(cmd.OutOrStdout(), projects)
		return nil
	},
}

var portfolioFlags = struct {
	title, description, imageURL, projectType, client, completed string
	cameras                                                      int
}{}

var portfolioCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Buat proyek baru",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		req, err := portfolioRequest(cmd)
		if err != nil {
			return err
		}
		project, err := api().CreateProject(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Proyek #%d dibuat\n", project.ID)
		return refreshProjects(cmd)
	},
}

var portfolioUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update proyek (full record)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		req, err := portfolioRequest(cmd)
		if err != nil {
			return err
		}
		project, err := api().UpdateProject(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Proyek #%d diupdate\n", project.ID)
		return refreshProjects(cmd)
	},
}

var portfolioDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hapus proyek",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := api().DeleteProject(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Proyek #%d dihapus\n", id)
		return refreshProjects(cmd)
	},
}

// portfolioRequest merakit request dari flag. Tipe proyek dibatasi ke
// pilihan form admin; pembatasan ini memang hanya di tooling, bukan di
// service layer.
func portfolioRequest(cmd *cobra.Command) (models.PortfolioProjectCreateRequest, error) {
	if !validProjectType(portfolioFlags.projectType) {
		return models.PortfolioProjectCreateRequest{}, fmt.Errorf(
			"invalid project type %q (pilihan: %s)",
			portfolioFlags.projectType, strings.Join(models.ProjectTypes, ", "))
	}

	var completed *time.Time
	if portfolioFlags.completed != "" {
		t, err := time.Parse("2006-01-02", portfolioFlags.completed)
		if err != nil {
			return models.PortfolioProjectCreateRequest{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
		}
		completed = &t
	}

	var cameras *int
	if cmd.Flags().Changed("cameras") {
		cameras = &portfolioFlags.cameras
	}

	return models.PortfolioProjectCreateRequest{
		Title:          portfolioFlags.title,
		Description:    optional(portfolioFlags.description),
		ImageURL:       optional(portfolioFlags.imageURL),
		ProjectType:    portfolioFlags.projectType,
		ClientName:     optional(portfolioFlags.client),
		CompletionDate: completed,
		CameraCount:    cameras,
	}, nil
}

func validProjectType(t string) bool {
	return slices.Contains(models.ProjectTypes, t)
}

func refreshProjects(cmd *cobra.Command) error {
	projects, err := api().ListProjects(cmd.Context())
	if err != nil {
		return err
	}
	printProjects(cmd.OutOrStdout(), projects)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{portfolioCreateCmd, portfolioUpdateCmd} {
		c.Flags().StringVar(&portfolioFlags.title, "title", "", "judul proyek")
		c.Flags().StringVar(&portfolioFlags.projectType, "type", "", "tipe proyek: "+strings.Join(models.ProjectTypes, "|"))
		c.Flags().StringVar(&portfolioFlags.description, "description", "", "deskripsi (opsional)")
		c.Flags().StringVar(&portfolioFlags.imageURL, "image-url", "", "URL foto proyek (opsional)")
		c.Flags().StringVar(&portfolioFlags.client, "client", "", "nama klien (opsional)")
		c.Flags().StringVar(&portfolioFlags.completed, "completed", "", "tanggal selesai YYYY-MM-DD (opsional)")
		c.Flags().IntVar(&portfolioFlags.cameras, "cameras", 0, "jumlah kamera (opsional)")
		_ = c.MarkFlagRequired("title")
		_ = c.MarkFlagRequired("type")
	}

	portfolioCmd.AddCommand(portfolioListCmd, portfolioCreateCmd, portfolioUpdateCmd, portfolioDeleteCmd)
	rootCmd.AddCommand(portfolioCmd)
}
