package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"visionguard-backend/internal/models"
)

var testimonialCmd = &cobra.Command{
	Use:     "testimonial",
	Aliases: []string{"testi"},
	Short:   "Kelola testimoni pelanggan",
}

var testimonialListCmd = &cobra.Command{
	Use:   "list",
	Short: "Tampilkan semua testimoni",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := api().ListTestimonials(cmd.Context())
		if err != nil {
			return err
		}
		printTestimonials(cmd.OutOrStdout(), items)
		return nil
	},
}

var testimonialFlags = struct {
	name, company, content string
	rating                 int
}{}

var testimonialCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Buat testimoni baru",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		item, err := api().CreateTestimonial(cmd.Context(), testimonialRequest())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Testimoni #%d dibuat\n", item.ID)
		return refreshTestimonials(cmd)
	},
}

var testimonialUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update testimoni (full record)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		item, err := api().UpdateTestimonial(cmd.Context(), id, testimonialRequest())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Testimoni #%d diupdate\n", item.ID)
		return refreshTestimonials(cmd)
	},
}

var testimonialDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hapus testimoni",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := api().DeleteTestimonial(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Testimoni #%d dihapus\n", id)
		return refreshTestimonials(cmd)
	},
}

func testimonialRequest() models.TestimonialCreateRequest {
	return models.TestimonialCreateRequest{
		Name:    testimonialFlags.name,
		Company: optional(testimonialFlags.company),
		Content: testimonialFlags.content,
		Rating:  testimonialFlags.rating,
	}
}

func refreshTestimonials(cmd *cobra.Command) error {
	items, err := api().ListTestimonials(cmd.Context())
	if err != nil {
		return err
	}
	printTestimonials(cmd.OutOrStdout(), items)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{testimonialCreateCmd, testimonialUpdateCmd} {
		c.Flags().StringVar(&testimonialFlags.name, "name", "", "nama pelanggan")
		c.Flags().StringVar(&testimonialFlags.company, "company", "", "perusahaan (opsional)")
		c.Flags().StringVar(&testimonialFlags.content, "content", "", "isi testimoni")
		c.Flags().IntVar(&testimonialFlags.rating, "rating", 5, "rating 1-5")
		_ = c.MarkFlagRequired("name")
		_ = c.MarkFlagRequired("content")
	}

	testimonialCmd.AddCommand(testimonialListCmd, testimonialCreateCmd, testimonialUpdateCmd, testimonialDeleteCmd)
	rootCmd.AddCommand(testimonialCmd)
}
