package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"visionguard-backend/internal/models"
)

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "Kelola FAQ",
}

var faqListCmd = &cobra.Command{
	Use:   "list",
	Short: "Tampilkan semua FAQ urut order index",
	RunE: func(cmd *cobra.Command, args []string) error {
		faqs, err := api().ListFAQs(cmd.Context())
		if err != nil {
			return err
		}
		printFAQs(cmd.OutOrStdout(), faqs)
		return nil
	},
}

var faqFlags = struct {
	question, answer string
	order            int
}{}

var faqCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Buat FAQ baru",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		order := faqFlags.order
		if !cmd.Flags().Changed("order") {
			// FAQ baru masuk di urutan paling belakang
			// (order = panjang list sekarang).
			faqs, err := api().ListFAQs(cmd.Context())
			if err != nil {
				return err
			}
			order = defaultOrderIndex(faqs)
		}

		faq, err := api().CreateFAQ(cmd.Context(), models.FAQCreateRequest{
			Question:   faqFlags.question,
			Answer:     faqFlags.answer,
			OrderIndex: order,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "FAQ #%d dibuat (order %d)\n", faq.ID, faq.OrderIndex)
		return refreshFAQs(cmd)
	},
}

var faqUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update FAQ (full record)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		faq, err := api().UpdateFAQ(cmd.Context(), id, models.FAQCreateRequest{
			Question:   faqFlags.question,
			Answer:     faqFlags.answer,
			OrderIndex: faqFlags.order,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "FAQ #%d diupdate\n", faq.ID)
		return refreshFAQs(cmd)
	},
}

var faqDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hapus FAQ",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := api().DeleteFAQ(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "FAQ #%d dihapus\n", id)
		return refreshFAQs(cmd)
	},
}

func defaultOrderIndex(faqs []models.FAQ) int {
	return len(faqs)
}

func refreshFAQs(cmd *cobra.Command) error {
	faqs, err := api().ListFAQs(cmd.Context())
	if err != nil {
		return err
	}
	printFAQs(cmd.OutOrStdout(), faqs)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{faqCreateCmd, faqUpdateCmd} {
		c.Flags().StringVar(&faqFlags.question, "question", "", "pertanyaan")
		c.Flags().StringVar(&faqFlags.answer, "answer", "", "jawaban")
		c.Flags().IntVar(&faqFlags.order, "order", 0, "urutan tampil (kosong saat create = paling belakang)")
		_ = c.MarkFlagRequired("question")
		_ = c.MarkFlagRequired("answer")
	}

	faqCmd.AddCommand(faqListCmd, faqCreateCmd, faqUpdateCmd, faqDeleteCmd)
	rootCmd.AddCommand(faqCmd)
}
