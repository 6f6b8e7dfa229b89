package cli

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoice_form_app/internal/utils"
	"github.com/SscSPs/invoice_form_app/internal/utils/mapping"
	"github.com/spf13/cobra"
)

func (a *app) newTotalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Print total reserved, total paid, remaining and balance state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot(cmd)
			if err != nil {
				return err
			}

			totals := a.invoiceForm.ComputeTotals(snap.Reservations, snap.Payments)
			balances := a.invoiceForm.ReservationBalances(snap.Reservations, snap.Payments)
			for _, idx := range totals.Unconverted {
				a.logger.Warn("Payment currency not supported, counted as 0",
					slog.Int("payment", idx+1),
					slog.String("currency", string(totals.Payments[idx].Currency)))
			}

			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), mapping.ToTotalsResponse(totals, balances))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total reserved: %s\n", utils.FormatSettlement(totals.TotalReserved))
			fmt.Fprintf(out, "Total paid:     %s\n", utils.FormatSettlement(totals.TotalPaid))
			fmt.Fprintf(out, "Remaining:      %s (%s)\n", utils.FormatSettlement(totals.Remaining), totals.State)
			for _, b := range balances {
				ref := b.Reference
				if ref == "" {
					ref = "-"
				}
				fmt.Fprintf(out, "  #%d %-8s %s paid of %s, %s\n", b.Index+1, ref,
					utils.FormatSettlement(b.Paid), utils.FormatSettlement(b.Total), b.Class)
			}
			return nil
		},
	}
	a.addSnapshotFlag(cmd)
	return cmd
}
