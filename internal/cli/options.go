package cli

import (
	"fmt"
	"strings"

	"github.com/SscSPs/invoice_form_app/internal/dto"
	"github.com/spf13/cobra"
)

const emptyOption = "(none)"

func (a *app) newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print reservation reference options and each payment's restored selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot(cmd)
			if err != nil {
				return err
			}

			resp := dto.ReferenceOptionsResponse{
				Options:    a.invoiceForm.BuildReferenceOptions(snap.Reservations),
				Selections: a.invoiceForm.SyncPaymentSelections(snap.Reservations, snap.Payments),
			}

			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			out := cmd.OutOrStdout()
			labels := make([]string, len(resp.Options))
			for i, opt := range resp.Options {
				labels[i] = displayOption(opt)
			}
			fmt.Fprintf(out, "Options: %s\n", strings.Join(labels, ", "))
			for i, sel := range resp.Selections {
				fmt.Fprintf(out, "Payment %d: %s\n", i+1, displayOption(sel))
			}
			return nil
		},
	}
	a.addSnapshotFlag(cmd)
	return cmd
}

func displayOption(opt string) string {
	if opt == "" {
		return emptyOption
	}
	return opt
}
