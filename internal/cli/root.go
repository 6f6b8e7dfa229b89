// Package cli implements invoicectl, which recomputes invoice form snapshots from the command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/invoice_form_app/internal/apperrors"
	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_form_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_form_app/internal/core/services"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// snapshot is the on-disk form: YAML, or JSON since YAML parses it.
type snapshot struct {
	Reservations []domain.ReservationItem `yaml:"reservations"`
	Payments     []domain.PaymentItem     `yaml:"payments"`
}

type app struct {
	invoiceForm portssvc.InvoiceFormSvcFacade
	logger      *slog.Logger

	output       string
	verbose      bool
	snapshotFile string
}

// NewRootCmd builds the invoicectl command tree around invoiceForm.
func NewRootCmd(invoiceForm portssvc.InvoiceFormSvcFacade) *cobra.Command {
	a := &app{invoiceForm: invoiceForm}

	rootCmd := &cobra.Command{
		Use:           "invoicectl",
		Short:         "Recalculate invoice form snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.output != outputText && a.output != outputJSON {
				return fmt.Errorf("%w: --output must be %q or %q, got %q", apperrors.ErrValidation, outputText, outputJSON, a.output)
			}
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "Output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(a.newTotalsCmd(), a.newOptionsCmd())
	return rootCmd
}

// Execute runs invoicectl with the process arguments and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(services.NewServiceContainer().InvoiceForm).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) addSnapshotFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.snapshotFile, "file", "f", "", "Snapshot file (YAML or JSON), or - for stdin")
	_ = cmd.MarkFlagRequired("file")
}

// loadSnapshot reads the snapshot named by --file.
func (a *app) loadSnapshot(cmd *cobra.Command) (*snapshot, error) {
	var (
		raw []byte
		err error
	)
	if a.snapshotFile == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(a.snapshotFile)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", apperrors.ErrSnapshot, a.snapshotFile, err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", apperrors.ErrSnapshot, a.snapshotFile, err)
	}

	a.logger.Debug("Snapshot loaded",
		slog.String("file", a.snapshotFile),
		slog.Int("reservations", len(snap.Reservations)),
		slog.Int("payments", len(snap.Payments)))
	return &snap, nil
}
