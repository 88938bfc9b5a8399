// Command sleepcalc prints sleep-cycle bed and wake-up suggestions.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/noozes/sleepcalc/internal/api"
	"github.com/noozes/sleepcalc/internal/domain"
	"github.com/noozes/sleepcalc/internal/sleep"
)

func main() {
	svc := sleep.NewService(sleep.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))))
	if err := newRootCmd(svc).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(svc *sleep.Service) *cobra.Command {
	var details bool

	root := &cobra.Command{
		Use:   "sleepcalc",
		Short: "Suggest bed and wake-up times in whole 90-minute sleep cycles.",
		Long: `sleepcalc suggests bed and wake-up times in whole 90-minute sleep cycles, ` +
			`allowing 15 minutes to fall asleep.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&details, "details", false, "show cycles and hours of sleep for each time")

	root.AddCommand(&cobra.Command{
		Use:   "now",
		Short: "Wake-up times if you go to bed now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printSuggestions(cmd.OutOrStdout(), svc.FromNow(cmd.Context()), details)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "wake-up HH:MM",
		Short: "Wake-up times for a given bedtime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := svc.WakeUpFrom(cmd.Context(), args[0])
			if err != nil {
				return reportInvalid(cmd, err)
			}
			printSuggestions(cmd.OutOrStdout(), suggestions, details)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "bedtime HH:MM",
		Short: "Bedtimes for a given wake-up time, earliest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := svc.BedtimeFor(cmd.Context(), args[0])
			if err != nil {
				return reportInvalid(cmd, err)
			}
			printSuggestions(cmd.OutOrStdout(), suggestions, details)
			return nil
		},
	})

	return root
}

func reportInvalid(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), api.InvalidTimeMessage)
	return err
}

func printSuggestions(w io.Writer, suggestions []domain.Suggestion, details bool) {
	for _, s := range suggestions {
		if details {
			fmt.Fprintf(w, "%-8s  %d cycles (%.1f hours of sleep)\n", s.Time, s.Cycles, sleep.SleepHours(s.Cycles))
			continue
		}
		fmt.Fprintln(w, s.Time)
	}
}
