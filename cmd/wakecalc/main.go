package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blaisecz/sleep-calculator/internal/cli"
	"github.com/blaisecz/sleep-calculator/internal/domain"
	"github.com/blaisecz/sleep-calculator/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile  string
		bedtime  string
		wakeTime string
		asJSON   bool
	)
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "wakecalc",
		Short: "Find wake-up times that line up with the end of a sleep cycle",
		Long: `wakecalc suggests wake-up times aligned to 90-minute sleep cycles.

The quality policy ranks candidates between 5 and 7 cycles by estimated
sleep quality. The proximity policy lists the cycle boundaries closest to
your target in chronological order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			latency := v.GetInt("fall_asleep_minutes")
			req := &domain.WakeTimesRequest{
				Bedtime:           bedtime,
				FallAsleepMinutes: &latency,
				WakeTime:          wakeTime,
				Policy:            v.GetString("policy"),
				TimeFormat:        v.GetString("time_format"),
			}

			resp, err := service.NewWakeTimeService(service.Defaults{}).Compute(context.Background(), req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			cli.Render(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wakecalc/config.yaml)")

	flags := rootCmd.Flags()
	flags.StringVarP(&bedtime, "bedtime", "b", "", "time you go to bed (HH:MM, 24-hour)")
	flags.StringVarP(&wakeTime, "wake", "w", "", "target wake-up time (HH:MM, 24-hour)")
	flags.IntP("fall-asleep", "l", service.DefaultFallAsleepMinutes, "minutes it takes to fall asleep (0-120)")
	flags.StringP("policy", "p", "quality", "window policy: quality or proximity")
	flags.StringP("format", "f", "24h", "time format: 12h or 24h")
	flags.BoolVar(&asJSON, "json", false, "print the result as JSON")
	rootCmd.MarkFlagRequired("bedtime")
	rootCmd.MarkFlagRequired("wake")

	v.BindPFlag("fall_asleep_minutes", flags.Lookup("fall-asleep"))
	v.BindPFlag("policy", flags.Lookup("policy"))
	v.BindPFlag("time_format", flags.Lookup("format"))

	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(filepath.Join(home, ".wakecalc"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("WAKECALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wakecalc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "wakecalc", version)
		},
	}
}
