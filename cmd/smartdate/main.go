// smartdate resolves human date input from the command line and serves the
// resolver over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/smartdate/internal/profile"
	"github.com/hrygo/smartdate/locale"
	"github.com/hrygo/smartdate/prediction"
	"github.com/hrygo/smartdate/resolver"
	"github.com/hrygo/smartdate/server"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smartdate",
		Short: "Smart date/time input resolver",
	}

	rootCmd.PersistentFlags().String("format", "yyyy-MM-dd", "target format pattern")
	rootCmd.PersistentFlags().String("locale", string(locale.EnUS), "locale key (en-US, zh-CN)")
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
	viper.SetEnvPrefix("smartdate")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newResolveCmd(), newPredictCmd(), newCorrectCmd(), newServeCmd())
	return rootCmd
}

func cliOptions(strict bool) resolver.Options {
	opts := resolver.DefaultOptions()
	opts.Format = viper.GetString("format")
	opts.Locale = locale.Key(viper.GetString("locale"))
	opts.Strict = strict
	return opts
}

func newResolveCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "resolve <input>",
		Short: "Resolve raw input to a calendar date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := resolver.Resolve(args[0], cliOptions(strict))
			if !out.Resolved {
				if out.Reason != "" {
					return fmt.Errorf("%s", out.Reason)
				}
				return fmt.Errorf("unresolved")
			}
			fmt.Printf("%s\t(%s)\n", out.Formatted, out.Strategy)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "surface a reason on failure")
	return cmd
}

func newPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <input>",
		Short: "Preview what partial input would resolve to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := prediction.NewEngine(resolver.New())
			result, ok := engine.Predict(args[0], viper.GetString("format"))
			if !ok {
				return fmt.Errorf("no prediction")
			}
			fmt.Printf("%s\t%s\tconfidence=%.2f\tkind=%s\n",
				result.Formatted, result.Description, result.Confidence, result.Kind)
			return nil
		},
	}
}

func newCorrectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correct <year> <month> <day>",
		Short: "Clamp a date triple to the nearest valid calendar date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			day, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}
			c := resolver.Correct(year, month, day)
			fmt.Printf("%04d-%02d-%02d\n", c.Year, c.Month, c.Day)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolver over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := profile.Default()
			p.Version = version
			p.DefaultFormat = viper.GetString("format")
			p.DefaultLocale = viper.GetString("locale")
			p.FromEnv()
			if port != 0 {
				p.Port = port
			}
			if err := p.Validate(); err != nil {
				return err
			}
			srv := server.New(p)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return srv.Shutdown(context.Background())
			}
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "binding port (overrides profile)")
	return cmd
}
