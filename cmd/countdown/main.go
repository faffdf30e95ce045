package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"countdown/internal/locale"
	"countdown/internal/profile"
	"countdown/internal/token"
	"countdown/server"
	"countdown/store"
	"countdown/store/db"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Natural-language countdown timers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServer(cmd.Context())
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <phrase>",
	Short: "Parse a timer phrase and print when it fires",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, loc, err := parsePhrase(args)
		if err != nil {
			return err
		}
		end, err := tok.EndTime(referenceTime())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", tok.Display(loc), end.Format(time.RFC1123))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <phrase>",
	Short: "Run a countdown until the phrase's instant",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, loc, err := parsePhrase(args)
		if err != nil {
			return err
		}
		end, err := tok.EndTime(time.Now())
		if err != nil {
			return err
		}
		return runCountdown(cmd.Context(), cmd.OutOrStdout(), tok.Display(loc), end)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently parsed phrases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}
		driver, err := db.NewDBDriver(p)
		if err != nil {
			return err
		}
		st := store.New(driver, p)
		defer st.Close()
		if err := st.Migrate(cmd.Context()); err != nil {
			return err
		}

		limit := 20
		list, err := st.ListParseHistories(cmd.Context(), &store.FindParseHistory{Limit: &limit})
		if err != nil {
			return err
		}
		for _, h := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-8s\t%q -> %s\n",
				time.Unix(h.CreatedTs, 0).Format("2006-01-02 15:04"), h.Kind, h.Input, h.Display)
		}
		return nil
	},
}

func parsePhrase(args []string) (token.StartToken, *locale.Locale, error) {
	loc := locale.Lookup(viper.GetString("locale"))
	tok, err := token.Parse(strings.Join(args, " "), loc)
	if err != nil {
		return nil, nil, err
	}
	return tok, loc, nil
}

func referenceTime() time.Time {
	if v := viper.GetString("reference"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		slog.Warn("ignoring malformed reference instant", slog.String("reference", v))
	}
	return time.Now()
}

func runCountdown(ctx context.Context, out io.Writer, display string, end time.Time) error {
	fmt.Fprintf(out, "counting down to %s\n", display)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		remaining := time.Until(end)
		if remaining <= 0 {
			fmt.Fprintln(out, "time's up")
			return nil
		}
		fmt.Fprintf(out, "\r%s  ", remaining.Truncate(time.Second))
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func loadProfile() (*profile.Profile, error) {
	p := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Data:    viper.GetString("data"),
		Driver:  viper.GetString("driver"),
		DSN:     viper.GetString("dsn"),
		Locale:  viper.GetString("locale"),
		Version: version,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func runServer(ctx context.Context) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	driver, err := db.NewDBDriver(p)
	if err != nil {
		return err
	}
	st := store.New(driver, p)
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.NewServer(p, st)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(ctx)
	})
	return g.Wait()
}

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server, can be "demo", "dev" or "prod"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8230, "port of the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name")
	rootCmd.PersistentFlags().String("locale", "en-US", "default locale for parsing")
	rootCmd.PersistentFlags().String("reference", "", "reference instant (RFC 3339) for parse, defaults to now")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("countdown")
	viper.AutomaticEnv()

	rootCmd.AddCommand(parseCmd, runCmd, historyCmd)
}

func main() {
	level := slog.LevelInfo
	if viper.GetString("mode") != "prod" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
