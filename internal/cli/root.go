// Package cli implements the fitcli command tree.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/internal/clientcfg"
	"github.com/limbo/fittrack/internal/devices"
	"github.com/limbo/fittrack/internal/flow"
	"github.com/limbo/fittrack/internal/localstore"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

var errUnknownOutput = errors.New("--output must be text or yaml")

// App carries the state shared by all commands of one invocation.
type App struct {
	cfgPath string
	verbose bool
	output  string

	cfg     *clientcfg.Config
	store   *localstore.Store
	backend *client.Backend
	ai      *client.AI
	geo     *client.Geocoder
	devices *devices.Manager
	scanner *devices.Scanner

	in  *bufio.Reader
	out io.Writer
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{now: time.Now})
}

func newRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitcli",
		Short:         "Terminal client for the fitness tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&app.cfgPath, "config", "", "path to config file (default $HOME/.fitness/config.yaml)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&app.output, "output", "o", outputText, "output format: text or yaml")

	root.AddCommand(
		app.loginCmd(),
		app.signupCmd(),
		app.logoutCmd(),
		app.homeCmd(),
		app.profileCmd(),
		app.activitiesCmd(),
		app.exerciseCmd(),
		app.chartCmd(),
		app.devicesCmd(),
		app.goalsCmd(),
		app.stepsCmd(),
		app.watchCmd(),
		app.pollLocationCmd(),
		app.notifyCmd(),
		app.configCmd(),
	)
	return root
}

func (a *App) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if a.output != outputText && a.output != outputYAML {
		return errUnknownOutput
	}
	a.in = bufio.NewReader(cmd.InOrStdin())
	a.out = cmd.OutOrStdout()

	cfg, err := clientcfg.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	store, err := localstore.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	a.store = store
	cleanup.Register(&cleanup.Job{Name: "closing local store", F: store.Close})

	a.backend = client.NewBackend(cfg.APIBaseURL, cfg.RequestTimeout)
	a.ai = client.NewAI(cfg.AIURL, cfg.RequestTimeout)
	a.geo = client.NewGeocoder(cfg.GeocoderURL, cfg.OpenCageKey, cfg.RequestTimeout)
	a.devices = devices.NewManager(a.backend, store)
	a.scanner = devices.NewScanner(devices.DefaultScanDelay)

	if _, token, err := store.Session(cmd.Context()); err == nil {
		a.backend.SetToken(token)
	}
	slog.Debug("client ready", slog.String("api", cfg.APIBaseURL), slog.String("db", cfg.DBPath))
	return nil
}

// session returns the logged in phone number.
func (a *App) session(ctx context.Context) (string, error) {
	phone, _, err := a.store.Session(ctx)
	if err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return "", errors.Join(flow.ErrNotLoggedIn, errors.New("run `fitcli login` first"))
		}
		return "", err
	}
	return phone, nil
}

// emit writes v as YAML or through the text renderer.
func (a *App) emit(v any, text func(w io.Writer)) error {
	if a.output == outputYAML {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.New("encoding yaml output error: " + err.Error())
		}
		return enc.Close()
	}
	text(a.out)
	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt asks for a value on the terminal unless current is already set.
func (a *App) prompt(label, current string) (string, error) {
	if current != "" {
		return current, nil
	}
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.New("input closed while waiting for " + strings.ToLower(label))
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) ensureToday(ctx context.Context, phone string) {
	created, err := flow.OpenApp(ctx, a.store, a.backend, phone, a.now(), a.cfg.Location())
	if err != nil {
		slog.Warn("ensuring today's record failed", slog.String("error", err.Error()))
		return
	}
	if created {
		slog.Info("created today's daily record")
	}
}
