package main

import (
	"context"
	"encoding/json"
	"errors"

	synophotos "github.com/anitschke/go-synophotos"
	"github.com/anitschke/go-synophotos/internal/config"
	"github.com/anitschke/go-synophotos/internal/errorx"
	"github.com/anitschke/go-synophotos/internal/logger"
	"github.com/anitschke/go-synophotos/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errAlbumFlags = errors.New("exactly one of --album-id or --passphrase must be set")

// app holds the state shared by all commands for a single invocation.
type app struct {
	envFile  string
	url      string
	account  string
	logLevel string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "synophotos",
		Short: "Browse and organize a Synology Photos library",
		Long: `Browse and organize a Synology Photos library.

Connection settings are read from the environment (and from a .env file if
present):
  SYNOPHOTOS_URL        API entry point, e.g. http://nas:5000/webapi/entry.cgi
  SYNOPHOTOS_ACCOUNT    account to log in as
  SYNOPHOTOS_PASSWORD   password for the account
  SYNOPHOTOS_TIMEOUT    time limit for a whole command (default 1m)
  SYNOPHOTOS_LOG_LEVEL  trace, debug, info, warn or error (default warn)
  SYNOPHOTOS_LOG_FORMAT console or json (default console)`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "file to load environment variables from")
	rootCmd.PersistentFlags().StringVar(&a.url, "url", "", "API entry point, overrides SYNOPHOTOS_URL")
	rootCmd.PersistentFlags().StringVar(&a.account, "account", "", "account, overrides SYNOPHOTOS_ACCOUNT")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides SYNOPHOTOS_LOG_LEVEL")

	rootCmd.AddCommand(
		newAlbumsCmd(a),
		newItemsCmd(a),
		newCreateAlbumCmd(a),
		newAddItemsCmd(a),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if a.url != "" {
		cfg.URL = a.url
	}
	if a.account != "" {
		cfg.Account = a.account
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

// withSession logs in and runs fn with the session, all within the configured
// timeout.
func (a *app) withSession(cmd *cobra.Command, fn func(ctx context.Context, s *synophotos.Session) error) (err error) {
	defer errorx.WrapIfErrorf(&err, "%s", cmd.Name())

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
	defer cancel()

	login := synophotos.LoginRequest{
		Account: a.cfg.Account,
		Passwd:  a.cfg.Password,
	}
	s, err := synophotos.Login(ctx, nil, a.cfg.URL, login, synophotos.SessionOptions{Logger: &a.log})
	if err != nil {
		return err
	}
	return fn(ctx, s)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// albumIDFlags adds the --album-id and --passphrase flags used to pick an
// album.
type albumIDFlags struct {
	id         int64
	passphrase string
}

func (f *albumIDFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.id, "album-id", 0, "id of an album you own")
	cmd.Flags().StringVar(&f.passphrase, "passphrase", "", "passphrase of an album shared with you")
}

func (f *albumIDFlags) set() bool {
	return f.id != 0 || f.passphrase != ""
}

func (f *albumIDFlags) albumID() (types.AlbumID, error) {
	switch {
	case f.id != 0 && f.passphrase != "":
		return types.AlbumID{}, errAlbumFlags
	case f.id != 0:
		return types.OwnedAlbum(f.id), nil
	case f.passphrase != "":
		return types.SharedAlbum(f.passphrase), nil
	default:
		return types.AlbumID{}, errAlbumFlags
	}
}
