package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hackathon/backend/libs/authclient"
	"hackathon/backend/libs/httpclient"
	"hackathon/backend/libs/logging"
)

type rootOptions struct {
	configPath string
	baseURL    string
	timeout    time.Duration
	logLevel   string
}

// NewRootCommand builds the authctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "authctl",
		Short:         "Sign in to or sign up with the Hackathon auth backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file (defaults to $CONFIG_FILE)")
	flags.StringVar(&opts.baseURL, "base-url", "", "auth backend address (default "+httpclient.DefaultBaseURL+")")
	flags.DurationVar(&opts.timeout, "timeout", 0, "request timeout")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSignInCommand(opts),
		newSignUpCommand(opts),
		newRolesCommand(),
	)
	return cmd
}

// session is what a subcommand needs to talk to the backend.
type session struct {
	auth   *authclient.Client
	logger *zap.Logger
}

func (o *rootOptions) open() (*session, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.baseURL != "" {
		cfg.Client.BaseURL = o.baseURL
	}
	if o.timeout > 0 {
		cfg.Client.Timeout = o.timeout
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	logger, err := logging.New(logging.Options{
		Service:  "authctl",
		Level:    cfg.Log.Level,
		Encoding: "console",
		Output:   "stderr",
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	httpClient, err := httpclient.New(cfg.Client.BaseURL,
		httpclient.WithTimeout(cfg.Client.Timeout),
		httpclient.WithLogger(logger),
		httpclient.WithRequestIDs(),
	)
	if err != nil {
		return nil, err
	}

	return &session{
		auth:   authclient.New(authclient.WithHTTPClient(httpClient), authclient.WithLogger(logger)),
		logger: logger,
	}, nil
}
