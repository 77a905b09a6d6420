package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alpaso-live/alpaso-cli/client"
	"github.com/alpaso-live/alpaso-cli/domain"
	"github.com/alpaso-live/alpaso-cli/logger"
	"github.com/alpaso-live/alpaso-cli/session"
)

var (
	cfgFile string
	verbose bool

	// Built once per process in the root PersistentPreRun and shared by
	// every command: the only mutable shared state is the session manager's
	// token.
	log    zerolog.Logger
	tokens *session.Manager
	api    *client.Client
)

const (
	serverKey      = "server"
	defaultServer  = "http://localhost:5003"
	configBaseName = ".alpaso"
)

var rootCmd = &cobra.Command{
	Use:   "alpaso",
	Short: "Storefront and livestream client for the Alpaso backend",
	Long: `alpaso is a terminal client for the Alpaso live-shopping backend.

Browse the product catalog, watch and host live streams, and manage a
seller inventory, all against the backend REST API. Run without arguments
to enter an interactive shell.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.New(verbose)
		store := session.NewFileStore(configPath())
		tokens = session.NewManager(store, log)
		api = client.New(viper.GetString(serverKey), tokens, log)
	},
}

// Execute runs one command when arguments are given, otherwise drops into
// the interactive shell.
func Execute() {
	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	fmt.Println("entering interactive mode, type 'exit' to quit")
	p := prompt.New(
		replExecutor,
		replCompleter,
		prompt.OptionTitle("alpaso"),
		prompt.OptionPrefix("alpaso ❯ "),
	)
	p.Run()
}

func replExecutor(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if line == "exit" || line == "quit" {
		os.Exit(0)
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing command:", err)
		return
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
}

func replCompleter(d prompt.Document) []prompt.Suggest {
	var suggestions []prompt.Suggest
	for _, c := range rootCmd.Commands() {
		if c.Hidden {
			continue
		}
		suggestions = append(suggestions, prompt.Suggest{Text: c.Name(), Description: c.Short})
	}
	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.alpaso.yaml)")
	rootCmd.PersistentFlags().String("server", defaultServer, "Base URL of the Alpaso backend")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	viper.BindPFlag(serverKey, rootCmd.PersistentFlags().Lookup("server"))
	viper.SetDefault(serverKey, defaultServer)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(configBaseName)
	}

	viper.SetEnvPrefix("ALPASO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	return filepath.Join(home, configBaseName+".yaml")
}

// printError renders a failure the way a screen would: validation inline
// before any network round-trip happened, network errors with retry advice
// when the operation is idempotent, auth errors with a re-login hint.
func printError(err error, retryable bool) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(os.Stderr, "Invalid input, %s\n", verr)
	case client.IsAuth(err):
		fmt.Fprintf(os.Stderr, "Error: %v\nYour session may have expired; run 'alpaso login'.\n", err)
	case client.IsNetwork(err) && retryable:
		fmt.Fprintf(os.Stderr, "Error: %v\nRe-run the command to retry.\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
