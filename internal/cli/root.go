package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tzneal/utm/internal/logging"
)

// Configuration keys, also the flag names and, upper cased with an
// UTMCONV_ prefix, the environment variables.
const (
	keyOutput    = "output"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	log     logging.Logger
}

// NewRootCmd returns the root command for the utmconv CLI
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "utmconv",
		Short:         "Convert between latitude/longitude and UTM",
		Long:          "utmconv converts WGS84 latitude/longitude to Universal Transverse Mercator easting/northing and back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.utmconv.yaml)")
	rootCmd.PersistentFlags().String(keyOutput, "text", "output format: json|text")
	rootCmd.PersistentFlags().String(keyLogLevel, "warn", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().String(keyLogFormat, "text", "log format: json|text")
	for _, key := range []string{keyOutput, keyLogLevel, keyLogFormat} {
		_ = a.v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	rootCmd.AddCommand(newForwardCmd(a))
	rootCmd.AddCommand(newInverseCmd(a))
	rootCmd.AddCommand(newZoneCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
			a.v.SetConfigName(".utmconv")
		}
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("UTMCONV")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		// a missing default config is fine, an explicit one must load
		if a.cfgFile != "" {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
	}

	a.log = logging.NewLogger(cmd.ErrOrStderr(), logging.Config{
		Level:  a.v.GetString(keyLogLevel),
		Format: a.v.GetString(keyLogFormat),
	})
	a.log.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")
	return nil
}
