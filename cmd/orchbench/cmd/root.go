package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orchbench/orchbench/pkg/client"
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.orchbench.yaml)")
	client.AddApiConnectionCommandlineArgs(rootCmd)
}

var rootCmd = &cobra.Command{
	Use:   "orchbench command",
	Short: "Command line utility to benchmark a durable execution engine",
	Long: `
Command line utility to drive many orchestrations against a durable execution engine.

Persistent config can be saved in a config file so it doesn't have to be specified every command.

Example structure:

engineUrl: localhost:8080
basicAuth:
  username: user1
  password: password123

The location of this file can be passed in using --config argument or picked from $HOME/.orchbench.yaml.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var cfgFile string

func initConfig() {
	if err := client.LoadCommandlineArgsFromConfigFile(cfgFile); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
