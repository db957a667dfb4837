package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orchbench/orchbench/internal/common/logging"
	"github.com/orchbench/orchbench/internal/trigger"
	"github.com/orchbench/orchbench/pkg/client"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8585", "Address to serve the benchmark trigger API on")
	serveCmd.Flags().Int("concurrency", 10, "Maximum number of submissions in flight per run")
	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an HTTP trigger that starts benchmark runs",
	Long: `Serve an HTTP trigger that starts benchmark runs against the configured engine.

POST /start?count=N&prefix=P starts N orchestrations and reports the outcome.
`,
	Run: func(cmd *cobra.Command, args []string) {
		logging.ConfigureServerLogging()

		concurrency, _ := cmd.Flags().GetInt("concurrency")
		apiConnectionDetails := client.ExtractCommandlineApiConnectionDetails()
		submitClient := client.NewSubmitClient(apiConnectionDetails)

		server := trigger.NewServer(submitClient.Submit, concurrency)
		router := trigger.NewRouter(server)

		listen := viper.GetString("listen")
		log.Infof("serving benchmark trigger on %s, submitting to %s", listen, apiConnectionDetails.EngineUrl)
		if err := router.Run(listen); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}
