package cmd

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orchbench/orchbench/internal/common/util"
	"github.com/orchbench/orchbench/internal/engine"
	"github.com/orchbench/orchbench/internal/loadtest"
	"github.com/orchbench/orchbench/pkg/client"
	"github.com/orchbench/orchbench/pkg/client/domain"
	clientutil "github.com/orchbench/orchbench/pkg/client/util"
)

func init() {
	rootCmd.AddCommand(loadtestCmd)
	loadtestCmd.Flags().Int("count", 0, "Number of orchestrations to start")
	loadtestCmd.Flags().Int("concurrency", 10, "Maximum number of submissions in flight at once")
	loadtestCmd.Flags().String("prefix", "", "Prefix prepended to the generated run timestamp")
	loadtestCmd.Flags().Bool("local", false, "Run against an in-process engine instead of a remote one")
	loadtestCmd.Flags().Bool("wait", false, "With --local, wait for all started workloads to finish before exiting")
	viper.BindPFlag("count", loadtestCmd.Flags().Lookup("count"))
	viper.BindPFlag("concurrency", loadtestCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("prefix", loadtestCmd.Flags().Lookup("prefix"))
}

var loadtestCmd = &cobra.Command{
	Use:   "loadtest [./path/to/loadtest/spec.yaml]",
	Short: "Perform a load test of the execution engine",
	Long: `Perform a load test of the execution engine, from a spec file or from flags.

	Example loadtest.yaml:

	count: 5000
	concurrencyLimit: 200
	prefix: nightly
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := buildSpec(cmd, args)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		clock := &util.DefaultClock{}
		prefix := loadtest.RunPrefix(spec.Prefix, clock.Now())

		var outcome *loadtest.SchedulingOutcome
		if local, _ := cmd.Flags().GetBool("local"); local {
			localEngine := engine.NewLocalEngine()
			outcome, err = loadtest.Schedule(ctx, spec.Count, spec.ConcurrencyLimit, prefix, localEngine.Submit)
			if err == nil {
				if wait, _ := cmd.Flags().GetBool("wait"); wait {
					if waitErr := localEngine.Wait(); waitErr != nil {
						log.Errorf("workload execution failed: %s", waitErr)
					} else {
						log.Infof("All %d local workloads ran to completion.", localEngine.InstanceCount())
					}
				}
			}
		} else {
			apiConnectionDetails := client.ExtractCommandlineApiConnectionDetails()
			err = client.WithSubmitClient(apiConnectionDetails, func(c client.SubmitClient) error {
				var scheduleErr error
				outcome, scheduleErr = loadtest.Schedule(ctx, spec.Count, spec.ConcurrencyLimit, prefix, c.Submit)
				return scheduleErr
			})
		}
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		reportOutcome(outcome)
	},
}

// buildSpec layers the run parameters: spec file values first, then any flag
// set explicitly on the command line, then viper defaults for what remains.
func buildSpec(cmd *cobra.Command, args []string) (*domain.LoadTestSpecification, error) {
	spec := &domain.LoadTestSpecification{}
	if len(args) > 0 {
		if err := clientutil.BindJsonOrYaml(args[0], spec); err != nil {
			return nil, err
		}
	}
	if spec.Count == 0 || cmd.Flags().Changed("count") {
		spec.Count = viper.GetInt("count")
	}
	if spec.ConcurrencyLimit == 0 || cmd.Flags().Changed("concurrency") {
		spec.ConcurrencyLimit = viper.GetInt("concurrency")
	}
	if spec.Prefix == "" || cmd.Flags().Changed("prefix") {
		spec.Prefix = viper.GetString("prefix")
	}
	return spec, nil
}

func reportOutcome(outcome *loadtest.SchedulingOutcome) {
	log.Info(outcome.String())
	if outcome.Failed > 0 {
		log.Errorf("%d submissions failed, first failure at index %d: %s",
			outcome.Failed, outcome.FirstFailedIndex, outcome.FirstError)
	}
	if outcome.Unattempted > 0 {
		log.Warnf("%d orchestrations were never attempted because the run was cancelled", outcome.Unattempted)
	}
}
