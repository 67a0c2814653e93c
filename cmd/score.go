package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentwire/matchengine/internal/logger"
	"github.com/talentwire/matchengine/internal/marketplace"
	"github.com/talentwire/matchengine/internal/matching"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single candidate/job pair and print the breakdown",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("candidate", "", "path to a candidate record file")
	scoreCmd.Flags().String("job", "", "path to a job record file")
}

func score(cmd *cobra.Command) {
	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	candidatePath := cmd.Flag("candidate").Value.String()
	jobPath := cmd.Flag("job").Value.String()

	if candidatePath == "" || jobPath == "" {
		lg.Fatal("both --candidate and --job files are required")
	}

	candidate, err := marketplace.LoadCandidate(candidatePath)
	if err != nil {
		lg.Fatal("loading candidate", zap.Error(err))
	}

	job, err := marketplace.LoadJob(jobPath)
	if err != nil {
		lg.Fatal("loading job", zap.Error(err))
	}

	engine := matching.NewEngine(matching.DefaultLexicon(), lg)
	breakdown := engine.Score(candidate, job)

	lg.Debug("scored pair", logger.BreakdownFields(breakdown)...)

	pretty, err := json.MarshalIndent(breakdown, "", "  ")
	if err != nil {
		lg.Fatal("encoding breakdown", zap.Error(err))
	}

	fmt.Println(string(pretty))
}
