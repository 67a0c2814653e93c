package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentwire/matchengine/internal/ai"
	"github.com/talentwire/matchengine/internal/ai/gemini"
	"github.com/talentwire/matchengine/internal/logger"
	"github.com/talentwire/matchengine/internal/marketplace"
	"github.com/talentwire/matchengine/internal/matching"
	"github.com/talentwire/matchengine/internal/ranking"
	"github.com/talentwire/matchengine/internal/secrets"
)

const (
	PromptShowMatches      = "Show matches"
	PromptReportByIndustry = "Report by industry"
	PromptMatchesToFile    = "Dump matches to file"
	PromptAISummary        = "AI summary of top matches"
	PromptExit             = "Exit"
)

var errExit = errors.New("exit requested")

var rankPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowMatches, PromptReportByIndustry, PromptMatchesToFile, PromptAISummary, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank job postings for a candidate, or candidates for a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().BoolP("auto-approve", "y", false, "print the ranked matches and exit without prompting")
	rankCmd.Flags().String("candidate-file", "", "path to a candidate record file")
	rankCmd.Flags().String("jobs-file", "", "path to a job postings export file")
	rankCmd.Flags().String("job-file", "", "path to a job record file")
	rankCmd.Flags().String("candidates-file", "", "path to a candidates export file")
	rankCmd.Flags().Int("limit", 0, "truncate the input collection before scoring")
	rankCmd.Flags().Int("min-score", 0, "drop matches scoring below this threshold")
	rankCmd.Flags().String("industry", "", "keep only postings whose industry contains this text")
	rankCmd.Flags().String("location", "", "keep only matches whose location contains this text")

	viper.BindPFlag("candidate-file", rankCmd.Flags().Lookup("candidate-file"))
	viper.BindPFlag("jobs-file", rankCmd.Flags().Lookup("jobs-file"))
	viper.BindPFlag("job-file", rankCmd.Flags().Lookup("job-file"))
	viper.BindPFlag("candidates-file", rankCmd.Flags().Lookup("candidates-file"))
	viper.BindPFlag("ranking.limit", rankCmd.Flags().Lookup("limit"))
	viper.BindPFlag("ranking.min-score", rankCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("ranking.industry", rankCmd.Flags().Lookup("industry"))
	viper.BindPFlag("ranking.location", rankCmd.Flags().Lookup("location"))
}

// rank is the main command for the cli.
func rank(cmd *cobra.Command) {
	ctx := context.Background()

	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		lg.Fatal("getting a config", zap.Error(err))
	}

	lg.Info("starting the matchengine", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	lg.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	opts := ranking.Options{
		Limit:    viper.GetInt("ranking.limit"),
		MinScore: viper.GetInt("ranking.min-score"),
		Industry: viper.GetString("ranking.industry"),
		Location: viper.GetString("ranking.location"),
	}

	engine := matching.NewEngine(matching.DefaultLexicon(), lg)
	ranker := ranking.NewRanker(engine, lg)
	if config.Ranking.Workers > 0 {
		ranker.SetWorkers(config.Ranking.Workers)
	}

	candidate, matches, err := rankFromConfig(ctx, ranker, config, opts, lg)
	if err != nil {
		lg.Fatal("ranking failed", zap.Error(err))
	}

	if matches.Len() == 0 {
		lg.Info("exiting", zap.String("reason", "no matches left after filters"))
		return
	}

	lg.Info("ranking completed", zap.Int("matches", matches.Len()))

	if cmd.Flag("auto-approve").Value.String() == "true" {
		printMatches(lg, matches)
		return
	}

	for {
		_, action, err := rankPrompt.Run()
		if err != nil {
			lg.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, lg, config, candidate, matches); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			lg.Fatal("exiting", zap.Error(err))
		}
	}
}

// rankFromConfig decides the ranking direction from the configured inputs:
// candidate + jobs export, or job + candidates export.
func rankFromConfig(ctx context.Context, ranker *ranking.Ranker, config *Config, opts ranking.Options, lg *zap.Logger) (*marketplace.Candidate, *ranking.Matches, error) {
	switch {
	case config.CandidateFile != "" && config.JobsFile != "":
		candidate, err := marketplace.LoadCandidate(config.CandidateFile)
		if err != nil {
			return nil, nil, err
		}

		jobs, err := marketplace.LoadJobs(config.JobsFile)
		if err != nil {
			return nil, nil, err
		}

		lg.Info("ranking jobs for candidate",
			zap.String("candidate", candidate.Label()),
			zap.Int("jobs", jobs.Len()),
		)

		matches, err := ranker.RankJobsForCandidate(ctx, candidate, jobs, opts)
		return candidate, matches, err

	case config.JobFile != "" && config.CandidatesFile != "":
		job, err := marketplace.LoadJob(config.JobFile)
		if err != nil {
			return nil, nil, err
		}

		candidates, err := marketplace.LoadCandidates(config.CandidatesFile)
		if err != nil {
			return nil, nil, err
		}

		lg.Info("ranking candidates for job",
			zap.String("job", job.Label()),
			zap.Int("candidates", candidates.Len()),
		)

		matches, err := ranker.RankCandidatesForJob(ctx, job, candidates, opts)
		return nil, matches, err

	default:
		return nil, nil, errors.New("either candidate-file + jobs-file or job-file + candidates-file must be configured")
	}
}

func handleAction(ctx context.Context, action string, lg *zap.Logger, config *Config, candidate *marketplace.Candidate, matches *ranking.Matches) error {
	switch action {
	case PromptShowMatches:
		printMatches(lg, matches)
		return nil
	case PromptReportByIndustry:
		pretty, _ := json.MarshalIndent(matches.ReportByIndustry(), "", "  ")
		lg.Info(string(pretty), zap.Int("matches", matches.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := matches.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		lg.Info("dumping matches to file", zap.String("filename", filename))
		return nil
	case PromptAISummary:
		return summarize(ctx, lg, config, candidate, matches)
	case PromptExit:
		lg.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printMatches(lg *zap.Logger, matches *ranking.Matches) {
	pretty, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		lg.Warn("encoding matches", zap.Error(err))
		return
	}
	fmt.Println(string(pretty))
}

func summarize(ctx context.Context, lg *zap.Logger, config *Config, candidate *marketplace.Candidate, matches *ranking.Matches) error {
	if candidate == nil {
		return errors.New("ai summary is only available when ranking jobs for a candidate")
	}

	summarizer, err := newAISummarizer(ctx, config.AI, lg)
	if err != nil {
		return fmt.Errorf("building ai summarizer: %w", err)
	}

	summary, err := summarizer.Summarize(ctx, candidate, matches)
	if err != nil {
		return fmt.Errorf("ai summary: %w", err)
	}

	fmt.Println(summary.Text)
	return nil
}

func newAISummarizer(ctx context.Context, cfg *AIConfig, lg *zap.Logger) (ai.Summarizer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("ai is not enabled in the configuration")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithFields(lg, logger.CommonFields("gemini", cfg.Gemini.Model)...)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewSummarizer(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}
