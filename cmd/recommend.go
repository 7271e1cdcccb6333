package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bedathon/roommate-matching/internal/domain"
	"github.com/bedathon/roommate-matching/internal/logger"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate a roommate and apartment recommendation report",
	Run: func(cmd *cobra.Command, _ []string) {
		recommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("output", "o", "", "write the JSON report to a file instead of stdout")
	recommendCmd.Flags().Float64P("min-compatibility", "m", 0, "minimum compatibility for roommate pairs")
	recommendCmd.Flags().Bool("examples", false, "use built-in example profiles instead of stored ones")

	viper.BindPFlag("min-compatibility", recommendCmd.Flags().Lookup("min-compatibility"))
}

func recommend(cmd *cobra.Command) {
	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		lg.Fatal("getting a config", zap.Error(err))
	}

	engine, apartments, store := buildEngine(lg, config)
	if store != nil {
		defer store.Close()
	}

	useExamples, _ := cmd.Flags().GetBool("examples")

	var profiles []domain.Profile
	if store != nil && !useExamples {
		profiles, err = store.ListProfiles()
		if err != nil {
			lg.Fatal("listing profiles", zap.Error(err))
		}
	}
	if len(profiles) == 0 {
		lg.Info("no stored profiles, using example profiles")
		profiles = exampleProfiles()
	}

	minCompatibility := config.MinCompatibility
	report := engine.GenerateRecommendations(profiles, apartments, minCompatibility)

	lg.Info("report generated",
		zap.Int("roommates", report.Summary.TotalRoommates),
		zap.Int("apartments", report.Summary.TotalApartments),
		zap.Int("pairs", len(report.RoommateMatches)),
	)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		lg.Fatal("encoding report", zap.Error(err))
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
			lg.Fatal("writing report", zap.String("path", path), zap.Error(err))
		}
		lg.Info("report saved", zap.String("path", path))
		return
	}
	fmt.Println(string(out))
}

// exampleProfiles returns three sample roommates, handy for demoing
// against an empty profile store.
func exampleProfiles() []domain.Profile {
	return []domain.Profile{
		{
			Name: "Alice Johnson", Email: "alice@vt.edu",
			BudgetMin: 800, BudgetMax: 1200, PreferredBedrooms: 2,
			Cleanliness: domain.High, NoiseLevel: domain.Low,
			StudyTime: domain.VeryHigh, SocialLevel: domain.Medium,
			SleepSchedule: domain.High,
			PetFriendly:   true,
		},
		{
			Name: "Bob Smith", Email: "bob@vt.edu",
			BudgetMin: 900, BudgetMax: 1300, PreferredBedrooms: 2,
			Cleanliness: domain.Medium, NoiseLevel: domain.Medium,
			StudyTime: domain.Medium, SocialLevel: domain.High,
			SleepSchedule: domain.Low,
		},
		{
			Name: "Carol Davis", Email: "carol@vt.edu",
			BudgetMin: 700, BudgetMax: 1100, PreferredBedrooms: 3,
			Cleanliness: domain.VeryHigh, NoiseLevel: domain.VeryLow,
			StudyTime: domain.High, SocialLevel: domain.Low,
			SleepSchedule: domain.High,
			PetFriendly:   true,
		},
	}
}
