package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bedathon/roommate-matching/internal/domain"
	"github.com/bedathon/roommate-matching/internal/httpapi"
	"github.com/bedathon/roommate-matching/internal/logger"
	"github.com/bedathon/roommate-matching/internal/matching"
	"github.com/bedathon/roommate-matching/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the matching HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address (default :8080)")
	viper.BindPFlag("address", serveCmd.Flags().Lookup("address"))
}

func serve() {
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

	var profiles httpapi.ProfileRepository
	if store != nil {
		profiles = &httpapi.SQLiteProfilesRepo{Store: store}
	} else {
		profiles = httpapi.NewMemoryProfileRepo()
		lg.Warn("no database configured, profiles are kept in memory only")
	}

	srv := httpapi.NewServer(engine, apartments, profiles, lg)

	lg.Info("API listening", zap.String("address", config.Address), zap.Int("apartments", len(apartments)))
	if err := http.ListenAndServe(config.Address, srv.Routes()); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}

// buildEngine loads weights, datasets, and the optional SQLite store shared
// by the serve and recommend commands. The SQLite catalog is seeded from the
// JSON dataset and becomes the canonical copy once populated.
func buildEngine(lg *zap.Logger, config *Config) (*matching.Engine, []domain.Apartment, *storage.SQLiteStore) {
	weights := matching.PresetWeights(config.WeightsPreset)
	if config.WeightsPath != "" {
		w, err := matching.LoadWeightsFromFile(config.WeightsPath)
		if err != nil {
			lg.Warn("using preset weights", zap.String("preset", config.WeightsPreset), zap.Error(err))
		} else {
			weights = w
		}
	}

	apartments, err := storage.LoadApartmentsFromFile(config.ApartmentsPath)
	if err != nil {
		lg.Warn("loading apartments dataset", zap.Error(err))
	}

	var store *storage.SQLiteStore
	if config.DatabasePath != "" {
		store, err = storage.OpenSQLite(config.DatabasePath)
		if err != nil {
			lg.Fatal("opening database", zap.String("path", config.DatabasePath), zap.Error(err))
		}
		if err := store.EnsureSchema(); err != nil {
			lg.Fatal("ensuring schema", zap.Error(err))
		}
		if len(apartments) > 0 {
			if err := store.UpsertApartments(apartments); err != nil {
				lg.Warn("seeding apartment catalog", zap.Error(err))
			}
		}
		if cached, err := store.ListApartments(); err == nil && len(cached) > 0 {
			apartments = cached
		}
	}

	restaurants := storage.LoadRestaurantsFromFile(config.RestaurantsPath)
	places := storage.LoadPlacesFromFile(config.AmenitiesPath)
	lg.Debug("datasets loaded",
		zap.Int("apartments", len(apartments)),
		zap.Int("restaurants", len(restaurants)),
		zap.Int("amenities", len(places)),
	)

	return matching.NewEngine(weights, restaurants, places), apartments, store
}
