package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"voiceorder-service/internal/catalog"
	"voiceorder-service/internal/ordering/service"
)

var (
	catalogPath string
	threshold   float64
	suggest     int
	jsonOut     bool
	noColor     bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "menuctl",
	Short:         "Resolve spoken item names and price orders against a menu file",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if threshold < 0 || threshold > 100 {
			return fmt.Errorf("threshold must be within 0..100, got %v", threshold)
		}
		if noColor {
			color.NoColor = true
		}
		decimal.MarshalJSONWithoutQuotes = true
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "data/menu.json", "menu file (json, yaml, csv, xls, xlsx)")
	rootCmd.PersistentFlags().Float64VarP(&threshold, "threshold", "t", service.DefaultThreshold, "match threshold 0..100")
	rootCmd.PersistentFlags().IntVar(&suggest, "suggest", 3, "suggestions for unknown items")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log match decisions to stderr")

	rootCmd.AddCommand(resolveCmd, priceCmd, orderCmd, aliasesCmd)
}

// loadEngine читает меню и собирает движок поверх неизменяемого снимка.
func loadEngine() (*service.Engine, *catalog.Store, error) {
	store, err := catalog.OpenStore(catalogPath)
	if err != nil {
		return nil, nil, err
	}
	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	eng := service.NewEngine(store, service.Options{Threshold: threshold, Suggest: suggest}, logger)
	return eng, store, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
