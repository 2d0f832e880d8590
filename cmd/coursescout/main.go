package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"CourseScout/pkg/calendar"
	"CourseScout/pkg/config"
	"CourseScout/pkg/log"
	"CourseScout/pkg/scraper"
	"CourseScout/pkg/server"
)

func main() {
	root := &cobra.Command{
		Use:          "coursescout",
		Short:        "Course catalog section scraper",
		SilenceUsage: true,
	}
	root.AddCommand(serveCMD(), searchCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCMD() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, scout, cleanup, err := buildScraper(cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()
			return server.New(scout).Run(cfg.Server.Address)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	return cmd
}

func searchCMD() *cobra.Command {
	var cfgPath string
	var asICS bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Look up one course and print its sections grouped by term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(args[0])
			if query == "" {
				return errors.New("query must not be empty")
			}
			_, scout, cleanup, err := buildScraper(cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := scout.SearchCourse(context.Background(), query)
			if err != nil {
				return err
			}

			if asICS {
				fmt.Fprint(cmd.OutOrStdout(), calendar.BuildCalendar(result))
				return nil
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetEscapeHTML(false)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	cmd.Flags().BoolVar(&asICS, "ics", false, "emit an iCalendar feed instead of JSON")
	return cmd
}

func buildScraper(cfgPath string) (*config.Config, *scraper.CourseScraper, func(), error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := log.Init(true); err != nil {
		return nil, nil, nil, err
	}
	windows, err := cfg.TermWindows()
	if err != nil {
		return nil, nil, nil, err
	}
	browser, err := scraper.NewBrowser(context.Background(), cfg.Chrome.ExecPath, cfg.Chrome.Headless)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		browser.Close()
		log.Sync()
	}
	scout := scraper.New(browser, cfg.Catalog.SearchURL, cfg.Catalog.NavigationTimeout, windows)
	return cfg, scout, cleanup, nil
}
