// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avdva/modimport"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var (
		checkers   []string
		exempt     []string
		configFile string
		noColor    bool
	)
	cmd := &cobra.Command{
		Use:     "modimport [paths...]",
		Short:   "flags direct imports of names from Python modules",
		Long:    "modimport lints Python sources for 'from X import a' statements,\nasking for module-level imports ('import X') instead.",
		Version: modimport.VersionString(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, names, err := loadConfig(configFile, exempt, checkers)
			if err != nil {
				return err
			}
			reports := run(args, names, config)
			printReports(reports, noColor)
			if len(reports) > 0 {
				os.Exit(1)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringSliceVar(&checkers, "checkers", []string{modimport.CheckerModuleImport}, "checkers to run")
	cmd.Flags().StringSliceVar(&exempt, "exempt", nil, "modules whose direct imports are allowed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default .modimport.yaml in the current directory)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

// loadConfig merges the config file into the flag values. Flags are used as
// defaults, so an explicit config file wins.
func loadConfig(path string, exempt, checkers []string) (modimport.Config, []string, error) {
	v := viper.New()
	v.SetDefault("exempt", exempt)
	v.SetDefault("checkers", checkers)
	if len(path) != 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".modimport")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || len(path) != 0 {
			return modimport.Config{}, nil, err
		}
	}
	config := modimport.Config{ExemptModules: v.GetStringSlice("exempt")}
	return config, v.GetStringSlice("checkers"), nil
}

func run(paths, checkers []string, config modimport.Config) []modimport.Report {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	var reports []modimport.Report
	for _, name := range paths {
		if fi, err := os.Stat(name); err == nil && fi.IsDir() {
			if rep, err := modimport.DoDir(name, checkers, config); err == nil {
				reports = append(reports, rep...)
			} else {
				log.Warnf("'%s' check error: %v", name, err)
			}
		} else {
			log.Warnf("not a directory: %s", name)
		}
	}
	return reports
}

func printReports(reports []modimport.Report, noColor bool) {
	codeColor := color.New(color.FgRed, color.Bold)
	if noColor {
		codeColor.DisableColor()
	}
	for _, report := range reports {
		fmt.Printf("%s: %s %s\n", report.Location(), codeColor.Sprint(report.Code), report.Message)
	}
}
