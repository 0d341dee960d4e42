package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/voodooEntity/minigram"
	"github.com/voodooEntity/minigram/src/system/archivist"
	"github.com/voodooEntity/minigram/src/system/pattern"
)

const Version = "0.1.0"

type appFlags struct {
	logLevel   string
	debugLevel int
	lexFiles   []string
	lexName    string
	history    bool
}

func rootCmd() *cobra.Command {
	flags := &appFlags{}

	cmd := &cobra.Command{
		Use:     "minigram",
		Short:   "Minimalist-grammar derivation engine",
		Long:    "Minigram derives syntactic structures from feature-annotated lexicons using the Merge and Move operations of Minimalist Grammar theory.",
		Version: Version,
	}
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warning", "log level (debug|info|warning|error)")
	cmd.PersistentFlags().IntVar(&flags.debugLevel, "debug-level", archivist.DEBUG_LEVEL_TRACE, "debug verbosity when log-level is debug")
	cmd.PersistentFlags().StringSliceVar(&flags.lexFiles, "lexicon-file", nil, "additional lexicon yaml files to load")
	cmd.PersistentFlags().StringVar(&flags.lexName, "lexicon", "", "lexicon name to derive against")
	cmd.PersistentFlags().BoolVar(&flags.history, "history", false, "record derivation outcomes in memory")

	cmd.AddCommand(parseCmd(flags))
	cmd.AddCommand(patternCmd())
	cmd.AddCommand(validateCmd(flags))
	cmd.AddCommand(serveCmd(flags))
	return cmd
}

func newEngine(flags *appFlags) (*minigram.Minigram, error) {
	engine := minigram.New(minigram.Settings{
		Ident:      "minigram-cli",
		LogLevel:   logLevelFromName(flags.logLevel),
		DebugLevel: flags.debugLevel,
		History:    flags.history,
	})
	for _, path := range flags.lexFiles {
		if _, err := engine.LoadLexiconFile(path); err != nil {
			return nil, err
		}
	}
	if flags.lexName != "" {
		if err := engine.SetDefaultLexicon(flags.lexName); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

func logLevelFromName(name string) int {
	switch strings.ToLower(name) {
	case "debug":
		return archivist.LEVEL_DEBUG
	case "info":
		return archivist.LEVEL_INFO
	case "warning":
		return archivist.LEVEL_WARNING
	case "error":
		return archivist.LEVEL_ERROR
	}
	return archivist.LEVEL_WARNING
}

func parseCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <sentence...>",
		Short: "Derive a sentence and print its linearization",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(flags)
			if err != nil {
				return err
			}
			obj, err := engine.ParseSentence(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), obj.Linearize())
			return nil
		},
	}
}

func patternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Recursion pattern utilities",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "generate <name> <n>",
		Short: "Generate a pattern string, e.g. pattern generate an_bn 3",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid size %q", args[1])
			}
			output, err := pattern.Generate(args[0], n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "check <string>",
		Short: "Check whether a string matches the aⁿbⁿ pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pattern.IsAnBnPattern(args[0]))
			return nil
		},
	})
	return cmd
}

func validateCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <event...>",
		Short: "Check an event sequence against the mission operations grammar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(flags)
			if err != nil {
				return err
			}
			anomalies := engine.ValidateMissionLog(args)
			if len(anomalies) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sequence is grammatical")
				return nil
			}
			for _, anomaly := range anomalies {
				fmt.Fprintln(cmd.OutOrStdout(), anomaly)
			}
			return fmt.Errorf("%d anomalies detected", len(anomalies))
		},
	}
}

func serveCmd(flags *appFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(flags)
			if err != nil {
				return err
			}
			return engine.ServeAPI(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8473", "listen address")
	return cmd
}
