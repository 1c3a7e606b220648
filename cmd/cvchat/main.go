package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cvchat/internal/app"
	"cvchat/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	flagConfig   string
	flagEndpoint string
	flagLang     string
	flagMock     bool
)

func main() {
	root := &cobra.Command{
		Use:     "cvchat",
		Short:   "Terminal client for the CV assistant",
		Long:    "cvchat is an interactive terminal client for a CV/portfolio assistant backend.\n\nConversations are kept in memory for the lifetime of the process; use the export action to save a transcript.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logOut, closeLog := openLogFile()
			defer closeLog()

			application := app.NewApplication(cfg, logOut)
			p := tea.NewProgram(tui.New(application), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: user config dir)")
	root.Flags().StringVar(&flagEndpoint, "endpoint", "", "assistant endpoint URL")
	root.Flags().StringVar(&flagLang, "lang", "", "interface language: en|fr|ar")
	root.Flags().BoolVar(&flagMock, "mock", false, "run against a deterministic offline backend")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagConfig
			if path == "" {
				path = app.DefaultConfigPath()
			}
			if path == "" {
				return fmt.Errorf("cannot determine config path")
			}
			if err := app.SaveConfig(app.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	root.AddCommand(initCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (app.Config, error) {
	path := flagConfig
	if path == "" {
		path = app.DefaultConfigPath()
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("CVCHAT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if flagEndpoint != "" {
		cfg.Endpoint = flagEndpoint
	}
	if flagLang != "" {
		cfg.Language = flagLang
	}
	if flagMock {
		cfg.Endpoint = "mock://"
	}
	return cfg, nil
}

// openLogFile keeps engine logs out of the TUI's terminal.
func openLogFile() (io.Writer, func()) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return io.Discard, func() {}
	}
	path := filepath.Join(dir, "cvchat", "cvchat.log")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}
