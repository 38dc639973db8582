// snake is a terminal snake game with obstacles.
//
// Usage:
//
//	snake play     - Play in this terminal
//	snake serve    - Start an SSH server, one game per connection
//	snake config   - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--width, --height   - Board size in cells
//	--obstacles <n>     - Obstacles per game
//	--tick-rate <rate>  - Snake moves per second
//	--seed <value>      - RNG seed for reproducible games (0 = time based)
//	--log-file <path>   - Write logs to a file while playing
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagWidth     int
	flagHeight    int
	flagObstacles int
	flagTickRate  int
	flagSeed      int64
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake with obstacles, in your terminal",
	Long: `Steer the snake to the food, grow, and avoid the walls, the
obstacles and your own tail.

Available commands:
  play     - Play in this terminal
  serve    - Start an SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake play
  snake play --width 40 --height 20 --obstacles 25
  snake play --seed 42 --log-file /tmp/snake.log --log-level debug
  snake serve --ssh :2222
  snake config > ~/.snake/config.yaml`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagWidth, "width", 0, "Board width in cells")
	pf.IntVar(&flagHeight, "height", 0, "Board height in cells")
	pf.IntVar(&flagObstacles, "obstacles", 0, "Number of obstacles")
	pf.IntVar(&flagTickRate, "tick-rate", 0, "Snake moves per second")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file for play (logs are discarded if empty)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("obstacles") {
		cfg.Obstacles.Count = flagObstacles
	}
	if flags.Changed("tick-rate") {
		cfg.Speed.TickRate = flagTickRate
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

func logLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return level, nil
}
