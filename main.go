package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pocketpet/internal/audio"
	"pocketpet/internal/config"
	"pocketpet/internal/device"
	"pocketpet/internal/haptics"
	"pocketpet/internal/session"
	"pocketpet/internal/ui"
)

const Version = "v0.1.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "pocketpet",
		Short:        "A pocket pet that gets sad and hungry unless you look after it",
		Version:      Version,
		SilenceUsage: true,
		RunE:         runPet,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a .toml or .yaml config file")
	rootCmd.PersistentFlags().String("name", "", "Pet name")
	rootCmd.PersistentFlags().Bool("sound", true, "Play the bark clip")
	rootCmd.PersistentFlags().Bool("haptics", true, "Ring the terminal bell as haptic feedback")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (default pocketpet.log)")

	rootCmd.AddCommand(simulateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers changed CLI flags over the file and environment
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.Name, _ = flags.GetString("name")
	}
	if flags.Changed("sound") {
		cfg.Sound, _ = flags.GetBool("sound")
	}
	if flags.Changed("haptics") {
		cfg.Haptics, _ = flags.GetBool("haptics")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	return cfg, nil
}

func newDevice(cfg config.Config, bell io.Writer) device.Terminal {
	var dev device.Terminal
	if cfg.Haptics {
		dev.Haptics = haptics.NewBell(bell)
	}
	if cfg.Sound {
		dev.Audio = audio.NewPlayer(cfg.ClipOverrides())
	}
	return dev
}

func runPet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := tea.LogToFile(cfg.LogFile, "pocketpet")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	}

	c := session.New(newDevice(cfg, os.Stderr))
	defer c.Stop()

	p := tea.NewProgram(ui.NewModel(c, cfg.Name), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [step...]",
	Short: "Run a session without the UI and print the pet's stats",
	Long: `Run a session without the UI. Each step is one of:
  tick[:n]  apply n one-second decay ticks (default 1)
  feed      feed the pet
  play      play with the pet
  bark      play the bark clip`,
	Example: "  pocketpet simulate tick:25 feed play bark tick:5",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log.SetOutput(cmd.ErrOrStderr())

		c := session.New(newDevice(cfg, cmd.ErrOrStderr()))
		simulate(c, steps)
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderStats(cfg.Name, c.Mood()))
		return nil
	},
}

type step struct {
	action string
	count  int
}

func parseSteps(args []string) ([]step, error) {
	var steps []step
	for _, arg := range args {
		action, n, hasCount := strings.Cut(strings.ToLower(arg), ":")
		s := step{action: action, count: 1}
		switch action {
		case "tick":
			if hasCount {
				count, err := strconv.Atoi(n)
				if err != nil || count < 0 {
					return nil, fmt.Errorf("invalid tick count %q", n)
				}
				s.count = count
			}
		case "feed", "play", "bark":
			if hasCount {
				return nil, fmt.Errorf("step %q does not take a count", action)
			}
		default:
			return nil, fmt.Errorf("unknown step %q", arg)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// simulate runs the steps in order on one goroutine, the same way the UI's
// event loop would dispatch them.
func simulate(c *session.Controller, steps []step) {
	gen := c.Start()
	defer c.Stop()

	for _, s := range steps {
		switch s.action {
		case "tick":
			for i := 0; i < s.count; i++ {
				c.Tick(gen)
			}
		case "feed":
			c.Feed()()
		case "play":
			c.Play()()
		case "bark":
			c.Vocalizer()()
		}
	}
}
