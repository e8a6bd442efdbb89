package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/preflight"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check that xsetwacom and an X11 session are available",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := checkDeps(cfg.Tool); err != nil {
			return err
		}

		session := preflight.DetectSession()
		fmt.Printf("DISPLAY:         %s\n", orDash(session.Display))
		fmt.Printf("WAYLAND_DISPLAY: %s\n", orDash(session.WaylandDisplay))
		fmt.Printf("X server:        %s\n", orDash(session.XServer))
		for _, w := range session.Warnings() {
			fmt.Printf("  Warning: %s\n", w)
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// checkDeps verifies that required external tools are installed, offering
// to install missing ones.
func checkDeps(tool string) error {
	missing := preflight.Missing(preflight.Dependencies(tool), nil)
	if len(missing) == 0 {
		fmt.Printf("%s: found\n", tool)
		return nil
	}

	fmt.Println("tabletswitch requires the following tools that are not installed:")
	fmt.Println()
	for _, dep := range missing {
		fmt.Printf("  - %s (%s)\n", dep.Name, dep.Binary)
	}
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	family := preflight.DistroFamily()

	for _, dep := range missing {
		cmd, ok := dep.InstallCmd[family]
		if !ok {
			fmt.Printf("Please install %s manually and try again.\n", dep.Name)
			continue
		}

		fmt.Printf("Install %s with: %s\n", dep.Name, cmd)
		fmt.Print("Run now? [Y/n] ")
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))

		if answer != "" && answer != "y" && answer != "yes" {
			fmt.Printf("Skipped. Install %s manually before using tabletswitch.\n", dep.Name)
			continue
		}

		fmt.Printf("Running: %s\n", cmd)
		parts := strings.Fields(cmd)
		install := exec.Command(parts[0], parts[1:]...)
		install.Stdout = os.Stdout
		install.Stderr = os.Stderr
		install.Stdin = os.Stdin
		if err := install.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to install %s: %v\n", dep.Name, err)
		} else {
			fmt.Printf("%s installed successfully.\n\n", dep.Name)
		}
	}

	if still := preflight.Missing(missing, nil); len(still) > 0 {
		return fmt.Errorf("%s is required but not installed", still[0].Binary)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(depsCmd)
}
