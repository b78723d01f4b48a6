package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-serpent/internal/platform/tui"
)

var (
	flagSSHAddress  string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so the campaign can be played remotely.

Every connection gets its own session; saved progress is shared through
the server's database.

Connect with:
  ssh -p 23235 localhost

Examples:
  serpent serve
  serpent serve --ssh :2222
  serpent serve --db ./shared-progress.db --idle-timeout 1h`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddress, "ssh", ":23235", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Host key path (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	levels, err := buildCampaign(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddress
	srvCfg.HostKeyPath = flagHostKeyPath
	srvCfg.DBPath = flagDBPath
	srvCfg.IdleTimeout = flagIdleTimeout

	server, err := tui.NewSSHServer(srvCfg, levels, engineConfig(cfg.Engine), cfg.Display, tui.KeyMapFromConfig(cfg.Keys))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serpent SSH server listening on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh -p %s localhost\n", portOf(server.Addr()))

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf extracts the port from a listen address like ":23235".
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
