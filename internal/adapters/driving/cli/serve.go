package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/toolbox/internal/adapters/driving/httpserver"
	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/logger"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start tool HTTP services",
	Long: `Start one or both tool services over HTTP.

Listen addresses come from the config file and default to 0.0.0.0:6102 for
hanoi and 0.0.0.0:6101 for matrix. --host and --port override them.

Examples:
  toolbox serve hanoi
  toolbox serve matrix --port 8101
  toolbox serve all --host 127.0.0.1`,
}

var serveHanoiCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Serve POST /tool/hanoi",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd, domain.ServiceHanoi)
	},
}

var serveMatrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Serve POST /tool/matrix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd, domain.ServiceMatrix)
	},
}

var serveAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Serve both tools, each on its own port",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd, domain.ServiceHanoi, domain.ServiceMatrix)
	},
}

func init() {
	serveCmd.PersistentFlags().StringVar(&serveHost, "host", domain.DefaultHost, "interface to listen on")
	serveHanoiCmd.Flags().IntVarP(&servePort, "port", "p", domain.DefaultHanoiPort, "port to listen on")
	serveMatrixCmd.Flags().IntVarP(&servePort, "port", "p", domain.DefaultMatrixPort, "port to listen on")

	serveCmd.AddCommand(serveHanoiCmd)
	serveCmd.AddCommand(serveMatrixCmd)
	serveCmd.AddCommand(serveAllCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, names ...domain.ServiceName) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	servers := make([]*httpserver.Server, 0, len(names))
	for _, name := range names {
		srv, err := newToolServer(cmd, settings, name)
		if err != nil {
			return err
		}
		if err := srv.Listen(); err != nil {
			return err
		}
		cmd.Printf("%s listening on http://%s\n", name, srv.Addr())
		servers = append(servers, srv)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, srv := range servers {
		g.Go(func() error {
			return srv.Run(ctx)
		})
	}
	return g.Wait()
}

func newToolServer(cmd *cobra.Command, settings *domain.AppSettings, name domain.ServiceName) (*httpserver.Server, error) {
	log := logger.NewTagged(name.Tag(), cmd.OutOrStdout())

	switch name {
	case domain.ServiceHanoi:
		addr := listenAddr(cmd, settings.Hanoi.Listen)
		return httpserver.NewHanoiServer(addr, newHanoiService(settings, log))
	case domain.ServiceMatrix:
		addr := listenAddr(cmd, settings.Matrix.Listen)
		return httpserver.NewMatrixServer(addr, newMatrixService(log))
	default:
		return nil, fmt.Errorf("unknown service %q", name)
	}
}

// listenAddr applies --host and --port over the configured address.
func listenAddr(cmd *cobra.Command, listen domain.ListenSettings) string {
	if cmd.Flags().Changed("host") {
		listen.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		listen.Port = servePort
	}
	return listen.Addr()
}
