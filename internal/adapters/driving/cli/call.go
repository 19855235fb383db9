package cli

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/toolbox/internal/adapters/driven/toolclient"
	"github.com/custodia-labs/toolbox/internal/core/domain"
)

var callURL string

var callCmd = &cobra.Command{
	Use:   "call",
	Short: "Invoke a running tool service",
	Long: `Send a request to a running tool service and print the JSON response.

Without --url the service is assumed on localhost at its configured port.`,
}

var callHanoiCmd = &cobra.Command{
	Use:   "hanoi N",
	Short: "Call POST /tool/hanoi",
	Args:  cobra.ExactArgs(1),
	RunE:  runCallHanoi,
}

var callMatrixCmd = &cobra.Command{
	Use:   "matrix MATRIX_JSON",
	Short: "Call POST /tool/matrix",
	Args:  cobra.ExactArgs(1),
	RunE:  runCallMatrix,
}

func init() {
	callCmd.PersistentFlags().StringVar(&callURL, "url", "", "base URL of the service")
	callCmd.AddCommand(callHanoiCmd)
	callCmd.AddCommand(callMatrixCmd)
	rootCmd.AddCommand(callCmd)
}

func runCallHanoi(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: disk count %q is not an integer", domain.ErrInvalidInput, args[0])
	}

	client, err := newToolClient(func(s *domain.AppSettings) int { return s.Hanoi.Listen.Port })
	if err != nil {
		return err
	}

	result, err := client.SolveHanoi(cmd.Context(), n)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func runCallMatrix(cmd *cobra.Command, args []string) error {
	raw := json.RawMessage(args[0])
	if !json.Valid(raw) {
		return fmt.Errorf("%w: matrix argument is not valid JSON", domain.ErrInvalidInput)
	}

	client, err := newToolClient(func(s *domain.AppSettings) int { return s.Matrix.Listen.Port })
	if err != nil {
		return err
	}

	inv, err := client.InvertMatrixJSON(cmd.Context(), raw)
	if err != nil {
		return err
	}
	return printJSON(cmd, inv)
}

func newToolClient(port func(*domain.AppSettings) int) (*toolclient.Client, error) {
	if callURL != "" {
		return toolclient.New(callURL), nil
	}

	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return toolclient.New("http://" + net.JoinHostPort("localhost", strconv.Itoa(port(settings)))), nil
}
