package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/toolbox/internal/adapters/driving/httpserver"
	"github.com/custodia-labs/toolbox/internal/core/domain"
)

var (
	hanoiVerify bool
	hanoiJSON   bool
)

var hanoiCmd = &cobra.Command{
	Use:   "hanoi N",
	Short: "Solve the Tower of Hanoi locally",
	Long: `Solve the Tower of Hanoi for N disks moving from peg A to peg C, without
starting a server. Output matches POST /tool/hanoi when --json is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runHanoi,
}

func init() {
	hanoiCmd.Flags().BoolVar(&hanoiVerify, "verify", false, "replay the moves and check every one is legal")
	hanoiCmd.Flags().BoolVar(&hanoiJSON, "json", false, "output the solution as JSON")
	rootCmd.AddCommand(hanoiCmd)
}

func runHanoi(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: disk count %q is not an integer", domain.ErrInvalidInput, args[0])
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	svc := newHanoiService(settings, requestLogger(domain.ServiceHanoi, cmd.ErrOrStderr()))
	solution, err := svc.Solve(cmd.Context(), n)
	if err != nil {
		return err
	}

	if hanoiVerify {
		if err := domain.Replay(n, solution.Moves); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}

	if hanoiJSON {
		return printJSON(cmd, httpserver.HanoiResponse{
			Moves: solution.MoveStrings(),
			Count: solution.Count,
		})
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Title.Render(fmt.Sprintf("Tower of Hanoi: %d disks", n)))
	cmd.Println()
	width := len(strconv.Itoa(solution.Count))
	for i, m := range solution.Moves {
		cmd.Printf("  %s  %s\n", st.Muted.Render(fmt.Sprintf("%*d.", width, i+1)), st.move(m))
	}
	cmd.Println()
	cmd.Printf("Total: %d moves\n", solution.Count)
	if hanoiVerify {
		cmd.Println(st.Success.Render("Verified: all disks on C"))
	}
	return nil
}
