package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

var invertJSON bool

var invertCmd = &cobra.Command{
	Use:   "invert MATRIX_JSON",
	Short: "Invert a square matrix locally",
	Long: `Invert a square matrix given as a JSON list of rows, without starting a
server. Output matches POST /tool/matrix when --json is set.

Example:
  toolbox invert '[[4,7],[2,6]]'`,
	Args: cobra.ExactArgs(1),
	RunE: runInvert,
}

func init() {
	invertCmd.Flags().BoolVar(&invertJSON, "json", false, "output the inverse as JSON")
	rootCmd.AddCommand(invertCmd)
}

func runInvert(cmd *cobra.Command, args []string) error {
	svc := newMatrixService(requestLogger(domain.ServiceMatrix, cmd.ErrOrStderr()))
	inv, err := svc.InvertJSON(cmd.Context(), []byte(args[0]))
	if err != nil {
		return err
	}

	if invertJSON {
		return printJSON(cmd, inv)
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Title.Render("Inverse"))
	cmd.Println(st.matrix(inv))
	return nil
}
