package cli

import (
	"io"

	"github.com/custodia-labs/toolbox/internal/adapters/driven/linalg"
	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/core/ports/driven"
	"github.com/custodia-labs/toolbox/internal/core/ports/driving"
	"github.com/custodia-labs/toolbox/internal/core/services"
	"github.com/custodia-labs/toolbox/internal/logger"
)

func newHanoiService(settings *domain.AppSettings, log driven.Logger) driving.HanoiService {
	if hanoiService != nil {
		return hanoiService
	}
	return services.NewHanoiService(settings.Hanoi.MaxDisks, log)
}

func newMatrixService(log driven.Logger) driving.MatrixService {
	if matrixService != nil {
		return matrixService
	}
	return services.NewMatrixService(linalg.NewInverter(), log)
}

// requestLogger returns the per-request logger for one-shot commands. Request
// lines only appear in verbose mode so they do not mix with command output.
func requestLogger(name domain.ServiceName, w io.Writer) driven.Logger {
	if !logger.IsVerbose() {
		return logger.Nop()
	}
	return logger.NewTagged(name.Tag(), w)
}
