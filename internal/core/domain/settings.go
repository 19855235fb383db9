package domain

import (
	"fmt"
	"net"
	"strconv"
)

// Default listener settings.
const (
	DefaultHost       = "0.0.0.0"
	DefaultHanoiPort  = 6102
	DefaultMatrixPort = 6101

	// DefaultMaxDisks bounds the Hanoi output at 2^24-1 moves.
	DefaultMaxDisks = 24
)

// ServiceName identifies one of the tool services.
type ServiceName string

// Available services.
const (
	ServiceHanoi  ServiceName = "hanoi"
	ServiceMatrix ServiceName = "matrix"
)

// IsValid returns true if the service name is recognised.
func (s ServiceName) IsValid() bool {
	return s == ServiceHanoi || s == ServiceMatrix
}

// String returns the string representation.
func (s ServiceName) String() string {
	return string(s)
}

// Tag returns the prefix the service uses on its log lines.
func (s ServiceName) Tag() string {
	switch s {
	case ServiceHanoi:
		return "MCP-HANOI"
	case ServiceMatrix:
		return "MCP-MATRIX"
	default:
		return "TOOLBOX"
	}
}

// ListenSettings holds a service's listen address.
type ListenSettings struct {
	Host string
	Port int
}

// Addr returns host:port suitable for net.Listen.
func (l ListenSettings) Addr() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

// Validate checks the port is usable.
func (l ListenSettings) Validate() error {
	if l.Port < 1 || l.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidInput, l.Port)
	}
	return nil
}

// HanoiSettings configures the Hanoi service.
type HanoiSettings struct {
	Listen ListenSettings

	// MaxDisks caps the accepted disk count. Zero disables the cap.
	MaxDisks int
}

// MatrixSettings configures the matrix service.
type MatrixSettings struct {
	Listen ListenSettings
}

// AppSettings holds all configurable settings.
type AppSettings struct {
	Hanoi   HanoiSettings
	Matrix  MatrixSettings
	Verbose bool
}

// Validate checks every section.
func (s AppSettings) Validate() error {
	if err := s.Hanoi.Listen.Validate(); err != nil {
		return fmt.Errorf("hanoi: %w", err)
	}
	if err := s.Matrix.Listen.Validate(); err != nil {
		return fmt.Errorf("matrix: %w", err)
	}
	if s.Hanoi.MaxDisks < 0 {
		return fmt.Errorf("hanoi: %w: max_disks must not be negative", ErrInvalidInput)
	}
	return nil
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Hanoi: HanoiSettings{
			Listen:   ListenSettings{Host: DefaultHost, Port: DefaultHanoiPort},
			MaxDisks: DefaultMaxDisks,
		},
		Matrix: MatrixSettings{
			Listen: ListenSettings{Host: DefaultHost, Port: DefaultMatrixPort},
		},
	}
}
