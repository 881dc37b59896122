package main

import (
	"io"
	"log/slog"
	"os"

	mdpicks "github.com/alnah/go-mdpicks"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewPool builds the converter pool for a batch.
	NewPool func(size int, opts ...mdpicks.Option) Pool

	// MaxProcs tunes GOMAXPROCS before a batch; nil skips it.
	MaxProcs func(*slog.Logger)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		NewPool:  newConverterPool,
		MaxProcs: configureMaxProcs,
	}
}
