package main

import (
	"context"

	mdpicks "github.com/alnah/go-mdpicks"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input mdpicks.Input) (*mdpicks.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*mdpicks.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (Converter, error)
	Release(Converter)
	Size() int
	Close() error
}

// converterPool adapts *mdpicks.ConverterPool to Pool.
type converterPool struct {
	pool *mdpicks.ConverterPool
}

// Compile-time check that converterPool implements Pool.
var _ Pool = (*converterPool)(nil)

// newConverterPool creates a pool of lazily built converters.
func newConverterPool(size int, opts ...mdpicks.Option) Pool {
	return &converterPool{pool: mdpicks.NewConverterPool(size, opts...)}
}

func (p *converterPool) Acquire() (Converter, error) {
	conv, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (p *converterPool) Release(c Converter) {
	if conv, ok := c.(*mdpicks.Converter); ok {
		p.pool.Release(conv)
	}
}

func (p *converterPool) Size() int { return p.pool.Size() }

func (p *converterPool) Close() error { return p.pool.Close() }
