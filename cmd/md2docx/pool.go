package main

import (
	"context"

	md2docx "github.com/MohtashamMurshid/md-to-docx"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2docx.Input) (*md2docx.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2docx.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close()
}

// converterPool adapts the library pool to the CLI's Pool interface.
type converterPool struct {
	inner *md2docx.ConverterPool
}

// Compile-time check that converterPool implements Pool.
var _ Pool = (*converterPool)(nil)

// newConverterPool creates a pool of n converters built with the given options.
func newConverterPool(n int, opts ...md2docx.Option) *converterPool {
	return &converterPool{inner: md2docx.NewConverterPool(n, opts...)}
}

func (p *converterPool) Acquire() (CLIConverter, error) {
	c, err := p.inner.Acquire()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *converterPool) Release(c CLIConverter) {
	if conv, ok := c.(*md2docx.Converter); ok {
		p.inner.Release(conv)
	}
}

func (p *converterPool) Size() int { return p.inner.Size() }

func (p *converterPool) Close() { p.inner.Close() }
