package computer

import (
	"errors"
	"fmt"
	"strings"
)

// Computer is an assembled configuration. The zero value is not valid; use Builder.
type Computer struct {
	cpu     string
	ramGB   int
	gpu     string
	storage string
}

func (c Computer) CPU() string     { return c.cpu }
func (c Computer) RAM() int        { return c.ramGB }
func (c Computer) GPU() string     { return c.gpu }
func (c Computer) Storage() string { return c.storage }

// String lists the configured components, skipping empty optional ones.
func (c Computer) String() string {
	parts := []string{"CPU: " + c.cpu, fmt.Sprintf("RAM: %dGB", c.ramGB)}
	if c.gpu != "" {
		parts = append(parts, "GPU: "+c.gpu)
	}
	if c.storage != "" {
		parts = append(parts, "Storage: "+c.storage)
	}
	return strings.Join(parts, ", ")
}

// Builder provides a fluent API for building a Computer.
type Builder struct {
	parts Computer
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithCPU sets the processor. Surrounding whitespace is trimmed.
func (b *Builder) WithCPU(cpu string) *Builder {
	b.parts.cpu = strings.TrimSpace(cpu)
	return b
}

// WithRAM sets memory size in gigabytes.
func (b *Builder) WithRAM(gb int) *Builder {
	b.parts.ramGB = gb
	return b
}

// WithGPU sets the optional graphics card.
func (b *Builder) WithGPU(gpu string) *Builder {
	b.parts.gpu = strings.TrimSpace(gpu)
	return b
}

// WithStorage sets the optional storage device.
func (b *Builder) WithStorage(storage string) *Builder {
	b.parts.storage = strings.TrimSpace(storage)
	return b
}

// Build validates the accumulated components and returns a copy of them.
// All validation failures are joined into the returned error.
func (b *Builder) Build() (Computer, error) {
	var errs []error
	if b.parts.cpu == "" {
		errs = append(errs, &ValidationError{Field: "cpu"})
	}
	if b.parts.ramGB <= 0 {
		errs = append(errs, &ValidationError{Field: "ram"})
	}
	if len(errs) > 0 {
		return Computer{}, errors.Join(errs...)
	}
	return b.parts, nil
}
