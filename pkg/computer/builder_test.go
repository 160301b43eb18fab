package computer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/pkg/computer"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	pc, err := computer.NewBuilder().
		WithCPU("Intel i7").
		WithRAM(16).
		WithGPU("Nvidia GTX 1080").
		WithStorage("1TB SSD").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Intel i7", pc.CPU())
	assert.Equal(t, 16, pc.RAM())
	assert.Equal(t, "Nvidia GTX 1080", pc.GPU())
	assert.Equal(t, "1TB SSD", pc.Storage())
	assert.Equal(t, "CPU: Intel i7, RAM: 16GB, GPU: Nvidia GTX 1080, Storage: 1TB SSD", pc.String())
}

func TestBuilder_OptionalComponents(t *testing.T) {
	t.Parallel()

	pc, err := computer.NewBuilder().WithRAM(8).WithCPU("AMD Ryzen 5").Build()
	require.NoError(t, err)
	assert.Empty(t, pc.GPU())
	assert.Equal(t, "CPU: AMD Ryzen 5, RAM: 8GB", pc.String())
}

func TestBuilder_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *computer.Builder
		fields  []string
	}{
		{"missing cpu", computer.NewBuilder().WithRAM(16), []string{"cpu"}},
		{"blank cpu", computer.NewBuilder().WithCPU("   ").WithRAM(16), []string{"cpu"}},
		{"missing ram", computer.NewBuilder().WithCPU("Intel i7"), []string{"ram"}},
		{"nothing set", computer.NewBuilder(), []string{"cpu", "ram"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pc, err := tt.builder.Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, computer.ErrMissingComponent)
			assert.Zero(t, pc)
			for _, field := range tt.fields {
				assert.Contains(t, err.Error(), `"`+field+`"`)
			}

			var ve *computer.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.fields[0], ve.Field)
		})
	}
}

func TestBuilder_BuildReturnsCopy(t *testing.T) {
	t.Parallel()

	b := computer.NewBuilder().WithCPU("Intel i7").WithRAM(16)
	first, err := b.Build()
	require.NoError(t, err)

	b.WithRAM(32)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 16, first.RAM())
	assert.Equal(t, 32, second.RAM())
}
