package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type scanConfig struct {
	window  int
	label   string
	applied []string
}

func withWindow(n int) Option[*scanConfig] {
	return New(func(c *scanConfig) error {
		if n <= 0 {
			return errors.New("window must be positive")
		}
		c.window = n
		c.applied = append(c.applied, "window")

		return nil
	})
}

func withLabel(s string) Option[*scanConfig] {
	return NoError(func(c *scanConfig) {
		c.label = s
		c.applied = append(c.applied, "label")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &scanConfig{}

	err := Apply(cfg, withLabel("a"), withWindow(4), withLabel("b"))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.window)
	require.Equal(t, "b", cfg.label)
	require.Equal(t, []string{"label", "window", "label"}, cfg.applied)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &scanConfig{}

	err := Apply(cfg, withWindow(2), withWindow(0), withLabel("never"))
	require.EqualError(t, err, "window must be positive")
	require.Equal(t, 2, cfg.window)
	require.Empty(t, cfg.label)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &scanConfig{}

	require.NoError(t, Apply(cfg, nil, withLabel("x"), nil))
	require.Equal(t, "x", cfg.label)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &scanConfig{window: 9}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 9, cfg.window)
}
