package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
	"github.com/spf13/pflag"
)

// biasValue is a float flag bounded to the accepted bias range.
type biasValue struct {
	set   bool
	value float64
}

var _ pflag.Value = (*biasValue)(nil)

func (b *biasValue) String() string {
	if !b.set {
		return ""
	}
	return strconv.FormatFloat(b.value, 'f', -1, 64)
}

func (b *biasValue) Set(s string) error {
	v, err := parseBias(s)
	if err != nil {
		return err
	}
	b.value, b.set = v, true
	return nil
}

func (b *biasValue) Type() string { return "bias" }

func (b *biasValue) ptr() *float64 {
	if !b.set {
		return nil
	}
	v := b.value
	return &v
}

func parseBias(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bias must be a number, got %q", s)
	}
	if v < engine.MinBias || v > engine.MaxBias {
		return 0, fmt.Errorf("bias must be between %.1f and %.1f, got %v", engine.MinBias, engine.MaxBias, v)
	}
	return v, nil
}

// levelValue is a curriculum level flag.
type levelValue struct {
	level *domain.Level
}

var _ pflag.Value = (*levelValue)(nil)

func (l *levelValue) String() string {
	if l.level == nil {
		return ""
	}
	return string(*l.level)
}

func (l *levelValue) Set(s string) error {
	lv, err := domain.ParseLevel(s)
	if err != nil {
		return err
	}
	l.level = &lv
	return nil
}

func (l *levelValue) Type() string { return "level" }
