package transcoder

import (
	"go.uber.org/zap"

	"github.com/wippyai/xlcodec/internal/abi"
	"github.com/wippyai/xlcodec/internal/utf16x"
)

// StringConverter converts between UTF-8 and UTF-16LE. Implementations must
// be safe for concurrent use.
type StringConverter interface {
	// UTF16Len returns how many UTF-16 units src encodes to, or -1.
	UTF16Len(src []byte) int
	// EncodeUTF16 writes src into dst as UTF-16LE and returns the units
	// written, or -1 if dst is too small or conversion fails.
	EncodeUTF16(dst, src []byte) int
	// DecodeUTF16 converts UTF-16LE bytes to UTF-8.
	DecodeUTF16(src []byte) string
}

// Config holds Encoder and Decoder settings.
type Config struct {
	Logger    *zap.Logger
	Converter StringConverter
	// Debug logs the reason for every degraded conversion at debug level.
	Debug bool
	// MaxStringInput clamps UTF-8 input before conversion.
	MaxStringInput int
}

// Option configures an Encoder or Decoder.
type Option func(*Config)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithDebug enables logging of degraded conversions.
func WithDebug(enabled bool) Option {
	return func(c *Config) { c.Debug = enabled }
}

// WithStringConverter replaces the UTF-8/UTF-16 converter.
func WithStringConverter(sc StringConverter) Option {
	return func(c *Config) { c.Converter = sc }
}

// WithMaxStringInput sets the input clamp in bytes. Non-positive values
// keep the default.
func WithMaxStringInput(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxStringInput = n
		}
	}
}

func newConfig(opts []Option) Config {
	c := Config{
		Converter:      utf16x.Converter{},
		MaxStringInput: abi.MaxStringInputBytes,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.Logger == nil {
		c.Logger = Logger()
	}
	if c.Converter == nil {
		c.Converter = utf16x.Converter{}
	}
	return c
}

// debug logs a degraded conversion when Debug is set.
func (c *Config) debug(op string, err error, fields ...zap.Field) {
	if !c.Debug {
		return
	}
	c.Logger.Debug(op+" degraded", append(fields, zap.Error(err))...)
}
