package boltvec

import (
	"os"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/codec"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/vectorkit/pkg/codeckit"
)

type Config struct {
	// Codec encodes the elements into their stored bytes.
	//
	// Default: codeckit.CBOR
	Codec codec.Codec
	// Logger receives the storage failures that could not be returned to the caller.
	//
	// Default: error level logger on stderr
	Logger *logging.Logger
}

type Option option.Option[Config]

func (c *Config) Init() {
	c.Codec = codeckit.CBOR{}
	c.Logger = &logging.Logger{Out: os.Stderr, Level: logging.LevelError}
}

func (c Config) Configure(o *Config) {
	o.Codec = zerokit.Coalesce(c.Codec, o.Codec)
	o.Logger = zerokit.Coalesce(c.Logger, o.Logger)
}

func WithCodec(c codec.Codec) Option {
	return option.Func[Config](func(o *Config) { o.Codec = c })
}

func WithLogger(l *logging.Logger) Option {
	return option.Func[Config](func(o *Config) { o.Logger = l })
}
