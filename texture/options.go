package texture

import "github.com/templeblock/gl4es"

// Option configures a Context during creation.
//
// Example:
//
//	// Plain context, no readback
//	ctx := texture.NewContext(dev)
//
//	// Readback through framebuffer objects, toggles from the environment
//	ctx := texture.NewContext(dev,
//		texture.WithOffscreen(dev),
//		texture.WithEnv(gl4es.LoadEnv()))
type Option func(*options)

type options struct {
	offscreen  Offscreen
	recorder   Recorder
	maxUnits   int
	shrink     bool
	dump       bool
	dumpDir    string
	dumpFormat string
	skipMode   SkipMode
}

func defaultOptions() options {
	return options{
		maxUnits:   DefaultMaxUnits,
		dumpFormat: "png",
		skipMode:   SkipPixelsScaled,
	}
}

// WithOffscreen installs the framebuffer-object capability GetTexImage
// renders through. Without it GetTexImage returns ErrNoOffscreen.
func WithOffscreen(o Offscreen) Option {
	return func(opts *options) {
		opts.offscreen = o
	}
}

// WithRecorder installs the command-list recorder consulted by binding,
// unit selection, parameter and delete calls.
func WithRecorder(r Recorder) Option {
	return func(opts *options) {
		opts.recorder = r
	}
}

// WithMaxUnits sets the number of texture units per axis.
// Values below 1 are ignored.
func WithMaxUnits(n int) Option {
	return func(opts *options) {
		if n > 0 {
			opts.maxUnits = n
		}
	}
}

// WithShrink halves every image upload in both dimensions.
func WithShrink(enabled bool) Option {
	return func(opts *options) {
		opts.shrink = enabled
	}
}

// WithTextureDump writes every image upload to dir using the named
// encoder ("png" or "bmp"). An empty dir disables dumping.
func WithTextureDump(dir, format string) Option {
	return func(opts *options) {
		opts.dump = dir != ""
		opts.dumpDir = dir
		if format != "" {
			opts.dumpFormat = format
		}
	}
}

// WithSkipMode selects how UNPACK_SKIP_PIXELS is applied to full image
// uploads. Sub-image uploads always skip whole pixels.
func WithSkipMode(m SkipMode) Option {
	return func(opts *options) {
		opts.skipMode = m
	}
}

// WithEnv applies the toggles of env.
func WithEnv(env gl4es.Env) Option {
	return func(opts *options) {
		opts.shrink = env.Shrink
		opts.dump = env.TexDump
		if env.TexDump {
			opts.dumpDir = env.DumpDir
			opts.dumpFormat = env.DumpFormat
		}
		if env.LegacySkipPixels {
			opts.skipMode = SkipPixelsBytes
		}
	}
}
