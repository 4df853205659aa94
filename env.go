package gl4es

import (
	"os"
	"strings"
)

// Environment variable names read by LoadEnv.
const (
	EnvShrink          = "LIBGL_SHRINK"
	EnvTexDump         = "LIBGL_TEXDUMP"
	EnvTexDumpDir      = "LIBGL_TEXDUMPDIR"
	EnvTexDumpFormat   = "LIBGL_TEXDUMPFMT"
	EnvLegacySkipPixel = "LIBGL_SKIPPIXELS_LEGACY"
)

// Env holds the behavioral toggles taken from the process environment.
// The zero value disables every toggle.
type Env struct {
	// Shrink halves every image upload in both dimensions.
	Shrink bool

	// TexDump writes every uploaded image to DumpDir, named by texture id.
	TexDump bool

	// DumpDir is the directory dumps are written to.
	DumpDir string

	// DumpFormat names the dump encoder ("png" or "bmp").
	DumpFormat string

	// LegacySkipPixels applies GL_UNPACK_SKIP_PIXELS as a byte count on
	// full image uploads, as older builds of the shim did.
	LegacySkipPixels bool
}

// LoadEnv reads the toggles from the process environment.
func LoadEnv() Env {
	return loadEnv(os.LookupEnv)
}

func loadEnv(lookup func(string) (string, bool)) Env {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	env := Env{
		Shrink:           parseFlag(get(EnvShrink)),
		TexDump:          parseFlag(get(EnvTexDump)),
		DumpDir:          get(EnvTexDumpDir),
		DumpFormat:       strings.ToLower(strings.TrimSpace(get(EnvTexDumpFormat))),
		LegacySkipPixels: parseFlag(get(EnvLegacySkipPixel)),
	}
	if env.DumpDir == "" {
		env.DumpDir = os.TempDir()
	}
	if env.DumpFormat == "" {
		env.DumpFormat = "png"
	}
	return env
}

// parseFlag accepts the boolean-ish spellings used by the LIBGL_* toggles.
func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
