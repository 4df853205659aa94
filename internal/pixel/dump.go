package pixel

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/image/bmp"

	"github.com/templeblock/gl4es"
)

// Encoder writes an image in some file format.
type Encoder struct {
	// Ext is the file extension, including the dot.
	Ext string

	// Encode writes img to w.
	Encode func(w io.Writer, img image.Image) error
}

var (
	encodersMu sync.RWMutex
	encoders   = make(map[string]Encoder)
)

func init() {
	RegisterEncoder("png", Encoder{Ext: ".png", Encode: png.Encode})
	RegisterEncoder("bmp", Encoder{Ext: ".bmp", Encode: bmp.Encode})
}

// RegisterEncoder registers a dump encoder under name.
//
// RegisterEncoder panics if Encode is nil or if an encoder with the same
// name is already registered.
func RegisterEncoder(name string, enc Encoder) {
	encodersMu.Lock()
	defer encodersMu.Unlock()

	if enc.Encode == nil {
		panic("pixel: RegisterEncoder encoder is nil")
	}
	if _, dup := encoders[name]; dup {
		panic("pixel: RegisterEncoder called twice for " + name)
	}
	encoders[name] = enc
}

// UnregisterEncoder removes an encoder. Unknown names are a no-op.
func UnregisterEncoder(name string) {
	encodersMu.Lock()
	defer encodersMu.Unlock()
	delete(encoders, name)
}

// Encoders returns the sorted names of the registered encoders.
func Encoders() []string {
	encodersMu.RLock()
	defer encodersMu.RUnlock()

	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupEncoder(name string) (Encoder, error) {
	encodersMu.RLock()
	enc, ok := encoders[name]
	encodersMu.RUnlock()
	if !ok {
		return Encoder{}, fmt.Errorf("pixel: unknown dump encoder %q", name)
	}
	return enc, nil
}

// Image converts a pixel buffer to an *image.NRGBA that owns its pixels.
func Image(data []byte, width, height int, format, typ gl4es.Enum) (*image.NRGBA, error) {
	rgba, owned, err := ToRGBA(data, width, height, format, typ)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, rgba)
	if owned {
		PutBuffer(rgba)
	}
	return img, nil
}

// DumpName returns the file name used for the dump of texture id.
func DumpName(id uint32, ext string) string {
	return fmt.Sprintf("tex%05d%s", id, ext)
}

// Dump writes the image to dir using the named encoder and returns the path
// of the written file. The file is named after the texture id, so a later
// upload to the same texture replaces the earlier dump.
func Dump(dir string, id uint32, data []byte, width, height int, format, typ gl4es.Enum, encoder string) (string, error) {
	enc, err := lookupEncoder(encoder)
	if err != nil {
		return "", err
	}
	img, err := Image(data, width, height, format, typ)
	if err != nil {
		return "", fmt.Errorf("pixel: dump texture %d: %w", id, err)
	}

	path := filepath.Join(dir, DumpName(id, enc.Ext))
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pixel: create dump file: %w", err)
	}
	if err := enc.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("pixel: encode dump: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("pixel: close dump file: %w", err)
	}
	return path, nil
}
