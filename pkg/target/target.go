// Package target classifies and loads the file being patched.
//
// A target is either a text script (the npm-installed cli.js bundle) or a
// native self-contained executable. The kind decides which replacement mode
// applies: free-length splices for scripts, strictly length-preserving
// splices for binaries.
package target

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/arthur-debert/cctweak/pkg/logging"
)

// Kind is the classification of a target file
type Kind string

const (
	KindScript       Kind = "script"
	KindNativeBinary Kind = "native-binary"
	KindUnknown      Kind = "unknown"
)

// Target is a patchable file loaded into memory. Kind is fixed at load time
// and never re-derived from the (possibly transformed) data.
type Target struct {
	Path string
	Kind Kind
	Data []byte
	Mode fs.FileMode
}

// script file extensions recognized without sniffing content
var scriptExtensions = []string{".js", ".mjs", ".cjs"}

// sniffLimit bounds how much of the file the classifier reads
const sniffLimit = 4096

// Classify inspects a file and reports its kind. It never returns an error:
// unreadable or ambiguous files are KindUnknown and the caller decides how
// to report that.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range scriptExtensions {
		if ext == e {
			return KindScript
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return KindUnknown
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLimit)
	n, err := f.Read(buf)
	if n <= 0 {
		if err != nil {
			logger := logging.GetLogger("target")
			logger.Debug().Err(err).Str("path", path).Msg("sniff read failed")
		}
		return KindUnknown
	}
	buf = buf[:n]

	if bytes.IndexByte(buf, 0) >= 0 || hasExecutableMagic(buf) {
		return KindNativeBinary
	}
	if bytes.HasPrefix(buf, []byte("#!")) {
		return KindScript
	}
	return KindUnknown
}

// hasExecutableMagic reports whether buf starts with a known native
// executable signature: ELF, PE, or Mach-O (32/64-bit, either byte order,
// plus fat/universal headers).
func hasExecutableMagic(buf []byte) bool {
	if len(buf) < 4 {
		return false
	}
	magics := [][]byte{
		{0x7f, 'E', 'L', 'F'},    // ELF
		{'M', 'Z'},               // PE/COFF stub
		{0xfe, 0xed, 0xfa, 0xce}, // Mach-O 32-bit BE
		{0xfe, 0xed, 0xfa, 0xcf}, // Mach-O 64-bit BE
		{0xce, 0xfa, 0xed, 0xfe}, // Mach-O 32-bit LE
		{0xcf, 0xfa, 0xed, 0xfe}, // Mach-O 64-bit LE
		{0xca, 0xfe, 0xba, 0xbe}, // Mach-O fat binary
		{0xbe, 0xba, 0xfe, 0xca}, // Mach-O fat binary, swapped
	}
	for _, m := range magics {
		if bytes.HasPrefix(buf, m) {
			return true
		}
	}
	return false
}

// Load reads the whole file into memory and classifies it. KindUnknown is an
// error here: the caller asked to patch something we cannot safely edit.
func Load(path string) (*Target, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTargetNotFound, "target %s does not exist", path)
	}

	kind := Classify(path)
	if kind == KindUnknown {
		return nil, errors.Newf(errors.ErrTargetUnknown, "cannot classify %s as script or native binary", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTargetUnreadable, "cannot read target %s", path)
	}

	logger := logging.GetLogger("target")
	logger.Debug().
		Str("path", path).
		Str("kind", string(kind)).
		Int("bytes", len(data)).
		Msg("Target loaded")

	return &Target{
		Path: path,
		Kind: kind,
		Data: data,
		Mode: info.Mode(),
	}, nil
}
