// Public domain.

package fitshdr

import (
	"io"
	"os"

	"github.com/astrogo/fitsio"
	"github.com/pkg/errors"
)

// Read decodes the primary HDU header of the FITS stream on r.
func Read(r io.Reader) (Header, error) {
	fit, err := fitsio.Open(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open FITS stream")
	}
	defer fit.Close()

	hdr := fit.HDU(0).Header()
	h := make(Header, len(hdr.Keys()))
	for _, key := range hdr.Keys() {
		h[key] = hdr.Get(key).Value
	}
	return h, nil
}

// ReadFile decodes the primary HDU header of the named FITS file.
func ReadFile(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()
	return Read(f)
}
