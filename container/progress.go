package container

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// StreamProgress wraps an io.Reader with a byte-aware progress meter. It is
// used by the overlap ingester, which may be asked to read a multi-gigabyte
// overlap relation.
//
// StreamProgress never changes the bytes read; it is a passthrough that also
// advances a terminal progress bar. Construct one with NewStreamProgress and
// use it as an io.Reader.
type StreamProgress struct {
	r    io.Reader
	bar  *progressbar.ProgressBar
	size int64
}

// NewStreamProgress wraps r, reporting progress against a known total size in
// bytes under label. If size <= 0, an indeterminate spinner is shown instead
// of a percentage bar.
func NewStreamProgress(r io.Reader, size int64, label string) *StreamProgress {
	var bar *progressbar.ProgressBar
	if size > 0 {
		bar = progressbar.DefaultBytes(size, label)
	} else {
		bar = progressbar.DefaultBytes(-1, label)
	}
	return &StreamProgress{r: r, bar: bar, size: size}
}

// Read implements io.Reader, advancing the progress bar by the number of
// bytes actually read.
func (p *StreamProgress) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		_, _ = p.bar.Write(b[:n])
	}
	if err == io.EOF {
		_ = p.bar.Finish()
	}
	return n, err
}

// Summary renders a human-readable description of progress so far, using
// humanize.Bytes/humanize.Comma for readable large-number formatting in log
// lines (e.g. "1,204,819 records, 3.2 GB read", or "1,204,819 records" when
// bytesRead <= 0).
func Summary(count int, bytesRead int64) string {
	if bytesRead <= 0 {
		return humanize.Comma(int64(count)) + " records"
	}
	return humanize.Comma(int64(count)) + " records, " + humanize.Bytes(uint64(bytesRead)) + " read"
}
