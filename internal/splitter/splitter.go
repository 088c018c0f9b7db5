// Package splitter duplicates an input stream verbatim to two output
// sinks, chunk by chunk.
package splitter

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// chunkSize matches a typical page; the splitter never buffers more
// than one chunk.
const chunkSize = 4096

// Split copies src to both sinks until EOF. The two sink writes for a
// chunk run concurrently so one slow sink does not stall the other,
// but the next chunk is not read until both writes finish. The first
// read or write failure aborts the copy; bytes already written stay.
func Split(src io.Reader, a, b io.Writer) error {
	buf := make([]byte, chunkSize)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			var g errgroup.Group
			g.Go(func() error { return writeChunk(a, chunk) })
			g.Go(func() error { return writeChunk(b, chunk) })
			if err := g.Wait(); err != nil {
				return err
			}
		}
		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read input: %w", readErr)
		}
	}
}

func writeChunk(dst io.Writer, chunk []byte) error {
	if _, err := dst.Write(chunk); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
