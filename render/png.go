// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes c to w.
func EncodePNG(w io.Writer, c *Canvas) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes c to path, creating or truncating the file.
func SavePNG(path string, c *Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = EncodePNG(bw, c); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}
