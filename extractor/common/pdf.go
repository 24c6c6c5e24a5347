package common

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dslipak/pdf"
)

// ExtractPagesFromPDFReader extracts the text of every page as a slice of
// row-joined lines, in document order. A page whose text extraction fails
// contributes an empty slice so page numbering stays aligned for the
// caller's logging. A document with no pages at all is an error.
func ExtractPagesFromPDFReader(reader io.Reader) ([][]string, error) {
	// Ensure we have an io.ReaderAt and know the size
	var rAt io.ReaderAt
	var size int64

	switch v := reader.(type) {
	case io.ReaderAt:
		rAt = v
		if seeker, ok := reader.(io.Seeker); ok {
			cur, _ := seeker.Seek(0, io.SeekCurrent)
			end, _ := seeker.Seek(0, io.SeekEnd)
			seeker.Seek(cur, io.SeekStart)
			size = end
		} else {
			return nil, errors.New("reader is io.ReaderAt but not io.Seeker, cannot determine size")
		}
	default:
		// Read all into memory
		buf := new(bytes.Buffer)
		_, err := buf.ReadFrom(reader)
		if err != nil {
			return nil, err
		}
		b := buf.Bytes()
		rAt = bytes.NewReader(b)
		size = int64(len(b))
	}

	r, err := pdf.NewReader(rAt, size)
	if err != nil {
		return nil, err
	}

	numPages := r.NumPage()
	if numPages < 1 {
		return nil, errors.New("document has no pages")
	}

	pages := make([][]string, 0, numPages)

	for no := 1; no <= numPages; no++ {
		page := r.Page(no)
		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("Warning: error getting text from page %d: %v", no, err)
			pages = append(pages, nil)
			continue
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			var builder strings.Builder
			builder.Grow(len(row.Content) * 20)

			for i, text := range row.Content {
				builder.WriteString(text.S)
				if i < len(row.Content)-1 {
					builder.WriteByte(' ')
				}
			}

			if builder.Len() > 0 {
				lines = append(lines, builder.String())
			}
		}

		pages = append(pages, lines)
	}

	return pages, nil
}

// ExtractPagesFromPDF opens a statement PDF on disk and extracts its pages.
func ExtractPagesFromPDF(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ExtractPagesFromPDFReader(file)
}
