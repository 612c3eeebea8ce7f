package extractor

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DOCX is a zip archive; the body text lives in word/document.xml as
// <w:t> runs grouped into <w:p> paragraphs.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("extractDOCX: %v: %w", err, ErrCorruptDocument)
	}
	defer func() { _ = zr.Close() }()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("extractDOCX: missing word/document.xml: %w", ErrCorruptDocument)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("extractDOCX: %v: %w", err, ErrCorruptDocument)
	}
	defer func() { _ = rc.Close() }()

	return decodeDocumentXML(rc)
}

func decodeDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decodeDocumentXML: %v: %w", err, ErrCorruptDocument)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
