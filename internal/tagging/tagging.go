// Package tagging reads embedded metadata from uploaded audio files. The
// vault never rewrites uploads; it only probes them for a default track name
// and cover art.
package tagging

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// Tags holds what a probe could extract. Any field may be empty; a file with
// no usable tags yields a zero Tags with no error.
type Tags struct {
	Title       string
	Artwork     []byte
	ArtworkMIME string
}

// Probe inspects the file at path based on its extension. Formats without a
// tag reader (wav, webm, ogg, aac, m4a) return empty tags.
func Probe(path string) (*Tags, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return probeMP3(path)
	case ".flac":
		return probeFLAC(path)
	default:
		return &Tags{}, nil
	}
}

func probeMP3(path string) (*Tags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to parse ID3 tag: %w", err)
	}
	defer tag.Close()

	out := &Tags{Title: tag.Title()}

	for _, frame := range tag.GetFrames(tag.CommonID("Attached picture")) {
		pic, ok := frame.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		out.Artwork = pic.Picture
		out.ArtworkMIME = pic.MimeType
		break
	}

	return out, nil
}

func probeFLAC(path string) (*Tags, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	out := &Tags{}
	for _, block := range f.Meta {
		switch block.Type {
		case flac.VorbisComment:
			cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				continue
			}
			titles, err := cmt.Get(flacvorbis.FIELD_TITLE)
			if err == nil && len(titles) > 0 {
				out.Title = titles[0]
			}
		case flac.Picture:
			if out.Artwork != nil {
				continue
			}
			pic, err := flacpicture.ParseFromMetaDataBlock(*block)
			if err != nil {
				continue
			}
			out.Artwork = pic.ImageData
			out.ArtworkMIME = pic.MIME
		}
	}

	return out, nil
}
