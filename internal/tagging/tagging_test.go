package tagging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// writeTaggedMP3 writes a file consisting of an ID3v2 tag followed by a few
// dummy bytes standing in for audio frames.
func writeTaggedMP3(t *testing.T, path, title string, artwork []byte) {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetTitle(title)
	if artwork != nil {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Picture:     artwork,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()

	if _, err := tag.WriteTo(f); err != nil {
		t.Fatalf("Failed to write tag: %v", err)
	}
	if _, err := f.Write([]byte{0xFF, 0xFB, 0x90, 0x00}); err != nil {
		t.Fatalf("Failed to write frame bytes: %v", err)
	}
}

func TestProbeMP3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.mp3")
	art := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	writeTaggedMP3(t, path, "Morning idea", art)

	tags, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if tags.Title != "Morning idea" {
		t.Errorf("Expected title 'Morning idea', got %q", tags.Title)
	}
	if len(tags.Artwork) != len(art) {
		t.Errorf("Expected %d artwork bytes, got %d", len(art), len(tags.Artwork))
	}
	if tags.ArtworkMIME != "image/jpeg" {
		t.Errorf("Expected image/jpeg artwork, got %q", tags.ArtworkMIME)
	}
}

func TestProbeMP3WithoutArtwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.mp3")
	writeTaggedMP3(t, path, "Untitled take", nil)

	tags, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if tags.Artwork != nil {
		t.Error("Expected no artwork")
	}
}

func TestProbeUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.webm")
	if err := os.WriteFile(path, []byte("not really webm"), 0644); err != nil {
		t.Fatal(err)
	}

	tags, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if tags.Title != "" || tags.Artwork != nil {
		t.Errorf("Expected empty tags for unprobed format, got %+v", tags)
	}
}
