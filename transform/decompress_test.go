package transform

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func zlibCompress(t *testing.T, plain string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write([]byte(plain)); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zlib writer: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressorFeedWholeStream(t *testing.T) {
	var d Decompressor
	d.Start()
	compressed := zlibCompress(t, "hello compressed world")

	out, err := d.Feed(compressed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hello compressed world" {
		t.Fatalf("expected full plaintext, got %q", out)
	}
}

func TestDecompressorFeedSplitAcrossChunks(t *testing.T) {
	var d Decompressor
	d.Start()
	compressed := zlibCompress(t, "split across two reads")

	mid := len(compressed) / 2
	out1, err := d.Feed(compressed[:mid])
	if err != nil {
		t.Fatalf("unexpected error on partial feed: %v", err)
	}
	if !bytes.HasPrefix([]byte("split across two reads"), out1) {
		t.Fatalf("expected a prefix of the plaintext from an incomplete compressed prefix, got %q", out1)
	}

	out2, err := d.Feed(compressed[mid:])
	if err != nil {
		t.Fatalf("unexpected error on completing feed: %v", err)
	}
	if string(out1)+string(out2) != "split across two reads" {
		t.Fatalf("expected the two feeds to yield the full plaintext once the stream completes, got %q + %q", out1, out2)
	}
}

func TestDecompressorFeedOnlyReturnsFreshBytes(t *testing.T) {
	var d Decompressor
	d.Start()
	compressed := zlibCompress(t, "one two three")

	out1, _ := d.Feed(compressed)
	out2, err := d.Feed(nil)
	if err != nil {
		t.Fatalf("unexpected error re-feeding with no new bytes: %v", err)
	}
	if len(out2) != 0 {
		t.Fatalf("expected no duplicate output on a re-feed with nothing new, got %q (first feed produced %q)", out2, out1)
	}
}

func TestDecompressorStopResetsState(t *testing.T) {
	var d Decompressor
	d.Start()
	d.Feed(zlibCompress(t, "x"))
	d.Stop()
	if d.Active() {
		t.Fatalf("expected Stop to disengage the decompressor")
	}
}

func TestDecompressorCorruptStreamErrors(t *testing.T) {
	var d Decompressor
	d.Start()
	_, err := d.Feed([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	if err != ErrCorrupt {
		t.Fatalf("expected ErrCorrupt for a garbage zlib header, got %v", err)
	}
}
