package stores

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"
)

func TestPhotoStore_URL(t *testing.T) {
	p := NewPhotoStore("/tmp/uploads", "/uploads")

	if got := p.URL("abc.jpg"); got != "/uploads/abc.jpg" {
		t.Errorf("URL: got %q", got)
	}
	if got := p.URL(""); got != "/static/img/store.svg" {
		t.Errorf("URL with no photo: got %q, want the placeholder", got)
	}
}

func TestPhotoStore_Save_NoFile(t *testing.T) {
	p := NewPhotoStore(t.TempDir(), "/uploads")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("name", "No Photo Store"); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/add", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	name, err := p.Save(req, "photo")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if name != "" {
		t.Errorf("got filename %q, want empty for a form without a photo", name)
	}
}

func TestPhotoStore_Save_RejectsNonImage(t *testing.T) {
	p := NewPhotoStore(t.TempDir(), "/uploads")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("photo", "evil.jpg")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("#!/bin/sh\necho not an image\n"))
	mw.Close()

	req := httptest.NewRequest("POST", "/add", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if _, err := p.Save(req, "photo"); err != ErrBadPhotoType {
		t.Errorf("got %v, want ErrBadPhotoType", err)
	}
}
