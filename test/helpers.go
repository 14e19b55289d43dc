package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// WriteTmpCSV writes content to a new CSV file in a temporary directory
// and returns its path.
func WriteTmpCSV(t *testing.T, content string) string {
	p := TmpFile(t) + ".csv"
	require.Nil(t, os.WriteFile(p, []byte(content), 0o600), "could not write test CSV file")
	return p
}

// LoadTestFile loads a test file from the testdata directory
//
// File contents are returned as a buffer and a map for the HTTP request headers
func LoadTestFile(t *testing.T, filePath string) (*bytes.Buffer, map[string]string) {
	file, err := os.Open(path.Join("../../../testdata", filePath))
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	defer file.Close()

	return MultipartFile(t, path.Base(filePath), file)
}

// MultipartFile returns a multipart body with the content of r as form file "file"
// together with the Content-Type header needed to send it.
func MultipartFile(t *testing.T, name string, r io.Reader) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", name)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	if _, err := io.Copy(w, r); err != nil {
		assert.FailNow(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
