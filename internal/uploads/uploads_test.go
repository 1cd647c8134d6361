package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartLogo(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("logo", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/logo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	_, header, err := req.FormFile("logo")
	require.NoError(t, err)
	return header
}

func TestSaveLogo(t *testing.T) {
	dir := t.TempDir()
	saver := NewSaver(dir)

	url, err := saver.SaveLogo(multipartLogo(t, "company.png", []byte("png-bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, URLPrefix+"/logo_"), "url %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "url %q", url)

	// The file exists under its generated name.
	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveLogoGeneratesUniqueNames(t *testing.T) {
	saver := NewSaver(t.TempDir())

	first, err := saver.SaveLogo(multipartLogo(t, "logo.svg", []byte("a")))
	require.NoError(t, err)
	second, err := saver.SaveLogo(multipartLogo(t, "logo.svg", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveLogoRejectsNonImage(t *testing.T) {
	saver := NewSaver(t.TempDir())

	_, err := saver.SaveLogo(multipartLogo(t, "malware.exe", []byte("nope")))
	assert.Error(t, err)

	_, err = saver.SaveLogo(multipartLogo(t, "noextension", []byte("nope")))
	assert.Error(t, err)
}

func TestSaveLogoRejectsOversize(t *testing.T) {
	saver := NewSaver(t.TempDir())

	header := &multipart.FileHeader{Filename: "big.png", Size: MaxFileSize + 1}
	_, err := saver.SaveLogo(header)
	assert.ErrorContains(t, err, "5MB")
}
