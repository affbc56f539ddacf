package usecase_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaphygon/portfolio/internal/usecase"
)

func pdfUpload(name string) *usecase.Upload {
	return &usecase.Upload{
		Name:        name,
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4 fake"),
	}
}

func TestUploadCV_Validation(t *testing.T) {
	uc := usecase.New(newFakeRepo(), newFakeStorage(), nil, nil, nil)

	for _, tc := range []struct {
		name string
		cmd  usecase.UploadCV
	}{
		{"no file", usecase.UploadCV{Title: "Resume"}},
		{"blank title", usecase.UploadCV{Title: " ", File: pdfUpload("cv.pdf")}},
		{"not a pdf", usecase.UploadCV{
			Title: "Resume",
			File:  &usecase.Upload{Name: "cv.docx", ContentType: "application/msword", Content: []byte("x")},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.UploadCV(context.Background(), tc.cmd)
			var verr usecase.ErrValidation
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestUploadCV_StoresFileAndActivates(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	uc := usecase.New(repo, storage, nil, nil, nil)

	cv, err := uc.UploadCV(context.Background(), usecase.UploadCV{
		Title: "Resume 2026",
		File:  pdfUpload("resume.pdf"),
	})
	require.NoError(t, err)

	assert.True(t, cv.IsActive)
	assert.Equal(t, "resume.pdf", cv.FileName)
	assert.Equal(t, int64(len("%PDF-1.4 fake")), cv.FileSize)
	assert.Len(t, storage.blobs, 1)
}

func TestDownloadCV_CountsAndStreams(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	uc := usecase.New(repo, storage, nil, nil, nil)

	created, err := uc.UploadCV(context.Background(), usecase.UploadCV{
		Title: "Resume",
		File:  pdfUpload("resume.pdf"),
	})
	require.NoError(t, err)

	cv, rc, err := uc.DownloadCV(context.Background(), created.ID)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(content))
	assert.Equal(t, "resume.pdf", cv.FileName)
	assert.Equal(t, 1, repo.cvs[created.ID].DownloadCount)
}

func TestViewCV_DoesNotCount(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.New(repo, newFakeStorage(), nil, nil, nil)

	created, err := uc.UploadCV(context.Background(), usecase.UploadCV{
		Title: "Resume",
		File:  pdfUpload("resume.pdf"),
	})
	require.NoError(t, err)

	_, rc, err := uc.ViewCV(context.Background(), created.ID)
	require.NoError(t, err)
	rc.Close()

	assert.Equal(t, 0, repo.cvs[created.ID].DownloadCount)
}

func TestDownloadCV_InactiveIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.New(repo, newFakeStorage(), nil, nil, nil)

	created, err := uc.UploadCV(context.Background(), usecase.UploadCV{
		Title: "Resume",
		File:  pdfUpload("resume.pdf"),
	})
	require.NoError(t, err)
	require.NoError(t, uc.ToggleCVActive(context.Background(), created.ID))

	_, _, err = uc.DownloadCV(context.Background(), created.ID)

	var nferr usecase.ErrNotFound
	require.ErrorAs(t, err, &nferr)
}

func TestDeleteCV_ReclaimsFile(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	uc := usecase.New(repo, storage, nil, nil, nil)

	created, err := uc.UploadCV(context.Background(), usecase.UploadCV{
		Title: "Resume",
		File:  pdfUpload("resume.pdf"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCV(context.Background(), created.ID))

	assert.Empty(t, repo.cvs)
	assert.Contains(t, storage.deleted, created.FilePath)
}
