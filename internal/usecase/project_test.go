package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaphygon/portfolio/internal/usecase"
)

func newProjectUsecase(repo *fakeRepo, storage *fakeStorage) usecase.Usecase {
	return usecase.New(repo, storage, nil, fakeTokens{}, nil)
}

func pngBytes(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCreateProject_RequiresTitle(t *testing.T) {
	uc := newProjectUsecase(newFakeRepo(), newFakeStorage())

	_, err := uc.CreateProject(context.Background(), usecase.CreateProject{Title: "  "})

	var verr usecase.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
}

func TestCreateProject_NormalizesFlags(t *testing.T) {
	uc := newProjectUsecase(newFakeRepo(), newFakeStorage())

	for _, tc := range []struct {
		featured   string
		orderIndex string
		wantFeat   bool
		wantOrder  int
	}{
		{"true", "3", true, 3},
		{"1", "", true, 0},
		{"false", "junk", false, 0},
		{"", "-2", false, -2},
		{"yes", "7", false, 7},
	} {
		p, err := uc.CreateProject(context.Background(), usecase.CreateProject{
			Title:      "demo",
			Featured:   tc.featured,
			OrderIndex: tc.orderIndex,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.wantFeat, p.Featured, "featured=%q", tc.featured)
		assert.Equal(t, tc.wantOrder, p.OrderIndex, "order_index=%q", tc.orderIndex)
	}
}

func TestCreateProject_StagesAssets(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	uc := newProjectUsecase(repo, storage)

	p, err := uc.CreateProject(context.Background(), usecase.CreateProject{
		Title:     "with assets",
		Thumbnail: &usecase.Upload{Name: "thumb.png", ContentType: "image/png", Content: pngBytes(t, color.RGBA{200, 30, 30, 255})},
		Images: []usecase.Upload{
			{Name: "a.png", ContentType: "image/png", Content: []byte("a")},
			{Name: "b.png", ContentType: "image/png", Content: []byte("b")},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.Thumbnail)
	assert.Len(t, p.Images, 2)
	assert.NotEmpty(t, p.Colors, "thumbnail colors should be extracted")
	assert.Len(t, storage.blobs, 3)
}

func TestCreateProject_CleansUpOnStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	storage.failAfter = 1 // thumbnail succeeds, first image fails
	uc := newProjectUsecase(repo, storage)

	_, err := uc.CreateProject(context.Background(), usecase.CreateProject{
		Title:     "doomed",
		Thumbnail: &usecase.Upload{Name: "thumb.png", Content: []byte("t")},
		Images:    []usecase.Upload{{Name: "a.png", Content: []byte("a")}},
	})

	var werr usecase.ErrAssetWrite
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "a.png", werr.Name)
	assert.Empty(t, storage.blobs, "staged thumbnail should be reclaimed")
	assert.Empty(t, repo.projects)
}

func TestCreateProject_CleansUpOnInsertFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreateProject = errors.New("insert failed")
	storage := newFakeStorage()
	uc := newProjectUsecase(repo, storage)

	_, err := uc.CreateProject(context.Background(), usecase.CreateProject{
		Title:     "doomed",
		Thumbnail: &usecase.Upload{Name: "thumb.png", Content: []byte("t")},
		Images:    []usecase.Upload{{Name: "a.png", Content: []byte("a")}},
	})

	require.Error(t, err)
	assert.Empty(t, storage.blobs, "all staged assets should be reclaimed")
}

func TestUpdateProject_PreservesAbsentFields(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	uc := newProjectUsecase(repo, storage)

	created, err := uc.CreateProject(context.Background(), usecase.CreateProject{
		Title:       "original",
		Description: "desc",
		Tags:        []string{"go", "web"},
		URL:         "https://example.com",
		Featured:    "true",
		OrderIndex:  "5",
	})
	require.NoError(t, err)

	title := "renamed"
	updated, err := uc.UpdateProject(context.Background(), created.ID, usecase.UpdateProject{
		Title: &title,
	})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, []string{"go", "web"}, updated.Tags)
	assert.Equal(t, "https://example.com", updated.URL)
	assert.True(t, updated.Featured)
	assert.Equal(t, 5, updated.OrderIndex)
}

func TestUpdateProject_RejectsBlankTitle(t *testing.T) {
	repo := newFakeRepo()
	uc := newProjectUsecase(repo, newFakeStorage())

	created, err := uc.CreateProject(context.Background(), usecase.CreateProject{Title: "original"})
	require.NoError(t, err)

	blank := " "
	_, err = uc.UpdateProject(context.Background(), created.ID, usecase.UpdateProject{Title: &blank})

	var verr usecase.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "original", repo.projects[created.ID].Title)
}

func TestUpdateProject_ReplacesImageListWholesale(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	uc := newProjectUsecase(repo, storage)

	created, err := uc.CreateProject(context.Background(), usecase.CreateProject{
		Title: "gallery",
		Images: []usecase.Upload{
			{Name: "old1.png", Content: []byte("1")},
			{Name: "old2.png", Content: []byte("2")},
		},
	})
	require.NoError(t, err)
	oldRefs := created.Images

	updated, err := uc.UpdateProject(context.Background(), created.ID, usecase.UpdateProject{
		Images: []usecase.Upload{{Name: "new.png", Content: []byte("n")}},
	})
	require.NoError(t, err)

	assert.Len(t, updated.Images, 1)
	for _, old := range oldRefs {
		assert.Contains(t, storage.deleted, old, "replaced image should be reclaimed")
		assert.NotContains(t, updated.Images, old)
	}
}

func TestUpdateProject_LeavesExternalURLsAlone(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	uc := newProjectUsecase(repo, storage)

	// Seed a project whose thumbnail is an external URL, as imported
	// rows can be.
	repo.projects[42] = usecase.Project{
		ID:        42,
		Title:     "imported",
		Thumbnail: "https://cdn.example.com/shot.png",
		Images:    []string{"https://cdn.example.com/a.png"},
	}

	updated, err := uc.UpdateProject(context.Background(), 42, usecase.UpdateProject{
		Thumbnail: &usecase.Upload{Name: "t.png", Content: []byte("t")},
		Images:    []usecase.Upload{{Name: "n.png", Content: []byte("n")}},
	})
	require.NoError(t, err)

	assert.NotContains(t, storage.deleted, "https://cdn.example.com/shot.png")
	assert.NotContains(t, storage.deleted, "https://cdn.example.com/a.png")
	assert.NotEqual(t, "https://cdn.example.com/shot.png", updated.Thumbnail)
}

func TestUpdateProject_NotFound(t *testing.T) {
	uc := newProjectUsecase(newFakeRepo(), newFakeStorage())

	_, err := uc.UpdateProject(context.Background(), 999, usecase.UpdateProject{})

	var nferr usecase.ErrNotFound
	require.ErrorAs(t, err, &nferr)
}

func TestDeleteProject_ReclaimsAssets(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	uc := newProjectUsecase(repo, storage)

	created, err := uc.CreateProject(context.Background(), usecase.CreateProject{
		Title:     "to delete",
		Thumbnail: &usecase.Upload{Name: "t.png", Content: []byte("t")},
		Images:    []usecase.Upload{{Name: "a.png", Content: []byte("a")}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProject(context.Background(), created.ID))

	assert.Empty(t, repo.projects)
	assert.Empty(t, storage.blobs, "deleted project's assets should be reclaimed")
}

func TestDeleteProject_NotFound(t *testing.T) {
	uc := newProjectUsecase(newFakeRepo(), newFakeStorage())

	err := uc.DeleteProject(context.Background(), 999)

	var nferr usecase.ErrNotFound
	require.ErrorAs(t, err, &nferr)
}

func TestGetProjectQR(t *testing.T) {
	repo := newFakeRepo()
	uc := newProjectUsecase(repo, newFakeStorage())

	withURL, err := uc.CreateProject(context.Background(), usecase.CreateProject{
		Title: "live",
		URL:   "https://example.com/demo",
	})
	require.NoError(t, err)
	withoutURL, err := uc.CreateProject(context.Background(), usecase.CreateProject{Title: "offline"})
	require.NoError(t, err)

	qr, err := uc.GetProjectQR(context.Background(), withURL.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, qr)

	_, err = uc.GetProjectQR(context.Background(), withoutURL.ID)
	var verr usecase.ErrValidation
	require.ErrorAs(t, err, &verr)
}
