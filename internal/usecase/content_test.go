package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaphygon/portfolio/internal/usecase"
)

func TestListContents_GroupsBySection(t *testing.T) {
	repo := newFakeRepo()
	repo.contents[1] = usecase.Content{ID: 1, Section: "hero", Title: "Hi"}
	repo.contents[2] = usecase.Content{ID: 2, Section: "about", Title: "About me"}
	repo.contents[3] = usecase.Content{ID: 3, Section: "about", Title: "More"}
	uc := usecase.New(repo, newFakeStorage(), nil, nil, nil)

	grouped, err := uc.ListContents(context.Background())
	require.NoError(t, err)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["hero"], 1)
	assert.Len(t, grouped["about"], 2)
}

func TestUpdateContent_SectionIsImmutable(t *testing.T) {
	repo := newFakeRepo()
	repo.contents[1] = usecase.Content{ID: 1, Section: "hero", Title: "Hi"}
	uc := usecase.New(repo, newFakeStorage(), nil, nil, nil)

	updated, err := uc.UpdateContent(context.Background(), usecase.Content{
		ID:      1,
		Section: "hacked",
		Title:   "Hello",
		Body:    "new copy",
	})
	require.NoError(t, err)

	assert.Equal(t, "hero", updated.Section)
	assert.Equal(t, "Hello", updated.Title)
	assert.Equal(t, "new copy", updated.Body)
}

func TestUpdateContent_NotFound(t *testing.T) {
	uc := usecase.New(newFakeRepo(), newFakeStorage(), nil, nil, nil)

	_, err := uc.UpdateContent(context.Background(), usecase.Content{ID: 404})

	var nferr usecase.ErrNotFound
	require.ErrorAs(t, err, &nferr)
}

func TestSkillValidation(t *testing.T) {
	uc := usecase.New(newFakeRepo(), newFakeStorage(), nil, nil, nil)

	_, err := uc.CreateSkill(context.Background(), usecase.Skill{Name: " "})
	var verr usecase.ErrValidation
	require.ErrorAs(t, err, &verr)

	_, err = uc.UpdateSkill(context.Background(), usecase.Skill{ID: 1, Name: ""})
	require.ErrorAs(t, err, &verr)
}

func TestUpdateSkill_NotFound(t *testing.T) {
	uc := usecase.New(newFakeRepo(), newFakeStorage(), nil, nil, nil)

	_, err := uc.UpdateSkill(context.Background(), usecase.Skill{ID: 404, Name: "Go"})

	var nferr usecase.ErrNotFound
	require.ErrorAs(t, err, &nferr)
}

func TestDeleteSkill_NotFound(t *testing.T) {
	uc := usecase.New(newFakeRepo(), newFakeStorage(), nil, nil, nil)

	err := uc.DeleteSkill(context.Background(), 404)

	var nferr usecase.ErrNotFound
	require.ErrorAs(t, err, &nferr)
}
