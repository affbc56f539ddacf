package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/anaphygon/portfolio/internal/usecase"
)

// fakeRepo is an in-memory Repository for exercising the application
// layer without a database.
type fakeRepo struct {
	projects map[uint]usecase.Project
	skills   map[uint]usecase.Skill
	contents map[uint]usecase.Content
	cvs      map[uint]usecase.CV
	users    map[uint]usecase.User
	messages map[uint]usecase.ContactMessage
	nextID   uint

	failCreateProject error
	failUpdateProject error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		projects: map[uint]usecase.Project{},
		skills:   map[uint]usecase.Skill{},
		contents: map[uint]usecase.Content{},
		cvs:      map[uint]usecase.CV{},
		users:    map[uint]usecase.User{},
		messages: map[uint]usecase.ContactMessage{},
	}
}

func (r *fakeRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) Health() map[string]string { return map[string]string{"status": "up"} }
func (r *fakeRepo) Close() error              { return nil }

func (r *fakeRepo) ListProjects(ctx context.Context) ([]usecase.Project, error) {
	list := make([]usecase.Project, 0, len(r.projects))
	for _, p := range r.projects {
		list = append(list, p)
	}
	return list, nil
}

func (r *fakeRepo) ListFeaturedProjects(ctx context.Context, limit int) ([]usecase.Project, error) {
	var list []usecase.Project
	for _, p := range r.projects {
		if p.Featured && len(list) < limit {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakeRepo) GetProjectByID(ctx context.Context, id uint) (usecase.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return usecase.Project{}, usecase.ErrNotFound{ID: id, Code: "project_not_found", Message: "Project not found"}
	}
	return p, nil
}

func (r *fakeRepo) CreateProject(ctx context.Context, p usecase.Project) (usecase.Project, error) {
	if r.failCreateProject != nil {
		return usecase.Project{}, r.failCreateProject
	}
	p.ID = r.id()
	r.projects[p.ID] = p
	return p, nil
}

func (r *fakeRepo) UpdateProject(ctx context.Context, p usecase.Project) (usecase.Project, error) {
	if r.failUpdateProject != nil {
		return usecase.Project{}, r.failUpdateProject
	}
	if _, ok := r.projects[p.ID]; !ok {
		return usecase.Project{}, usecase.ErrNotFound{ID: p.ID, Code: "project_not_found", Message: "Project not found"}
	}
	r.projects[p.ID] = p
	return p, nil
}

func (r *fakeRepo) DeleteProject(ctx context.Context, id uint) error {
	if _, ok := r.projects[id]; !ok {
		return usecase.ErrNotFound{ID: id, Code: "project_not_found", Message: "Project not found"}
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeRepo) ListSkills(ctx context.Context) ([]usecase.Skill, error) {
	list := make([]usecase.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		list = append(list, s)
	}
	return list, nil
}

func (r *fakeRepo) ListSkillsByCategory(ctx context.Context, category string) ([]usecase.Skill, error) {
	var list []usecase.Skill
	for _, s := range r.skills {
		if s.Category == category {
			list = append(list, s)
		}
	}
	return list, nil
}

func (r *fakeRepo) GetSkillByID(ctx context.Context, id uint) (usecase.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return usecase.Skill{}, usecase.ErrNotFound{ID: id, Code: "skill_not_found", Message: "Skill not found"}
	}
	return s, nil
}

func (r *fakeRepo) CreateSkill(ctx context.Context, s usecase.Skill) (usecase.Skill, error) {
	s.ID = r.id()
	r.skills[s.ID] = s
	return s, nil
}

func (r *fakeRepo) UpdateSkill(ctx context.Context, s usecase.Skill) (usecase.Skill, error) {
	r.skills[s.ID] = s
	return s, nil
}

func (r *fakeRepo) DeleteSkill(ctx context.Context, id uint) error {
	delete(r.skills, id)
	return nil
}

func (r *fakeRepo) ListContents(ctx context.Context) ([]usecase.Content, error) {
	list := make([]usecase.Content, 0, len(r.contents))
	for _, c := range r.contents {
		list = append(list, c)
	}
	return list, nil
}

func (r *fakeRepo) ListContentsBySection(ctx context.Context, section string) ([]usecase.Content, error) {
	var list []usecase.Content
	for _, c := range r.contents {
		if c.Section == section {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *fakeRepo) GetContentByID(ctx context.Context, id uint) (usecase.Content, error) {
	c, ok := r.contents[id]
	if !ok {
		return usecase.Content{}, usecase.ErrNotFound{ID: id, Code: "content_not_found", Message: "Content not found"}
	}
	return c, nil
}

func (r *fakeRepo) UpdateContent(ctx context.Context, c usecase.Content) (usecase.Content, error) {
	r.contents[c.ID] = c
	return c, nil
}

func (r *fakeRepo) ListCVs(ctx context.Context) ([]usecase.CV, error) {
	list := make([]usecase.CV, 0, len(r.cvs))
	for _, cv := range r.cvs {
		list = append(list, cv)
	}
	return list, nil
}

func (r *fakeRepo) GetCVByID(ctx context.Context, id uint) (usecase.CV, error) {
	cv, ok := r.cvs[id]
	if !ok {
		return usecase.CV{}, usecase.ErrNotFound{ID: id, Code: "cv_not_found", Message: "CV not found"}
	}
	return cv, nil
}

func (r *fakeRepo) CreateCV(ctx context.Context, cv usecase.CV) (usecase.CV, error) {
	cv.ID = r.id()
	r.cvs[cv.ID] = cv
	return cv, nil
}

func (r *fakeRepo) UpdateCV(ctx context.Context, cv usecase.CV) (usecase.CV, error) {
	r.cvs[cv.ID] = cv
	return cv, nil
}

func (r *fakeRepo) DeleteCV(ctx context.Context, id uint) error {
	if _, ok := r.cvs[id]; !ok {
		return usecase.ErrNotFound{ID: id, Code: "cv_not_found", Message: "CV not found"}
	}
	delete(r.cvs, id)
	return nil
}

func (r *fakeRepo) IncrementCVDownloadCount(ctx context.Context, id uint) error {
	cv, ok := r.cvs[id]
	if !ok {
		return usecase.ErrNotFound{ID: id, Code: "cv_not_found", Message: "CV not found"}
	}
	cv.DownloadCount++
	r.cvs[id] = cv
	return nil
}

func (r *fakeRepo) ToggleCVActive(ctx context.Context, id uint) error {
	cv, ok := r.cvs[id]
	if !ok {
		return usecase.ErrNotFound{ID: id, Code: "cv_not_found", Message: "CV not found"}
	}
	cv.IsActive = !cv.IsActive
	r.cvs[id] = cv
	return nil
}

func (r *fakeRepo) GetUserByID(ctx context.Context, id uint) (usecase.User, error) {
	u, ok := r.users[id]
	if !ok {
		return usecase.User{}, usecase.ErrNotFound{ID: id, Code: "user_not_found", Message: "User not found"}
	}
	return u, nil
}

func (r *fakeRepo) GetUserByUsername(ctx context.Context, username string) (usecase.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return usecase.User{}, usecase.ErrNotFound{Code: "user_not_found", Message: "User not found"}
}

func (r *fakeRepo) CreateContactMessage(ctx context.Context, m usecase.ContactMessage) (usecase.ContactMessage, error) {
	m.ID = r.id()
	r.messages[m.ID] = m
	return m, nil
}

func (r *fakeRepo) ListContactMessages(ctx context.Context) ([]usecase.ContactMessage, error) {
	list := make([]usecase.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		list = append(list, m)
	}
	return list, nil
}

func (r *fakeRepo) GetContactMessageByID(ctx context.Context, id uint) (usecase.ContactMessage, error) {
	m, ok := r.messages[id]
	if !ok {
		return usecase.ContactMessage{}, usecase.ErrNotFound{ID: id, Code: "message_not_found", Message: "Message not found"}
	}
	return m, nil
}

// fakeStorage keeps stored blobs in a map and records deletions.
// failAfter > 0 makes the n+1th Store call fail.
type fakeStorage struct {
	blobs     map[string][]byte
	deleted   []string
	stores    int
	failAfter int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{blobs: map[string][]byte{}, failAfter: -1}
}

func (f *fakeStorage) Store(ctx context.Context, up usecase.Upload) (string, error) {
	if f.failAfter >= 0 && f.stores >= f.failAfter {
		return "", fmt.Errorf("store full")
	}
	f.stores++
	ref := fmt.Sprintf("/uploads/blob-%d", f.stores)
	f.blobs[ref] = up.Content
	return ref, nil
}

func (f *fakeStorage) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	b, ok := f.blobs[ref]
	if !ok {
		return nil, fmt.Errorf("no such blob: %s", ref)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, ref string) error {
	delete(f.blobs, ref)
	f.deleted = append(f.deleted, ref)
	return nil
}

func (f *fakeStorage) GetPublicURL(ctx context.Context) (string, error) {
	return "http://localhost:5000", nil
}

type fakeTokens struct{}

func (fakeTokens) Mint(ctx context.Context, userID uint) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

func (fakeTokens) Verify(ctx context.Context, token string) (uint, error) {
	var id uint
	if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
		return 0, usecase.ErrUnauthorized{Message: "invalid token"}
	}
	return id, nil
}

type fakeQueue struct {
	enqueued []uint
	fail     error
}

func (q *fakeQueue) EnqueueContactNotification(ctx context.Context, messageID uint) error {
	if q.fail != nil {
		return q.fail
	}
	q.enqueued = append(q.enqueued, messageID)
	return nil
}

func (q *fakeQueue) Close() error { return nil }

type fakeMailer struct {
	sent []usecase.Email
}

func (m *fakeMailer) SendEmail(ctx context.Context, e usecase.Email) error {
	m.sent = append(m.sent, e)
	return nil
}
