package usecase

import "context"

func New(
	repo Repository,
	fsp FileStorageProvider,
	mailer EmailProvider,
	tokens TokenProvider,
	queue QueueClient,
) Usecase {
	return Usecase{
		repo:                repo,
		fileStorageProvider: fsp,
		mailer:              mailer,
		tokenProvider:       tokens,
		queueClient:         queue,
	}
}

// Repository is the persistence boundary. The database package is the
// only implementation allowed to touch the tables.
type Repository interface {
	Health() map[string]string
	Close() error

	ListProjects(context.Context) ([]Project, error)
	ListFeaturedProjects(context.Context, int) ([]Project, error)
	GetProjectByID(context.Context, uint) (Project, error)
	CreateProject(context.Context, Project) (Project, error)
	UpdateProject(context.Context, Project) (Project, error)
	DeleteProject(context.Context, uint) error

	ListSkills(context.Context) ([]Skill, error)
	ListSkillsByCategory(context.Context, string) ([]Skill, error)
	GetSkillByID(context.Context, uint) (Skill, error)
	CreateSkill(context.Context, Skill) (Skill, error)
	UpdateSkill(context.Context, Skill) (Skill, error)
	DeleteSkill(context.Context, uint) error

	ListContents(context.Context) ([]Content, error)
	ListContentsBySection(context.Context, string) ([]Content, error)
	GetContentByID(context.Context, uint) (Content, error)
	UpdateContent(context.Context, Content) (Content, error)

	ListCVs(context.Context) ([]CV, error)
	GetCVByID(context.Context, uint) (CV, error)
	CreateCV(context.Context, CV) (CV, error)
	UpdateCV(context.Context, CV) (CV, error)
	DeleteCV(context.Context, uint) error
	IncrementCVDownloadCount(context.Context, uint) error
	ToggleCVActive(context.Context, uint) error

	GetUserByID(context.Context, uint) (User, error)
	GetUserByUsername(context.Context, string) (User, error)

	CreateContactMessage(context.Context, ContactMessage) (ContactMessage, error)
	ListContactMessages(context.Context) ([]ContactMessage, error)
	GetContactMessageByID(context.Context, uint) (ContactMessage, error)
}

// TokenProvider mints and verifies bearer credentials for the admin
// surface. A verified credential resolves to the subject user id.
type TokenProvider interface {
	Mint(ctx context.Context, userID uint) (string, error)
	Verify(ctx context.Context, token string) (uint, error)
}

type EmailProvider interface {
	SendEmail(context.Context, Email) error
}

// QueueClient enqueues background tasks. The API process holds one;
// the worker passes nil since it only consumes.
type QueueClient interface {
	EnqueueContactNotification(ctx context.Context, messageID uint) error
	Close() error
}

type Usecase struct {
	repo                Repository
	fileStorageProvider FileStorageProvider
	mailer              EmailProvider
	tokenProvider       TokenProvider
	queueClient         QueueClient
}

func (u Usecase) Health() map[string]string {
	return u.repo.Health()
}

func (u Usecase) Close() error {
	if u.queueClient != nil {
		if err := u.queueClient.Close(); err != nil {
			return err
		}
	}
	return u.repo.Close()
}

func (u Usecase) VerifyToken(ctx context.Context, token string) (uint, error) {
	return u.tokenProvider.Verify(ctx, token)
}

// GetAssetBaseURL returns the base URL clients join with
// store-relative asset references. References that are already
// absolute URLs are used as-is by the consumer.
func (u Usecase) GetAssetBaseURL(ctx context.Context) (string, error) {
	return u.fileStorageProvider.GetPublicURL(ctx)
}
