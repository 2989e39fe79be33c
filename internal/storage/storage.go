package storage

import (
	"context"

	"talenthub/internal/models"
	"talenthub/internal/transport/dto"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.RegisterRequest, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetTwoFactor(ctx context.Context, id int64, enabled bool) error
	SetRoles(ctx context.Context, id int64, isRecruiter, isAdmin *bool) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// PostRepository defines the interface for posts, likes, comments and reposts.
type PostRepository interface {
	Create(ctx context.Context, req *dto.CreatePostRequest) (*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
	ListFeed(ctx context.Context, viewerID int64, limit, offset int) ([]models.PostWithMeta, error)
	ListByUser(ctx context.Context, userID, viewerID int64) ([]models.PostWithMeta, error)
	ListByCommunity(ctx context.Context, communityID, viewerID int64, limit, offset int) ([]models.PostWithMeta, error)

	AddLike(ctx context.Context, userID, postID int64) error
	RemoveLike(ctx context.Context, userID, postID int64) error
	AddComment(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error)
	GetComment(ctx context.Context, id int64) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	ListComments(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error)
	// CreateRepost inserts the repost post-row and the reposts audit row in one
	// transaction. originalID must reference an original post.
	CreateRepost(ctx context.Context, userID, originalID int64) (*models.Post, error)
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
	SetArchived(ctx context.Context, id int64, archived bool) (*models.Job, error)
	ListActive(ctx context.Context, limit, offset int) ([]models.Job, error)
	Search(ctx context.Context, req *dto.SearchJobsRequest) ([]models.Job, error)
	ListByOwnerWithApplicants(ctx context.Context, ownerID int64) ([]models.JobWithApplicants, error)
}

// JobApplicationRepository defines the interface for application data operations.
type JobApplicationRepository interface {
	Create(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error)
	GetByID(ctx context.Context, id int64) (*models.JobApplication, error)
	ListByJob(ctx context.Context, jobID int64) ([]models.ApplicationWithApplicant, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]models.AppliedJob, error)
	HasActiveApplication(ctx context.Context, jobID, applicantID int64) (bool, error)
	// HasApplicationToOwner reports whether the applicant has ever applied to
	// any job posted by ownerID. Backs the "applied" CV visibility rule.
	HasApplicationToOwner(ctx context.Context, applicantID, ownerID int64) (bool, error)
	// UpdateStatus applies the transition with a conditional UPDATE guarded on
	// the expected current status, so concurrent transitions cannot both win.
	UpdateStatus(ctx context.Context, id int64, from, to models.ApplicationStatus) (*models.JobApplication, error)
}

// SavedJobRepository defines the interface for job bookmarks.
type SavedJobRepository interface {
	Save(ctx context.Context, userID, jobID int64) (*models.SavedJob, error)
	Unsave(ctx context.Context, userID, jobID int64) error
	ListByUser(ctx context.Context, userID int64) ([]models.SavedJobWithJob, error)
}

// CommunityRepository defines the interface for communities and memberships.
// Membership writes are the only code path that touches member_count; both
// sides of the invariant change inside one transaction.
type CommunityRepository interface {
	Create(ctx context.Context, req *dto.CreateCommunityRequest) (*models.Community, error)
	GetByID(ctx context.Context, id int64) (*models.Community, error)
	Update(ctx context.Context, req *dto.UpdateCommunityRequest) (*models.Community, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]models.Community, error)

	AddMember(ctx context.Context, communityID, userID int64, role models.CommunityRole, invited bool) error
	RemoveMember(ctx context.Context, communityID, userID int64) error
	GetMember(ctx context.Context, communityID, userID int64) (*models.CommunityMember, error)
	ListMembers(ctx context.Context, communityID int64) ([]models.CommunityMemberWithUser, error)
	SetMemberRole(ctx context.Context, communityID, userID int64, role models.CommunityRole) error
}

// ConnectionRepository defines the interface for connection data operations.
type ConnectionRepository interface {
	Create(ctx context.Context, requesterID, receiverID int64) (*models.Connection, error)
	GetByID(ctx context.Context, id int64) (*models.Connection, error)
	// GetBetween returns the non-rejected connection between two users in
	// either direction.
	GetBetween(ctx context.Context, userA, userB int64) (*models.Connection, error)
	UpdateStatus(ctx context.Context, id int64, from, to models.ConnectionStatus) (*models.Connection, error)
	Delete(ctx context.Context, id int64) error
	ListAccepted(ctx context.Context, userID int64) ([]models.ConnectionWithUser, error)
	ListPendingReceived(ctx context.Context, userID int64) ([]models.ConnectionWithUser, error)
	AreConnected(ctx context.Context, userA, userB int64) (bool, error)
}

// MessageRepository defines the interface for direct messages.
type MessageRepository interface {
	Create(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error)
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	ListConversation(ctx context.Context, userA, userB int64, limit, offset int) ([]models.Message, error)
	MarkRead(ctx context.Context, id int64) error
	MarkConversationRead(ctx context.Context, readerID, partnerID int64) error
	ListInbox(ctx context.Context, userID int64) ([]models.ConversationSummary, error)
}

// CompanyRepository defines the interface for company pages.
type CompanyRepository interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	List(ctx context.Context, limit, offset int) ([]models.Company, error)
	Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

// PasswordResetRepository defines the interface for the admin-reviewed
// password reset workflow.
type PasswordResetRepository interface {
	Create(ctx context.Context, userID int64, email string) (*models.PasswordResetRequest, error)
	GetByID(ctx context.Context, id int64) (*models.PasswordResetRequest, error)
	List(ctx context.Context, onlyPending bool, limit, offset int) ([]models.PasswordResetRequest, error)
	// Process resolves a pending request. On approval the temporary password
	// hash is written to the user row in the same transaction. The UPDATE is
	// guarded on status = 'pending'; zero rows means the request was already
	// processed.
	Process(ctx context.Context, id int64, status models.ResetStatus, processedBy int64, notes, tempPassword *string, userPasswordHash *string) (*models.PasswordResetRequest, error)
}

// AdminRepository builds the typed projections backing the admin panel.
type AdminRepository interface {
	ListUsers(ctx context.Context, req *dto.ListRequest) ([]models.AdminUserView, error)
	ListJobs(ctx context.Context, req *dto.ListRequest) ([]models.AdminJobView, error)
	ListPosts(ctx context.Context, req *dto.ListRequest) ([]models.AdminPostView, error)
	ListCommunities(ctx context.Context, req *dto.ListRequest) ([]models.AdminCommunityView, error)
}
