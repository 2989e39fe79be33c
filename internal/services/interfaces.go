package services

import (
	"context"

	"talenthub/internal/models"
	"talenthub/internal/transport/dto"
)

// UserService defines the interface for account and profile business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, viewer models.Actor, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, actor models.Actor, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, actor models.Actor, req *dto.ChangePasswordRequest) error
	SetTwoFactor(ctx context.Context, actor models.Actor, enabled bool) error
	Delete(ctx context.Context, actor models.Actor, userID int64) error
}

// PostService defines the interface for posts, likes, comments and reposts.
type PostService interface {
	CreatePost(ctx context.Context, actor models.Actor, req *dto.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	DeletePost(ctx context.Context, actor models.Actor, id int64) error
	ListFeed(ctx context.Context, req *dto.ListFeedRequest) ([]models.PostWithMeta, error)
	ListUserPosts(ctx context.Context, userID, viewerID int64) ([]models.PostWithMeta, error)
	ListCommunityPosts(ctx context.Context, actor models.Actor, communityID int64, limit, offset int) ([]models.PostWithMeta, error)

	LikePost(ctx context.Context, actor models.Actor, postID int64) error
	UnlikePost(ctx context.Context, actor models.Actor, postID int64) error
	CommentOnPost(ctx context.Context, actor models.Actor, req *dto.CreateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, actor models.Actor, commentID int64) error
	ListComments(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error)
	Repost(ctx context.Context, actor models.Actor, postID int64) (*models.Post, error)
}

// JobService defines the interface for job posting and bookmark business logic.
type JobService interface {
	CreateJob(ctx context.Context, actor models.Actor, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	UpdateJob(ctx context.Context, actor models.Actor, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, actor models.Actor, id int64) error
	SetArchived(ctx context.Context, actor models.Actor, id int64, archived bool) (*models.Job, error)
	ListActiveJobs(ctx context.Context, limit, offset int) ([]models.Job, error)
	SearchJobs(ctx context.Context, req *dto.SearchJobsRequest) ([]models.Job, error)
	ListMyJobs(ctx context.Context, actor models.Actor) ([]models.JobWithApplicants, error)

	SaveJob(ctx context.Context, actor models.Actor, jobID int64) error
	UnsaveJob(ctx context.Context, actor models.Actor, jobID int64) error
	ListSavedJobs(ctx context.Context, actor models.Actor) ([]models.SavedJobWithJob, error)
}

// JobApplicationService defines the interface for the application pipeline.
type JobApplicationService interface {
	Apply(ctx context.Context, actor models.Actor, req *dto.ApplyToJobRequest) (*models.JobApplication, error)
	GetApplication(ctx context.Context, actor models.Actor, id int64) (*models.JobApplication, error)
	ListByJob(ctx context.Context, actor models.Actor, jobID int64) ([]models.ApplicationWithApplicant, error)
	ListMine(ctx context.Context, actor models.Actor) ([]models.AppliedJob, error)
	UpdateStatus(ctx context.Context, actor models.Actor, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error)
}

// CommunityService defines the interface for communities and memberships.
type CommunityService interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateCommunityRequest) (*models.Community, error)
	Get(ctx context.Context, id int64) (*models.Community, error)
	Update(ctx context.Context, actor models.Actor, req *dto.UpdateCommunityRequest) (*models.Community, error)
	Delete(ctx context.Context, actor models.Actor, id int64) error
	List(ctx context.Context, limit, offset int) ([]models.Community, error)

	Join(ctx context.Context, actor models.Actor, communityID int64) error
	Leave(ctx context.Context, actor models.Actor, communityID int64) error
	InviteMember(ctx context.Context, actor models.Actor, communityID, userID int64) error
	RemoveMember(ctx context.Context, actor models.Actor, communityID, userID int64) error
	ListMembers(ctx context.Context, actor models.Actor, communityID int64) ([]models.CommunityMemberWithUser, error)
	SetMemberRole(ctx context.Context, actor models.Actor, communityID, userID int64, role models.CommunityRole) error
}

// ConnectionService defines the interface for the connection workflow.
type ConnectionService interface {
	Request(ctx context.Context, actor models.Actor, receiverID int64) (*models.Connection, error)
	Respond(ctx context.Context, actor models.Actor, connectionID int64, accept bool) (*models.Connection, error)
	Disconnect(ctx context.Context, actor models.Actor, connectionID int64) error
	ListConnections(ctx context.Context, userID int64) ([]models.ConnectionWithUser, error)
	ListPendingReceived(ctx context.Context, actor models.Actor) ([]models.ConnectionWithUser, error)
}

// MessageService defines the interface for direct messaging.
type MessageService interface {
	Send(ctx context.Context, actor models.Actor, req *dto.SendMessageRequest) (*models.Message, error)
	GetConversation(ctx context.Context, actor models.Actor, partnerID int64, limit, offset int) ([]models.Message, error)
	MarkConversationRead(ctx context.Context, actor models.Actor, partnerID int64) error
	MarkMessageRead(ctx context.Context, actor models.Actor, messageID int64) error
	Inbox(ctx context.Context, actor models.Actor) ([]models.ConversationSummary, error)
}

// CompanyService defines the interface for company pages.
type CompanyService interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateCompanyRequest) (*models.Company, error)
	Get(ctx context.Context, id int64) (*models.Company, error)
	List(ctx context.Context, limit, offset int) ([]models.Company, error)
	Update(ctx context.Context, actor models.Actor, req *dto.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, actor models.Actor, id int64) error
}

// PasswordResetService defines the interface for the admin-reviewed reset flow.
type PasswordResetService interface {
	RequestReset(ctx context.Context, req *dto.CreatePasswordResetRequest) error
	List(ctx context.Context, actor models.Actor, onlyPending bool, limit, offset int) ([]models.PasswordResetRequest, error)
	Process(ctx context.Context, actor models.Actor, req *dto.ProcessPasswordResetRequest) (*models.PasswordResetRequest, error)
}

// AdminService defines the interface for the admin panel.
type AdminService interface {
	ListUsers(ctx context.Context, actor models.Actor, req *dto.ListRequest) ([]models.AdminUserView, error)
	ListJobs(ctx context.Context, actor models.Actor, req *dto.ListRequest) ([]models.AdminJobView, error)
	ListPosts(ctx context.Context, actor models.Actor, req *dto.ListRequest) ([]models.AdminPostView, error)
	ListCommunities(ctx context.Context, actor models.Actor, req *dto.ListRequest) ([]models.AdminCommunityView, error)
	SetRoles(ctx context.Context, actor models.Actor, userID int64, req *dto.SetRoleRequest) (*models.User, error)
}
