package dto

// CreateConnectionRequest defines the structure for requesting a connection.
type CreateConnectionRequest struct {
	RequesterID int64 `json:"-"` // set by handler from auth context
	ReceiverID  int64 `json:"receiver_id" validate:"required,gt=0"`
}

// SendMessageRequest defines the structure for sending a direct message.
type SendMessageRequest struct {
	SenderID   int64  `json:"-"`
	ReceiverID int64  `json:"receiver_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required,max=5000"`
}

// CreateCompanyRequest defines the client-suppliable fields for a company page.
type CreateCompanyRequest struct {
	OwnerID     int64   `json:"-"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Size        *string `json:"size,omitempty" validate:"omitempty,max=40"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// UpdateCompanyRequest defines the structure for updating a company page.
type UpdateCompanyRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Size        *string `json:"size,omitempty" validate:"omitempty,max=40"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// CreatePasswordResetRequest files a reset request for review. Unauthenticated.
type CreatePasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ProcessPasswordResetRequest resolves a pending reset request. Admin only.
type ProcessPasswordResetRequest struct {
	ID         int64   `json:"-" validate:"required"`
	Status     string  `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes *string `json:"admin_notes,omitempty" validate:"omitempty,max=2000"`
}

// ListRequest is shared pagination for admin listings.
type ListRequest struct {
	Query  string `form:"q" validate:"omitempty,max=100"`
	Limit  int    `form:"limit,default=25" validate:"omitempty,gt=0,lte=100"`
	Offset int    `form:"offset,default=0" validate:"omitempty,gte=0"`
}
