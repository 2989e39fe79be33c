package models

import (
	"database/sql/driver"
	"fmt"
)

// scanString normalizes a database value to string for enum Scan implementations.
func scanString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to scan enum: value is not string or []byte")
	}
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, err := scanString(value)
	if err != nil {
		return err
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusInterview,
		ApplicationStatusHired, ApplicationStatusRejected:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Terminal reports whether no further transition is allowed from s.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusHired || s == ApplicationStatusRejected
}

// --- Connection Status Enum ---
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// Scan implements the sql.Scanner interface for ConnectionStatus
func (s *ConnectionStatus) Scan(value interface{}) error {
	strVal, err := scanString(value)
	if err != nil {
		return err
	}
	v := ConnectionStatus(strVal)
	switch v {
	case ConnectionStatusPending, ConnectionStatusAccepted, ConnectionStatusRejected:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ConnectionStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ConnectionStatus
func (s ConnectionStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Password Reset Status Enum ---
type ResetStatus string

const (
	ResetStatusPending  ResetStatus = "pending"
	ResetStatusApproved ResetStatus = "approved"
	ResetStatusRejected ResetStatus = "rejected"
)

// Scan implements the sql.Scanner interface for ResetStatus
func (s *ResetStatus) Scan(value interface{}) error {
	strVal, err := scanString(value)
	if err != nil {
		return err
	}
	v := ResetStatus(strVal)
	switch v {
	case ResetStatusPending, ResetStatusApproved, ResetStatusRejected:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ResetStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ResetStatus
func (s ResetStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Community Role Enum ---
type CommunityRole string

const (
	CommunityRoleMember    CommunityRole = "member"
	CommunityRoleModerator CommunityRole = "moderator"
	CommunityRoleAdmin     CommunityRole = "admin"
)

// Scan implements the sql.Scanner interface for CommunityRole
func (r *CommunityRole) Scan(value interface{}) error {
	strVal, err := scanString(value)
	if err != nil {
		return err
	}
	v := CommunityRole(strVal)
	switch v {
	case CommunityRoleMember, CommunityRoleModerator, CommunityRoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid CommunityRole value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for CommunityRole
func (r CommunityRole) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Profile Visibility Enum ---
type ProfileVisibility string

const (
	ProfileVisibilityAll         ProfileVisibility = "all"
	ProfileVisibilityConnections ProfileVisibility = "connections"
	ProfileVisibilityRecruiters  ProfileVisibility = "recruiters"
)

// Scan implements the sql.Scanner interface for ProfileVisibility
func (v *ProfileVisibility) Scan(value interface{}) error {
	strVal, err := scanString(value)
	if err != nil {
		return err
	}
	pv := ProfileVisibility(strVal)
	switch pv {
	case ProfileVisibilityAll, ProfileVisibilityConnections, ProfileVisibilityRecruiters:
		*v = pv
		return nil
	default:
		return fmt.Errorf("invalid ProfileVisibility value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ProfileVisibility
func (v ProfileVisibility) Value() (driver.Value, error) {
	return string(v), nil
}

// --- Digital CV Visibility Enum ---
type CvVisibility string

const (
	CvVisibilityAll         CvVisibility = "all"
	CvVisibilityConnections CvVisibility = "connections"
	CvVisibilityApplied     CvVisibility = "applied"
	CvVisibilityRecruiters  CvVisibility = "recruiters"
)

// Scan implements the sql.Scanner interface for CvVisibility
func (v *CvVisibility) Scan(value interface{}) error {
	strVal, err := scanString(value)
	if err != nil {
		return err
	}
	cv := CvVisibility(strVal)
	switch cv {
	case CvVisibilityAll, CvVisibilityConnections, CvVisibilityApplied, CvVisibilityRecruiters:
		*v = cv
		return nil
	default:
		return fmt.Errorf("invalid CvVisibility value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for CvVisibility
func (v CvVisibility) Value() (driver.Value, error) {
	return string(v), nil
}
