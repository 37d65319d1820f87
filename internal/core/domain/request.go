package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a course request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Decision values accepted by the admin action endpoint.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

var ErrRequestNotFound = errors.New("course request not found")
var ErrRequestDecided = errors.New("course request already decided")
var ErrInvalidDecision = errors.New("invalid decision action")

// Terminal reports whether the status admits no further transition.
// pending → approved and pending → rejected are the only valid moves.
func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// CourseRequest is a pending course proposal submitted by an instructor,
// awaiting an admin decision before it becomes a published Course.
type CourseRequest struct {
	ID          string        `json:"id"`
	AccountID   string        `json:"account_id"`
	CourseName  string        `json:"course_name"`
	Description string        `json:"description"`
	Credits     int           `json:"credits"`
	Price       float64       `json:"price"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
