package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")

// Course is a published catalog entry. InstructorID references the account
// that teaches the course; the looser creation path does not verify it exists.
type Course struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	InstructorID string    `json:"instructor_id"`
	Credits      int       `json:"credits"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}
