// Package models holds the plain data structures exchanged between the
// repositories, services, and transport layers.
package models

import "time"

// Record is one stored Aadhaar entry, keyed by its unique 12-digit number.
// Optional fields are pointers so that absence round-trips as SQL NULL
// instead of an empty string.
type Record struct {
	ID            int64      `json:"id"`
	AadhaarNumber string     `json:"aadhaar_number"`
	Name          string     `json:"name"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	Address       *string    `json:"address,omitempty"`
	PhoneNumber   *string    `json:"phone_number,omitempty"`
	Email         *string    `json:"email,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SearchCriteria is an ephemeral filter set for a record search. Every
// recognized option is an explicit field: zero values mean "not supplied".
// String filters other than AadhaarNumber and PhoneNumber match
// case-insensitively; substring filters match anywhere in the value.
type SearchCriteria struct {
	AadhaarNumber  string
	Name           string
	Gender         string
	AddressKeyword string
	PhoneNumber    string
	Email          string
	DOBFrom        *time.Time
	DOBTo          *time.Time
	Page           int
	PageSize       int
}

// SearchResult is a page of matching records plus pagination metadata.
// TotalPages is ceil(Total/PageSize); a search with zero matches has
// TotalPages == 0.
type SearchResult struct {
	Data       []*Record `json:"data"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
