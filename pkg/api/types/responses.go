// Package types holds the JSON bodies exchanged with the API that are not
// records themselves.
package types

import "github.com/getmockd/fakeapi/pkg/records"

// ErrorResponse is the body of every unsuccessful simulated response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Credentials is the authenticate request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the authenticate response body: the user's public fields
// next to the issued token.
type AuthResponse struct {
	records.PublicUser
	Token string `json:"token"`
}

// BorrowRequest is the body of a borrow call.
type BorrowRequest struct {
	Borrower string `json:"borrower"`
	Quantity int    `json:"quantity,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// BorrowRecord is one borrow of an item as reported by the server.
type BorrowRecord struct {
	ID         int    `json:"id"`
	ItemID     int    `json:"itemId"`
	Borrower   string `json:"borrower"`
	Quantity   int    `json:"quantity,omitempty"`
	BorrowedAt string `json:"borrowedAt,omitempty"`
	DueDate    string `json:"dueDate,omitempty"`
	ReturnedAt string `json:"returnedAt,omitempty"`
}

// Report is a generated inventory report. Rows are server-defined.
type Report struct {
	Type      string           `json:"type"`
	StartDate string           `json:"startDate,omitempty"`
	EndDate   string           `json:"endDate,omitempty"`
	Rows      []map[string]any `json:"rows"`
}
