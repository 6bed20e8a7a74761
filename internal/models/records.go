// Package models defines the office domain records and the collection
// registry shared by the local store, the sync engine and the mirror server.
package models

import "time"

// Meta carries the system fields every record has. The ID is assigned
// client-side on create; LastModified is refreshed on every update and
// stamped remotely once the record is synchronized.
type Meta struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// Record is implemented by every domain record via the embedded Meta.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	SetCreatedAt(t time.Time)
	Touch(t time.Time)
}

func (m *Meta) RecordID() string         { return m.ID }
func (m *Meta) SetRecordID(id string)    { m.ID = id }
func (m *Meta) SetCreatedAt(t time.Time) { m.CreatedAt = t }

// Touch refreshes the last-modified timestamp.
func (m *Meta) Touch(t time.Time) { m.LastModified = t }

// Client is a customer of the office. CNIC is the national identity
// number and must be unique within the clients collection.
type Client struct {
	Meta
	Name    string `json:"name"`
	CNIC    string `json:"cnic"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Receipt records a payment received from a client.
type Receipt struct {
	Meta
	ClientID    string    `json:"client_id"`
	Amount      int64     `json:"amount"` // in minor currency units
	Description string    `json:"description,omitempty"`
	IssuedAt    time.Time `json:"issued_at"`
}

// Expense records money spent by the office.
type Expense struct {
	Meta
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description,omitempty"`
	SpentAt     time.Time `json:"spent_at"`
}

// User is an application account. Username must be unique within the
// users collection.
type User struct {
	Meta
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Document is an entry in the document vault.
type Document struct {
	Meta
	Title    string `json:"title"`
	MimeType string `json:"mime_type,omitempty"`
	Content  []byte `json:"content,omitempty"`
	OwnerID  string `json:"owner_id,omitempty"`
}

// Employee is a member of the office staff.
type Employee struct {
	Meta
	Name        string    `json:"name"`
	Designation string    `json:"designation,omitempty"`
	Salary      int64     `json:"salary,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
)

// Attendance marks one employee's status on one day.
type Attendance struct {
	Meta
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

// Activity is an audit-log entry describing a notable mutation.
type Activity struct {
	Meta
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Notification is a message surfaced to the user.
type Notification struct {
	Meta
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Read  bool   `json:"read"`
}
