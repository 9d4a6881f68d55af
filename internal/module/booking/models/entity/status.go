package entity

import "fmt"

type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusConfirmed       Status = "confirmed"
	StatusActive          Status = "active"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
)

// StatusMeta is the display metadata every client renders for a status.
type StatusMeta struct {
	Status   Status `json:"status"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Terminal bool   `json:"terminal"`
}

var statusMeta = map[Status]StatusMeta{
	StatusPendingApproval: {StatusPendingApproval, "Pending approval", "yellow", false},
	StatusApproved:        {StatusApproved, "Approved, awaiting payment", "blue", false},
	StatusRejected:        {StatusRejected, "Rejected", "red", true},
	StatusConfirmed:       {StatusConfirmed, "Confirmed", "green", false},
	StatusActive:          {StatusActive, "In progress", "teal", false},
	StatusCompleted:       {StatusCompleted, "Completed", "gray", true},
	StatusCancelled:       {StatusCancelled, "Cancelled", "red", true},
}

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusPendingApproval,
	StatusApproved,
	StatusRejected,
	StatusConfirmed,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) IsValid() bool {
	_, ok := statusMeta[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return statusMeta[s].Terminal
}

func (s Status) Meta() StatusMeta {
	return statusMeta[s]
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)
