package domain

import "time"

const (
	ResourceAvailable = "available"
	ResourceAssigned  = "assigned"
	ResourceRemoved   = "removed"

	ProofPending  = "pending"
	ProofReceived = "received"
	ProofExpired  = "expired"

	VerdictPending    = "pending"
	VerdictWorking    = "working"
	VerdictNotWorking = "notworking"

	BroadcastQueued  = "queued"
	BroadcastRunning = "running"
	BroadcastDone    = "done"

	ChannelTypeRequired = "required"
)

type User struct {
	UserID                int64     `db:"user_id"`
	Username              string    `db:"username"`
	Language              string    `db:"language"`
	Points                int64     `db:"points"`
	Banned                bool      `db:"banned"`
	AccountsTaken         int       `db:"accounts_taken"`
	ReferrerID            *int64    `db:"referrer_id"`
	JoinedRequiredVersion int       `db:"joined_required_version"`
	CreatedAt             time.Time `db:"created_at"`
	LastActive            time.Time `db:"last_active"`
}

type Resource struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Secret      string     `db:"secret"`
	Cost        int        `db:"cost"`
	DefaultFlag bool       `db:"default_flag"`
	Status      string     `db:"status"`
	AssignedTo  *int64     `db:"assigned_to"`
	AssignedAt  *time.Time `db:"assigned_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

type RequiredChannel struct {
	ChannelID int64     `db:"channel_id"`
	Type      string    `db:"type"`
	Active    bool      `db:"active"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Proof struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	ResourceID int64     `db:"resource_id"`
	Type       string    `db:"type"`
	FileID     *string   `db:"file_id"`
	Posted     []int64   `db:"posted"`
	CreatedAt  time.Time `db:"created_at"`
	DeadlineAt time.Time `db:"deadline_at"`
	Status     string    `db:"status"`
}

type Referral struct {
	ReferrerID    int64      `db:"referrer_id"`
	ReferredID    int64      `db:"referred_id"`
	JoinedAt      time.Time  `db:"joined_at"`
	LeftAt        *time.Time `db:"left_at"`
	PointsAwarded int64      `db:"points_awarded"`
}

type BroadcastJob struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	Status    string    `db:"status"`
	Sent      int       `db:"sent"`
	Failed    int       `db:"failed"`
	CreatedAt time.Time `db:"created_at"`
}
