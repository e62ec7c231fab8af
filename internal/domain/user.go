package domain

import "time"

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:254;not null;uniqueIndex;uniqueIndex:idx_username_email" validate:"required,email"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex;uniqueIndex:idx_username_email"`
	FirstName    string    `json:"first_name" gorm:"size:150;not null"`
	LastName     string    `json:"last_name" gorm:"size:150;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsAdmin      bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Subscription links a subscriber to an author they follow.
// The pair is unique; self-subscription is rejected at the service level.
type Subscription struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	SubscriberID int64     `json:"subscriber_id" gorm:"not null;index;uniqueIndex:idx_subscriber_author"`
	AuthorID     int64     `json:"author_id" gorm:"not null;index;uniqueIndex:idx_subscriber_author"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	Subscriber *User `json:"subscriber,omitempty" gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
	Author     *User `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (Subscription) TableName() string { return "subscriptions" }
