// Comment record + request DTO used by handlers.

package models

import "time"

// Comment is stored either as a Mongo document or a SQL row, so it carries both tag sets.
// json tags control the API shape.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Author    string    `gorm:"size:120;not null" bson:"author" json:"author"`
	Body      string    `gorm:"type:text;not null" bson:"body" json:"body"`
	Topic     string    `gorm:"size:120;index" bson:"topic,omitempty" json:"topic,omitempty"` // kebab-case
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateCommentRequest is the expected payload for POST /api/comments.
type CreateCommentRequest struct {
	Author string `json:"author"` // defaults to the bearer token subject
	Body   string `json:"body" binding:"required"`
	Topic  string `json:"topic"`
}

// ConvertRequest is the payload for POST /api/case/:style.
// Input stays untyped: any JSON value is accepted and validated by core.InputOf.
type ConvertRequest struct {
	Input any `json:"input"`
}

// ConvertResponse carries a nil Result when the input could not be converted.
type ConvertResponse struct {
	Result *string `json:"result"`
}
