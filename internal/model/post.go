package model

import (
	"time"
)

// Post is the single document type the service manages. ModifyTime stays
// unset until the first update; Modified is true exactly when ModifyTime
// is present.
type Post struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	Title      string     `bson:"title" json:"title"`
	Author     string     `bson:"author" json:"author"`
	Body       string     `bson:"body" json:"body"`
	PostTime   time.Time  `bson:"post_time" json:"postTime"`
	Modified   bool       `bson:"modified" json:"modified"`
	ModifyTime *time.Time `bson:"modify_time,omitempty" json:"modifyTime,omitempty"`
}

func (p Post) GetCollectionName() string {
	return "posts"
}

func (p Post) GetID() string {
	return p.ID
}
