package models

type User struct {
	ID          string `json:"id,omitempty" bson:"_id,omitempty"`
	Email       string `json:"email" bson:"email"`
	Password    string `json:"-" bson:"password"`
	DisplayName string `json:"displayName" bson:"displayName"`
	TimeModel   `bson:",inline"`
}
