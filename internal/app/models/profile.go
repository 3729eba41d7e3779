package models

import "github.com/Bricklabsai/theralink/internal/pkg/constvars"

type Profile struct {
	ID              string `bson:"_id"`
	Email           string `bson:"email"`
	Password        string `bson:"password"`
	FullName        string `bson:"full_name"`
	Role            string `bson:"role"`
	ProfileImageURL string `bson:"profile_image_url,omitempty"`
	Phone           string `bson:"phone,omitempty"`
	Location        string `bson:"location,omitempty"`
	TimeModel       `bson:",inline"`
}

// IsProvider reports whether the profile can receive booking requests.
func (p *Profile) IsProvider() bool {
	return p.Role == constvars.RoleTherapist || p.Role == constvars.RoleFriend
}
