package models

import "go.mongodb.org/mongo-driver/bson"

// Therapist keeps availability as stored: a JSON string, an array of
// {date, slots} documents, or nothing at all.
type Therapist struct {
	ID                   string        `bson:"_id"`
	UserID               string        `bson:"user_id"`
	Bio                  string        `bson:"bio,omitempty"`
	Specialization       string        `bson:"specialization,omitempty"`
	YearsExperience      int           `bson:"years_experience"`
	HourlyRate           int           `bson:"hourly_rate"`
	Availability         bson.RawValue `bson:"availability,omitempty"`
	Rating               float64       `bson:"rating"`
	Languages            []string      `bson:"languages,omitempty"`
	TherapyApproaches    []string      `bson:"therapy_approaches,omitempty"`
	Education            string        `bson:"education,omitempty"`
	LicenseNumber        string        `bson:"license_number,omitempty"`
	LicenseType          string        `bson:"license_type,omitempty"`
	InsuranceInfo        string        `bson:"insurance_info,omitempty"`
	SessionFormats       []string      `bson:"session_formats,omitempty"`
	HasInsurance         bool          `bson:"has_insurance"`
	IsVerified           bool          `bson:"is_verified"`
	IsCommunityTherapist bool          `bson:"is_community_therapist"`
	ApplicationStatus    string        `bson:"application_status,omitempty"`
	PreferredCurrency    string        `bson:"preferred_currency,omitempty"`
	TimeModel            `bson:",inline"`
}

// TherapistWithProfile is a therapist joined with its owner's profile.
type TherapistWithProfile struct {
	Therapist Therapist
	Profile   *Profile
}
