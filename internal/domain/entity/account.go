package entity

// Role distinguishes students from event organizers. It is assigned at
// registration and never reassigned afterwards.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
)

// Gender of an account holder.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Account is the aggregate root for the account domain.
//
// Password holds whatever the active credential scheme produced (plain text
// for the legacy scheme, a bcrypt hash otherwise); comparison always goes
// through helpers.CredentialScheme.
type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	FullName    string `json:"full_name"`
	StudentID   string `json:"student_id"`
	ClassName   string `json:"class_name"`
	DateOfBirth string `json:"date_of_birth"` // dd/MM/yyyy, empty when unset
	Gender      Gender `json:"gender"`
	Address     string `json:"address"`
	Avatar      string `json:"avatar_reference"` // local path or URI, empty when unset
}
