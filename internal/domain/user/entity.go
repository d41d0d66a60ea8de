package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Full access, user management
	RoleEngineer   Role = "engineer"   // Site engineering view
	RoleContractor Role = "contractor" // External contractor
	RoleWorker     Role = "worker"     // Worker attendance view
)

// Profile is a row of the user_profiles table, the directory's identity record.
type Profile struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash *string
	CreatedAt    time.Time
}
