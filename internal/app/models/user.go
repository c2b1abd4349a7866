package models

// AdminUser defines the admin login model based on the 'admin_users' table.
// Password holds a bcrypt hash, never plaintext, and is excluded from JSON.
type AdminUser struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

// FacultyUser links a login username to a faculty row. Usernames are stored
// lowercased; the row is removed automatically when its faculty is deleted.
type FacultyUser struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	FacultyID int64  `json:"faculty_id" db:"faculty_id"`
}
