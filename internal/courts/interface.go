package courts

// CourtStore defines the interface for the community court registry.
type CourtStore interface {
	AddCourt(court Court) error
	GetCourt(courtID string) (*Court, error)
	GetAllCourts() ([]Court, error)
	Exists(courtID string) bool
}
