package resume

// BundleMissingError indicates no bundle at all was supplied to aggregation.
type BundleMissingError struct{}

func (e *BundleMissingError) Error() string {
	return "resume bundle is missing"
}

// ProfileMissingError indicates the stored profile required for an
// authenticated build could not be found. The stateless payload path degrades
// to blank identity fields instead of raising this.
type ProfileMissingError struct {
	UserID string
}

func (e *ProfileMissingError) Error() string {
	if e.UserID == "" {
		return "personal profile is missing"
	}
	return "personal profile is missing for user " + e.UserID
}
