package models

// MutationResult lists the folders a scoped rename/delete touched
type MutationResult struct {
	Root       string   `json:"root"`
	TargetName string   `json:"target_name"`
	NewName    string   `json:"new_name,omitempty"`
	Affected   []string `json:"affected"`
}
