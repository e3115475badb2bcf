package config

const (
	// MaxFolderNameLength is the maximum length for a folder name passed
	// to rename. Most filesystems cap a single name at 255 bytes.
	MaxFolderNameLength = 255

	// RefLength is the exact length of artist and project references.
	// Two refs joined by "_" form the 7-character project root name.
	RefLength = 3

	// DefaultTemplateCacheSize is the number of parsed templates kept in memory.
	DefaultTemplateCacheSize = 64

	// DefaultLogMaxFiles is the number of rotated log files kept on disk.
	DefaultLogMaxFiles = 10
)
