// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

// Application defaults
const (
	DefaultPort      = "8080"
	DefaultDataDir   = "data/audio"
	DefaultUsername  = "vault"
	DefaultUploadMB  = 50
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// MIME Types
const (
	MimeTypeMP3  = "audio/mpeg"
	MimeTypeFLAC = "audio/flac"
	MimeTypeMP4  = "audio/mp4"
	MimeTypeWAV  = "audio/wav"
	MimeTypeXWAV = "audio/x-wav"
	MimeTypeWebM = "audio/webm"
	MimeTypeOgg  = "audio/ogg"
	MimeTypeAAC  = "audio/aac"
)

// File Extensions
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtM4A  = ".m4a"
	ExtWAV  = ".wav"
	ExtWebM = ".webm"
	ExtOgg  = ".ogg"
	ExtAAC  = ".aac"
)

// AudioExtensions maps accepted upload media types to the on-disk extension
// used for the stored file. Membership in this map is the upload allow-list.
var AudioExtensions = map[string]string{
	MimeTypeMP3:  ExtMP3,
	MimeTypeFLAC: ExtFLAC,
	MimeTypeMP4:  ExtM4A,
	MimeTypeWAV:  ExtWAV,
	MimeTypeXWAV: ExtWAV,
	MimeTypeWebM: ExtWebM,
	MimeTypeOgg:  ExtOgg,
	MimeTypeAAC:  ExtAAC,
}

// File Permissions
const (
	DirPermissions  = 0755
	FilePermissions = 0644
)

// Characters to sanitize from filesystem paths
const InvalidPathChars = "<>:\"/\\|?*"
