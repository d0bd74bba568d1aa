package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeAudio       = "audio/"
	MimeVideo       = "video/"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedAudioExtensions = []string{".webm", ".ogg", ".wav", ".mp3", ".m4a"}
)
