package app

const appName = "learninglog"

// Set with -ldflags "-X github.com/heartmarshall/learninglog-backend/internal/app.Version=1.2.0 -X ...Commit=abc1234".
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion is the version string reported by the index page, health
// checks and the startup log line.
func BuildVersion() string {
	if Commit == "" {
		return Version
	}
	return Version + "+" + Commit
}
