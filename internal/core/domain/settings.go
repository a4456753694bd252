package domain

// Settings is the snapshot of the process environment taken once when the CLI starts.
// Nothing below the cmd layer reads os.Getenv.
type Settings struct {
	WorkingDir      string
	HomeDir         string
	RootOverride    string
	InheritedPrompt string
	Env             map[string]string
	Verbose         bool
}

// Getenv looks a variable up in the snapshot.
func (s Settings) Getenv(key string) string {
	return s.Env[key]
}
