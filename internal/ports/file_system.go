package ports

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
	RemoveAll(path string) error
}
