package flatten

// Arguments holds the configuration options for the flatten pipeline.
type Arguments struct {
	Root              string   // Root directory to scan.
	Extensions        []string // File extensions to include (leading dot, case-insensitive).
	ExcludeDirs       []string // Directory names pruned during traversal.
	StripComments     bool     // If true, run the per-language comment scanners.
	StripPyDocstrings bool     // If true, also remove Python triple-quoted strings.
	TabSpaces         int      // Spaces per tab stop for whitespace normalization.
	CollapseBlankTo   int      // Maximum run of consecutive blank lines kept.
	MaxFileSizeKB     int      // Skip files larger than this (0 = no limit).
	ChunkChars        int      // Maximum characters per output chunk.
	OutDir            string   // Directory for output files.
	Prefix            string   // Prefix for output file names.
	TreeFile          string   // Optional path for a directory tree listing ("" = none).
	GlobalIgnoreFile  string   // Optional path to a global ignore file.
	Workers           int      // Concurrent file workers (0 = NumCPU).
}

// FileBlock is one file's rendered contribution to the combined document:
// its boundary marker followed by the processed content.
type FileBlock struct {
	RelPath string // Relative path with forward slashes.
	Content string // Marker plus normalized, optionally comment-stripped text.
}

// ignoreFileName is the per-tree ignore file read from the scan root.
const ignoreFileName = ".srcflatignore"

// DefaultExtensions returns the file extensions included when --exts is not
// given. Callers own the returned slice.
func DefaultExtensions() []string {
	return []string{
		".py", ".cs", ".js", ".ts", ".tsx", ".jsx",
		".java", ".cpp", ".c", ".h", ".hpp",
		".html", ".htm", ".css",
		".json", ".yaml", ".yml", ".md", ".txt",
		".sql", ".go", ".rs", ".php",
		".sh", ".bash", ".zsh", ".bat", ".cmd", ".ps1",
	}
}

// DefaultExcludeDirs returns the directory names pruned when --exclude-dir
// is not given. Callers own the returned slice.
func DefaultExcludeDirs() []string {
	return []string{
		"node_modules", ".git", ".venv", ".idea", ".vscode", "dist", "build",
		"__pycache__", ".mypy_cache", ".pytest_cache", "bin", "obj", "target",
		".next", "out", ".turbo", "coverage", ".gradle", ".cache", "vendor",
		"TestResults",
	}
}

// binaryExtensions lists extensions skipped without sniffing file content.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".pdf": true, ".zip": true, ".gz": true, ".tar": true,
	".7z": true, ".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".class": true, ".jar": true, ".woff": true, ".woff2": true, ".ttf": true,
	".eot": true, ".mp3": true, ".mp4": true, ".mov": true, ".avi": true,
	".sqlite": true, ".db": true,
}
