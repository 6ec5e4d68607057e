package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files.
type FileSet struct {
	files []*File
	index map[string]FileID // path -> latest id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]*File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores a file from normalized bytes and returns a new FileID.
// It always creates a new FileID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	normalizedPath := normalizePath(path)
	id := FileID(mustU32(len(fileSet.files)))
	fileSet.files = append(fileSet.files, &File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes BOM, CRLF and NFC, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(content) > int(^uint32(0)) {
		return 0, fmt.Errorf("%s: file too large", path)
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	content, hadNFC := normalizeNFC(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if hadNFC {
		flags |= FileNormalizedNFC
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	return fileSet.files[id]
}

// Len reports the number of files added so far.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// NewVirtualFile builds a standalone in-memory file outside any FileSet.
func NewVirtualFile(name, content string) *File {
	return &File{
		Path:    name,
		Content: []byte(content),
		Hash:    sha256.Sum256([]byte(content)),
		Flags:   FileVirtual,
	}
}

func (f *File) lines() []uint32 {
	f.lineOnce.Do(func() {
		f.lineIdx = buildLineIndex(f.Content)
	})
	return f.lineIdx
}

// Size returns the content length in bytes.
func (f *File) Size() uint32 {
	return mustU32(len(f.Content))
}

// LineCount returns the number of lines, counting a trailing partial line.
func (f *File) LineCount() uint32 {
	idx := f.lines()
	n := mustU32(len(idx))
	if len(f.Content) == 0 || f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}

// Resolve converts a byte offset into a 1-based line and column.
func (f *File) Resolve(off uint32) LineCol {
	if off > f.Size() {
		off = f.Size()
	}
	return toLineCol(f.Content, f.lines(), off)
}

// LineStart returns the offset of the first byte of line lineNum (1-based).
func (f *File) LineStart(lineNum uint32) uint32 {
	if lineNum <= 1 {
		return 0
	}
	idx := f.lines()
	if int(lineNum-2) >= len(idx) {
		return f.Size()
	}
	return idx[lineNum-2] + 1
}

// Line returns the text of line lineNum (1-based) without its newline.
// An out of range line yields "".
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 || lineNum > f.LineCount() {
		return ""
	}
	idx := f.lines()
	start := f.LineStart(lineNum)
	end := f.Size()
	if int(lineNum-1) < len(idx) {
		end = idx[lineNum-1]
	}
	return string(f.Content[start:end])
}

func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source offset overflow: %w", err))
	}
	return v
}
